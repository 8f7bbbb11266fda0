package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"leasingcrm/internal/models"
)

// Read-only views over an in-memory lead collection. Everything here is
// a total function: a lead with missing optional fields contributes zero
// values instead of an error, and the input slice is never reordered or
// mutated.

var commissionAmountRe = regexp.MustCompile(`\d+`)

// CommissionAmount extracts the leading integer from a free-text
// commission ("800€" → 800). No digits means no contribution.
func CommissionAmount(raw string) int {
	digits := commissionAmountRe.FindString(raw)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// TotalCommission sums the parsed commission over every vehicle of a lead.
func TotalCommission(lead models.Lead) int {
	total := 0
	for _, v := range lead.Vehicles {
		total += CommissionAmount(v.CommissionAgence)
	}
	return total
}

// StatusStats counts leads per status. Statuses with no lead are omitted.
func StatusStats(leads []models.Lead) map[string]int {
	stats := make(map[string]int)
	for _, l := range leads {
		stats[l.Status]++
	}
	return stats
}

type CommissionTotals struct {
	Year          int `json:"year"`
	TotalPaid     int `json:"total_paid"`
	TotalPending  int `json:"total_pending"`
	TotalExpected int `json:"total_expected"`
}

// CommissionTotalsForYear splits commission money into paid and pending
// for one calendar year. A lead is in scope when its delivery date falls
// in that year, or when it has no delivery date yet (pending pipeline
// money is not dated).
func CommissionTotalsForYear(leads []models.Lead, year int) CommissionTotals {
	totals := CommissionTotals{Year: year}
	for _, l := range leads {
		if l.DeliveryDate != nil && !l.DeliveryDate.IsZero() && l.DeliveryDate.Year() != year {
			continue
		}
		for _, v := range l.Vehicles {
			amount := CommissionAmount(v.CommissionAgence)
			if amount == 0 {
				continue
			}
			if v.PaymentStatus == models.PaymentPaye {
				totals.TotalPaid += amount
			} else {
				totals.TotalPending += amount
			}
		}
	}
	totals.TotalExpected = totals.TotalPaid + totals.TotalPending
	return totals
}

// FilterLeads keeps leads matching a case-insensitive substring search
// over company name, contact names, vehicle brand/model and note, AND'd
// with an exact status filter. Empty terms match everything.
func FilterLeads(leads []models.Lead, searchTerm, statusFilter string) []models.Lead {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	out := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if statusFilter != "" && l.Status != statusFilter {
			continue
		}
		if term != "" && !leadMatches(l, term) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func leadMatches(l models.Lead, term string) bool {
	if containsFold(l.Company.Name, term) ||
		containsFold(l.Contact.FirstName, term) ||
		containsFold(l.Contact.LastName, term) ||
		containsFold(l.Note, term) {
		return true
	}
	for _, v := range l.Vehicles {
		if containsFold(v.Brand, term) || containsFold(v.Model, term) {
			return true
		}
	}
	return false
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// Sort keys accepted by SortLeads. They mirror the pipeline view's sort
// dropdown, so the server and the UI order lists identically.
const (
	SortCompanyName          = "company_name"
	SortContactName          = "contact_name"
	SortStatus               = "status"
	SortCommercial           = "commercial"
	SortPrestataire          = "prestataire"
	SortVehicleBrand         = "vehicle_brand"
	SortCreatedAtDesc        = "created_at"
	SortCreatedAtAsc         = "created_at_asc"
	SortLeadCreationDate     = "lead_creation_date"
	SortLeadCreationDateDesc = "lead_creation_date_desc"
	SortCommissionTotal      = "commission_total"
)

// SortLeads returns a stably sorted copy. An empty or unknown key
// preserves the input order.
func SortLeads(leads []models.Lead, sortKey string) []models.Lead {
	out := make([]models.Lead, len(leads))
	copy(out, leads)

	var less func(a, b models.Lead) bool
	switch sortKey {
	case SortCompanyName:
		less = func(a, b models.Lead) bool { return a.Company.Name < b.Company.Name }
	case SortContactName:
		less = func(a, b models.Lead) bool { return contactFullName(a) < contactFullName(b) }
	case SortStatus:
		less = func(a, b models.Lead) bool { return a.Status < b.Status }
	case SortCommercial:
		less = func(a, b models.Lead) bool { return a.AssignedToCommercial < b.AssignedToCommercial }
	case SortPrestataire:
		less = func(a, b models.Lead) bool { return a.AssignedToPrestataire < b.AssignedToPrestataire }
	case SortVehicleBrand:
		less = func(a, b models.Lead) bool { return firstBrand(a) < firstBrand(b) }
	case SortCreatedAtDesc:
		less = func(a, b models.Lead) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortCreatedAtAsc:
		less = func(a, b models.Lead) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortLeadCreationDate:
		less = func(a, b models.Lead) bool { return creationDay(a).Before(creationDay(b)) }
	case SortLeadCreationDateDesc:
		less = func(a, b models.Lead) bool { return creationDay(a).After(creationDay(b)) }
	case SortCommissionTotal:
		less = func(a, b models.Lead) bool { return TotalCommission(a) > TotalCommission(b) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func contactFullName(l models.Lead) string {
	return strings.ToLower(l.Contact.FirstName + " " + l.Contact.LastName)
}

func firstBrand(l models.Lead) string {
	if v := l.FirstVehicle(); v != nil {
		return v.Brand
	}
	return ""
}

// creationDay prefers the user-editable creation date and falls back to
// the immutable system timestamp.
func creationDay(l models.Lead) time.Time {
	if l.LeadCreationDate != nil && !l.LeadCreationDate.IsZero() {
		return l.LeadCreationDate.Time
	}
	return l.CreatedAt
}
