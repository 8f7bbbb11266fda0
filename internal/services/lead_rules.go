package services

import (
	"strconv"
	"strings"
	"time"

	"leasingcrm/internal/models"
)

// Required-field policy, as data rather than branches. Every status gets
// the base checks; a status listed here adds its own on top.
//
// accord is intentionally absent: a missing delivery date there is
// backfilled to today instead of rejected (see normalizeDates).

type fieldRule struct {
	field   string
	message string
	ok      func(*models.Lead) bool
}

var baseRequiredFields = []fieldRule{
	{"company.name", "company name is required", func(l *models.Lead) bool {
		return strings.TrimSpace(l.Company.Name) != ""
	}},
	{"contact.first_name", "contact first name is required", func(l *models.Lead) bool {
		return strings.TrimSpace(l.Contact.FirstName) != ""
	}},
	{"contact.last_name", "contact last name is required", func(l *models.Lead) bool {
		return strings.TrimSpace(l.Contact.LastName) != ""
	}},
	{"contact.email", "contact email is required", func(l *models.Lead) bool {
		return strings.TrimSpace(l.Contact.Email) != ""
	}},
}

var requiredFieldsByStatus = map[string][]fieldRule{
	models.StatusLivree: {
		{"delivery_date", "delivery date is required for a delivered lead", func(l *models.Lead) bool {
			return l.DeliveryDate != nil && !l.DeliveryDate.IsZero()
		}},
	},
}

// ValidateForSave runs the status machine over a candidate lead and
// returns the normalized record that may be persisted. prev is the
// previously stored version (nil at creation); the caller merges partial
// updates into next before calling. The input is never mutated.
func ValidateForSave(prev, next *models.Lead, catalog models.Catalog, now time.Time) (*models.Lead, error) {
	lead := next.Clone()
	verr := &ValidationError{}

	if lead.Status == "" {
		lead.Status = models.StatusPremierContact
	}
	if !catalog.HasStatus(lead.Status) {
		verr.add("status", "unknown status "+lead.Status)
	}

	normalizeVehicles(prev, lead, catalog, verr)
	normalizeAssignments(lead, catalog, verr)
	normalizeDates(lead, now)

	for _, rule := range baseRequiredFields {
		if !rule.ok(lead) {
			verr.add(rule.field, rule.message)
		}
	}
	for _, rule := range requiredFieldsByStatus[lead.Status] {
		if !rule.ok(lead) {
			verr.add(rule.field, rule.message)
		}
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}

	// Derived field last: it must reflect the normalized inputs and
	// never survive from the client payload.
	duration := 0
	if v := lead.FirstVehicle(); v != nil {
		duration = v.ContractDuration
	}
	lead.ContractEndDate = DeriveContractEnd(lead.DeliveryDate, duration)
	return lead, nil
}

func normalizeVehicles(prev, lead *models.Lead, catalog models.Catalog, verr *ValidationError) {
	for i := range lead.Vehicles {
		v := &lead.Vehicles[i]
		field := vehicleField(i)

		// Changing the brand always invalidates the model.
		if prev != nil && i < len(prev.Vehicles) && prev.Vehicles[i].Brand != v.Brand {
			v.Model = ""
		}

		if v.Brand != "" {
			if _, ok := catalog.ModelsFor(v.Brand); !ok {
				verr.add(field+".brand", "unknown brand "+v.Brand)
			} else if v.Model != "" && !catalog.HasModel(v.Brand, v.Model) {
				verr.add(field+".model", v.Model+" is not a "+v.Brand+" model")
			}
		} else if v.Model != "" {
			// a model with no brand cannot be checked against the catalog
			v.Model = ""
		}

		if !models.ValidCarburant(v.Carburant) {
			verr.add(field+".carburant", "unknown carburant "+v.Carburant)
		}
		if v.Carburant == "" {
			v.Carburant = models.CarburantDiesel
		}

		if v.ContractDuration == 0 {
			v.ContractDuration = models.DefaultContractDuration
		}
		if !catalog.HasDuration(v.ContractDuration) {
			verr.add(field+".contract_duration", "duration is not in the allowed set")
		}

		if v.AnnualMileage == 0 {
			v.AnnualMileage = models.DefaultAnnualMileage
		}
		if !catalog.HasMileage(v.AnnualMileage) {
			verr.add(field+".annual_mileage", "mileage is not in the allowed set")
		}

		if !models.ValidPaymentStatus(v.PaymentStatus) {
			verr.add(field+".payment_status", "unknown payment status "+v.PaymentStatus)
		}
		if v.PaymentStatus == "" {
			v.PaymentStatus = models.PaymentEnAttente
		}
	}
}

func normalizeAssignments(lead *models.Lead, catalog models.Catalog, verr *ValidationError) {
	if lead.AssignedToPrestataire != "" && !catalog.HasPrestataire(lead.AssignedToPrestataire) {
		verr.add("assigned_to_prestataire", "unknown prestataire "+lead.AssignedToPrestataire)
	}
	if lead.AssignedToCommercial != "" && !catalog.HasCommercial(lead.AssignedToCommercial) {
		verr.add("assigned_to_commercial", "unknown commercial "+lead.AssignedToCommercial)
	}
}

func normalizeDates(lead *models.Lead, now time.Time) {
	if lead.LeadCreationDate == nil || lead.LeadCreationDate.IsZero() {
		d := models.DateOf(now)
		lead.LeadCreationDate = &d
	}
	// Reaching "accord" without a delivery date backfills today rather
	// than rejecting; "livree" stays strict.
	if lead.Status == models.StatusAccord && (lead.DeliveryDate == nil || lead.DeliveryDate.IsZero()) {
		d := models.DateOf(now)
		lead.DeliveryDate = &d
	}
}

func vehicleField(i int) string {
	return "vehicles[" + strconv.Itoa(i) + "]"
}
