package services

import "time"

type DashboardStats struct {
	TotalLeads  int              `json:"total_leads"`
	StatusStats map[string]int   `json:"status_stats"`
	Commissions CommissionTotals `json:"commissions_stats"`
}

// DashboardService mirrors the aggregation the UI performs, so both
// sides of GET /dashboard/stats compute identical numbers.
type DashboardService struct {
	Leads LeadStore
	Now   func() time.Time
}

func NewDashboardService(leads LeadStore) *DashboardService {
	return &DashboardService{Leads: leads, Now: time.Now}
}

// Stats aggregates over the whole collection. year == 0 means the
// current year.
func (s *DashboardService) Stats(year int) (*DashboardStats, error) {
	leads, err := s.Leads.List()
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = s.Now().Year()
	}
	return &DashboardStats{
		TotalLeads:  len(leads),
		StatusStats: StatusStats(leads),
		Commissions: CommissionTotalsForYear(leads, year),
	}, nil
}
