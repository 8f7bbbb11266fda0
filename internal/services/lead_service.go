package services

import (
	"time"

	"github.com/google/uuid"

	"leasingcrm/internal/models"
)

type LeadService struct {
	Store   LeadStore
	Catalog models.Catalog
	Now     func() time.Time
}

func NewLeadService(store LeadStore, catalog models.Catalog) *LeadService {
	return &LeadService{Store: store, Catalog: catalog, Now: time.Now}
}

// Create validates and normalizes a new lead, then persists it. The id
// and created_at are always assigned here, whatever the payload says.
func (s *LeadService) Create(lead *models.Lead) (*models.Lead, error) {
	now := s.Now()
	normalized, err := ValidateForSave(nil, lead, s.Catalog, now)
	if err != nil {
		return nil, err
	}
	normalized.ID = uuid.NewString()
	normalized.CreatedAt = now
	if err := s.Store.Create(normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// Update runs the status machine over a candidate that the handler has
// already merged with the stored version. id, created_at stay immutable.
func (s *LeadService) Update(id string, candidate *models.Lead) (*models.Lead, error) {
	prev, err := s.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, nil
	}
	normalized, err := ValidateForSave(prev, candidate, s.Catalog, s.Now())
	if err != nil {
		return nil, err
	}
	normalized.ID = prev.ID
	normalized.CreatedAt = prev.CreatedAt
	if err := s.Store.Update(normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (s *LeadService) GetByID(id string) (*models.Lead, error) {
	return s.Store.GetByID(id)
}

// List applies the pipeline search/filter/sort server-side, mirroring
// what the UI computes over its in-memory copy.
func (s *LeadService) List(search, statusFilter, sortKey string) ([]models.Lead, error) {
	leads, err := s.Store.List()
	if err != nil {
		return nil, err
	}
	return SortLeads(FilterLeads(leads, search, statusFilter), sortKey), nil
}

// ListActive excludes leads that left the pipeline (delivered or lost).
func (s *LeadService) ListActive() ([]models.Lead, error) {
	return s.Store.ListExcludingStatuses(models.StatusLivree, models.StatusPerdu)
}

// ListClients returns delivered leads for the read-only client registry.
func (s *LeadService) ListClients() ([]models.Lead, error) {
	return s.Store.ListByStatus(models.StatusLivree)
}

func (s *LeadService) Delete(id string) error {
	return s.Store.Delete(id)
}
