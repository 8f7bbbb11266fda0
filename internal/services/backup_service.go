package services

import (
	"encoding/json"
	"strings"
	"time"

	"leasingcrm/internal/models"
)

type BackupService struct {
	Leads     LeadStore
	Reminders ReminderStore
	Store     BackupStore
	Catalog   models.Catalog
	Now       func() time.Time
}

func NewBackupService(leads LeadStore, reminders ReminderStore, store BackupStore, catalog models.Catalog) *BackupService {
	return &BackupService{Leads: leads, Reminders: reminders, Store: store, Catalog: catalog, Now: time.Now}
}

func (s *BackupService) Status() (*models.BackupStatus, error) {
	leadCount, err := s.Leads.Count()
	if err != nil {
		return nil, err
	}
	reminderCount, err := s.Reminders.Count()
	if err != nil {
		return nil, err
	}
	return &models.BackupStatus{
		LeadsCount:     leadCount,
		RemindersCount: reminderCount,
		GeneratedAt:    s.Now(),
	}, nil
}

func (s *BackupService) Export() (*models.BackupSnapshot, error) {
	leads, err := s.Leads.List()
	if err != nil {
		return nil, err
	}
	reminders, err := s.Reminders.List()
	if err != nil {
		return nil, err
	}
	return &models.BackupSnapshot{
		Version:    models.BackupVersion,
		ExportedAt: s.Now(),
		Leads:      leads,
		Reminders:  reminders,
	}, nil
}

// Import replaces the whole dataset from a snapshot. All-or-nothing:
// the payload is decoded and every record validated and re-derived
// before anything is written, and the write itself is one transaction.
func (s *BackupService) Import(payload []byte) (*models.BackupStatus, error) {
	var snapshot models.BackupSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, dataShapeErrorf("not a backup snapshot: %v", err)
	}
	if snapshot.Version == 0 || snapshot.Leads == nil {
		return nil, dataShapeErrorf("missing version or leads section")
	}

	now := s.Now()
	leads := make([]models.Lead, 0, len(snapshot.Leads))
	seen := make(map[string]bool, len(snapshot.Leads))
	for i := range snapshot.Leads {
		in := snapshot.Leads[i]
		if in.ID == "" {
			return nil, dataShapeErrorf("lead %d has no id", i)
		}
		if seen[in.ID] {
			return nil, dataShapeErrorf("duplicate lead id %s", in.ID)
		}
		seen[in.ID] = true
		// Re-run the full save rules: an imported snapshot must obey the
		// same invariants as live edits, with derived dates recomputed.
		normalized, err := ValidateForSave(nil, &in, s.Catalog, now)
		if err != nil {
			return nil, dataShapeErrorf("lead %s: %v", in.ID, err)
		}
		normalized.ID = in.ID
		normalized.CreatedAt = in.CreatedAt
		if normalized.CreatedAt.IsZero() {
			normalized.CreatedAt = now
		}
		leads = append(leads, *normalized)
	}

	reminders := make([]models.Reminder, 0, len(snapshot.Reminders))
	for i, r := range snapshot.Reminders {
		if r.ID == "" {
			return nil, dataShapeErrorf("reminder %d has no id", i)
		}
		if strings.TrimSpace(r.Title) == "" {
			return nil, dataShapeErrorf("reminder %s has no title", r.ID)
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		reminders = append(reminders, r)
	}

	if err := s.Store.ReplaceAll(leads, reminders); err != nil {
		return nil, err
	}
	return &models.BackupStatus{
		LeadsCount:     len(leads),
		RemindersCount: len(reminders),
		GeneratedAt:    now,
	}, nil
}
