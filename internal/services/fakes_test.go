package services

import (
	"time"

	"leasingcrm/internal/models"
)

// In-memory stores backing the service tests. They keep insertion order,
// like the Postgres repositories do with their ORDER BY created_at.

type fakeLeadStore struct {
	leads []models.Lead
}

func (s *fakeLeadStore) Create(lead *models.Lead) error {
	s.leads = append(s.leads, *lead.Clone())
	return nil
}

func (s *fakeLeadStore) Update(lead *models.Lead) error {
	for i := range s.leads {
		if s.leads[i].ID == lead.ID {
			s.leads[i] = *lead.Clone()
			return nil
		}
	}
	return nil
}

func (s *fakeLeadStore) GetByID(id string) (*models.Lead, error) {
	for i := range s.leads {
		if s.leads[i].ID == id {
			return s.leads[i].Clone(), nil
		}
	}
	return nil, nil
}

func (s *fakeLeadStore) List() ([]models.Lead, error) {
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out, nil
}

func (s *fakeLeadStore) ListByStatus(status string) ([]models.Lead, error) {
	var out []models.Lead
	for _, l := range s.leads {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeLeadStore) ListExcludingStatuses(statuses ...string) ([]models.Lead, error) {
	excluded := make(map[string]bool, len(statuses))
	for _, st := range statuses {
		excluded[st] = true
	}
	var out []models.Lead
	for _, l := range s.leads {
		if !excluded[l.Status] {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeLeadStore) Delete(id string) error {
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeLeadStore) Count() (int, error) {
	return len(s.leads), nil
}

type fakeReminderStore struct {
	reminders []models.Reminder
}

func (s *fakeReminderStore) Create(r *models.Reminder) error {
	s.reminders = append(s.reminders, *r)
	return nil
}

func (s *fakeReminderStore) GetByID(id string) (*models.Reminder, error) {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			r := s.reminders[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (s *fakeReminderStore) List() ([]models.Reminder, error) {
	out := make([]models.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out, nil
}

func (s *fakeReminderStore) ListWindow(from, to time.Time) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range s.reminders {
		if !r.ReminderDate.Before(from) && !r.ReminderDate.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeReminderStore) SetCompleted(id string, completed bool) error {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders[i].Completed = completed
			return nil
		}
	}
	return nil
}

func (s *fakeReminderStore) Delete(id string) error {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeReminderStore) Count() (int, error) {
	return len(s.reminders), nil
}

type fakeBackupStore struct {
	leads     *fakeLeadStore
	reminders *fakeReminderStore
	calls     int
}

func (s *fakeBackupStore) ReplaceAll(leads []models.Lead, reminders []models.Reminder) error {
	s.calls++
	s.leads.leads = append([]models.Lead(nil), leads...)
	s.reminders.reminders = append([]models.Reminder(nil), reminders...)
	return nil
}

type recordingNotifier struct {
	created []string
	err     error
}

func (n *recordingNotifier) ReminderCreated(lead *models.Lead, r *models.Reminder) error {
	n.created = append(n.created, r.Title)
	return n.err
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
}

// validLead returns a lead that passes every save rule, ready to be
// tweaked per test case.
func validLead() *models.Lead {
	return &models.Lead{
		Company: models.Company{Name: "Transports Dupont"},
		Contact: models.Contact{
			FirstName: "Jean",
			LastName:  "Dupont",
			Email:     "jean.dupont@example.com",
		},
		Vehicles: []models.Vehicle{{
			Brand:            "Peugeot",
			Model:            "308",
			Carburant:        models.CarburantDiesel,
			ContractDuration: 36,
			AnnualMileage:    15000,
			CommissionAgence: "800€",
			PaymentStatus:    models.PaymentEnAttente,
		}},
		Status: models.StatusPremierContact,
	}
}
