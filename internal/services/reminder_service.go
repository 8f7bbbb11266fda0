package services

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"leasingcrm/internal/models"
)

type ReminderService struct {
	Store    ReminderStore
	Leads    LeadStore
	Notifier Notifier
	Now      func() time.Time
}

func NewReminderService(store ReminderStore, leads LeadStore, notifier Notifier) *ReminderService {
	return &ReminderService{Store: store, Leads: leads, Notifier: notifier, Now: time.Now}
}

// Create validates the reminder shape, persists it and fans out a
// best-effort notification. A notification failure never fails the save.
func (s *ReminderService) Create(reminder *models.Reminder) (*models.Reminder, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(reminder.Title) == "" {
		verr.add("title", "title is required")
	}
	if reminder.ReminderDate.IsZero() {
		verr.add("reminder_date", "reminder date is required")
	}
	var lead *models.Lead
	if reminder.LeadID == "" {
		verr.add("lead_id", "lead reference is required")
	} else {
		var err error
		lead, err = s.Leads.GetByID(reminder.LeadID)
		if err != nil {
			return nil, err
		}
		if lead == nil {
			verr.add("lead_id", "lead "+reminder.LeadID+" does not exist")
		}
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	r := *reminder
	r.ID = uuid.NewString()
	r.Completed = false
	r.CreatedAt = s.Now()

	if err := s.Store.Create(&r); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.ReminderCreated(lead, &r); err != nil {
			log.Printf("[reminders][notify] delivery failed for %s: %v", r.ID, err)
		}
	}
	return &r, nil
}

func (s *ReminderService) List() ([]models.Reminder, error) {
	return s.Store.List()
}

// Upcoming returns the not-yet-completed reminders due within the next
// days (the calendar view window, 30 by default).
func (s *ReminderService) Upcoming(days int) ([]models.Reminder, error) {
	if days <= 0 {
		days = 30
	}
	now := s.Now()
	reminders, err := s.Store.ListWindow(now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}
	out := make([]models.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if !r.Completed {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ReminderService) SetCompleted(id string, completed bool) (*models.Reminder, error) {
	existing, err := s.Store.GetByID(id)
	if err != nil || existing == nil {
		return nil, err
	}
	if err := s.Store.SetCompleted(id, completed); err != nil {
		return nil, err
	}
	existing.Completed = completed
	return existing, nil
}

func (s *ReminderService) Delete(id string) error {
	return s.Store.Delete(id)
}
