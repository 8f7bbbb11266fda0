package services

import (
	"time"

	"leasingcrm/internal/models"
)

// Store interfaces kept small so tests can swap in fakes. The Postgres
// implementations live in internal/repositories. Not-found is reported
// as (nil, nil), not an error.

type LeadStore interface {
	Create(lead *models.Lead) error
	Update(lead *models.Lead) error
	GetByID(id string) (*models.Lead, error)
	List() ([]models.Lead, error)
	ListByStatus(status string) ([]models.Lead, error)
	ListExcludingStatuses(statuses ...string) ([]models.Lead, error)
	Delete(id string) error
	Count() (int, error)
}

type ReminderStore interface {
	Create(reminder *models.Reminder) error
	GetByID(id string) (*models.Reminder, error)
	List() ([]models.Reminder, error)
	ListWindow(from, to time.Time) ([]models.Reminder, error)
	SetCompleted(id string, completed bool) error
	Delete(id string) error
	Count() (int, error)
}

// BackupStore swaps the whole dataset in one transaction.
type BackupStore interface {
	ReplaceAll(leads []models.Lead, reminders []models.Reminder) error
}
