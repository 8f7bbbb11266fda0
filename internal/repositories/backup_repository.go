package repositories

import (
	"database/sql"
	"log"

	"leasingcrm/internal/models"
)

// BackupRepository swaps the entire dataset. Import semantics are
// full-replace, so both tables are cleared and refilled in a single
// transaction; a failure anywhere leaves the previous data untouched.
type BackupRepository struct {
	db *sql.DB
}

func NewBackupRepository(db *sql.DB) *BackupRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &BackupRepository{db: db}
}

func (r *BackupRepository) ReplaceAll(leads []models.Lead, reminders []models.Reminder) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM reminders`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM leads`); err != nil {
		return err
	}

	const insertLead = `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	for i := range leads {
		lead := &leads[i]
		company, contact, vehicles, err := marshalLeadDocs(lead)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(insertLead,
			lead.ID, company, contact, vehicles, lead.Status, lead.Note,
			lead.LeadCreationDate, lead.CreatedAt,
			lead.AssignedToPrestataire, lead.AssignedToCommercial,
			lead.DeliveryDate, lead.ContractEndDate,
		); err != nil {
			return err
		}
	}

	const insertReminder = `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i := range reminders {
		rem := &reminders[i]
		if _, err := tx.Exec(insertReminder,
			rem.ID, rem.LeadID, rem.Title, rem.Description,
			rem.ReminderDate, rem.Completed, rem.CreatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
