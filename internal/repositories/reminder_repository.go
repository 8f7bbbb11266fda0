package repositories

import (
	"database/sql"
	"log"
	"time"

	"leasingcrm/internal/models"
)

type ReminderRepository struct {
	db *sql.DB
}

func NewReminderRepository(db *sql.DB) *ReminderRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &ReminderRepository{db: db}
}

const reminderColumns = `id, lead_id, title, description, reminder_date, completed, created_at`

func (r *ReminderRepository) Create(reminder *models.Reminder) error {
	const query = `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(query,
		reminder.ID, reminder.LeadID, reminder.Title, reminder.Description,
		reminder.ReminderDate, reminder.Completed, reminder.CreatedAt,
	)
	return err
}

func (r *ReminderRepository) GetByID(id string) (*models.Reminder, error) {
	const query = `SELECT ` + reminderColumns + ` FROM reminders WHERE id=$1`
	reminder := &models.Reminder{}
	err := r.db.QueryRow(query, id).Scan(
		&reminder.ID, &reminder.LeadID, &reminder.Title, &reminder.Description,
		&reminder.ReminderDate, &reminder.Completed, &reminder.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *ReminderRepository) List() ([]models.Reminder, error) {
	const query = `SELECT ` + reminderColumns + ` FROM reminders ORDER BY reminder_date ASC`
	return r.queryReminders(query)
}

func (r *ReminderRepository) ListWindow(from, to time.Time) ([]models.Reminder, error) {
	const query = `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE reminder_date >= $1 AND reminder_date <= $2
		ORDER BY reminder_date ASC
	`
	return r.queryReminders(query, from, to)
}

func (r *ReminderRepository) SetCompleted(id string, completed bool) error {
	const query = `UPDATE reminders SET completed=$1 WHERE id=$2`
	_, err := r.db.Exec(query, completed, id)
	return err
}

func (r *ReminderRepository) Delete(id string) error {
	const query = `DELETE FROM reminders WHERE id=$1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *ReminderRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM reminders`).Scan(&count)
	return count, err
}

func (r *ReminderRepository) queryReminders(query string, args ...interface{}) ([]models.Reminder, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Reminder{}
	for rows.Next() {
		var reminder models.Reminder
		if err := rows.Scan(
			&reminder.ID, &reminder.LeadID, &reminder.Title, &reminder.Description,
			&reminder.ReminderDate, &reminder.Completed, &reminder.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, reminder)
	}
	return out, rows.Err()
}
