package models

import "time"

// Reminder is a dated follow-up attached to a lead. The lead_id is a
// reference, not ownership: deleting a lead leaves its reminders behind.
type Reminder struct {
	ID           string    `json:"id"`
	LeadID       string    `json:"lead_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ReminderDate time.Time `json:"reminder_date"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
}
