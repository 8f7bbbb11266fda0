package models

import "time"

const BackupVersion = 1

// BackupSnapshot is a full export of the dataset. Importing one replaces
// every lead and reminder; there is no merge.
type BackupSnapshot struct {
	Version    int        `json:"version"`
	ExportedAt time.Time  `json:"exported_at"`
	Leads      []Lead     `json:"leads"`
	Reminders  []Reminder `json:"reminders"`
}

// BackupStatus summarizes what a snapshot taken now would contain.
type BackupStatus struct {
	LeadsCount     int       `json:"leads_count"`
	RemindersCount int       `json:"reminders_count"`
	GeneratedAt    time.Time `json:"generated_at"`
}
