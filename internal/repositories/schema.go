package repositories

import "database/sql"

// EnsureSchema creates the tables on first run. The nested company,
// contact and vehicles shapes live in jsonb columns; everything the
// repositories filter or sort on is a plain column.
func EnsureSchema(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS leads (
		id                      TEXT PRIMARY KEY,
		company                 JSONB NOT NULL,
		contact                 JSONB NOT NULL,
		vehicles                JSONB NOT NULL DEFAULT '[]',
		status                  TEXT NOT NULL,
		note                    TEXT NOT NULL DEFAULT '',
		lead_creation_date      DATE,
		created_at              TIMESTAMPTZ NOT NULL,
		assigned_to_prestataire TEXT NOT NULL DEFAULT '',
		assigned_to_commercial  TEXT NOT NULL DEFAULT '',
		delivery_date           DATE,
		contract_end_date       DATE
	);
	CREATE INDEX IF NOT EXISTS idx_leads_status ON leads (status);

	CREATE TABLE IF NOT EXISTS reminders (
		id            TEXT PRIMARY KEY,
		lead_id       TEXT NOT NULL,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		reminder_date TIMESTAMPTZ NOT NULL,
		completed     BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_reminders_date ON reminders (reminder_date);
	`
	_, err := db.Exec(schema)
	return err
}
