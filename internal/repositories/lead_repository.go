package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/lib/pq"

	"leasingcrm/internal/models"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadRepository{db: db}
}

const leadColumns = `id, company, contact, vehicles, status, note, lead_creation_date,
	created_at, assigned_to_prestataire, assigned_to_commercial, delivery_date, contract_end_date`

func (r *LeadRepository) Create(lead *models.Lead) error {
	company, contact, vehicles, err := marshalLeadDocs(lead)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = r.db.Exec(query,
		lead.ID, company, contact, vehicles, lead.Status, lead.Note,
		lead.LeadCreationDate, lead.CreatedAt,
		lead.AssignedToPrestataire, lead.AssignedToCommercial,
		lead.DeliveryDate, lead.ContractEndDate,
	)
	return err
}

func (r *LeadRepository) Update(lead *models.Lead) error {
	company, contact, vehicles, err := marshalLeadDocs(lead)
	if err != nil {
		return err
	}
	const query = `
		UPDATE leads
		SET company=$1, contact=$2, vehicles=$3, status=$4, note=$5,
		    lead_creation_date=$6, assigned_to_prestataire=$7,
		    assigned_to_commercial=$8, delivery_date=$9, contract_end_date=$10
		WHERE id=$11
	`
	_, err = r.db.Exec(query,
		company, contact, vehicles, lead.Status, lead.Note,
		lead.LeadCreationDate, lead.AssignedToPrestataire, lead.AssignedToCommercial,
		lead.DeliveryDate, lead.ContractEndDate, lead.ID,
	)
	return err
}

func (r *LeadRepository) GetByID(id string) (*models.Lead, error) {
	const query = `SELECT ` + leadColumns + ` FROM leads WHERE id=$1`
	lead, err := scanLead(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) Delete(id string) error {
	const query = `DELETE FROM leads WHERE id=$1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *LeadRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, err
}

func (r *LeadRepository) List() ([]models.Lead, error) {
	const query = `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`
	return r.queryLeads(query)
}

func (r *LeadRepository) ListByStatus(status string) ([]models.Lead, error) {
	const query = `SELECT ` + leadColumns + ` FROM leads WHERE status=$1 ORDER BY created_at DESC`
	return r.queryLeads(query, status)
}

func (r *LeadRepository) ListExcludingStatuses(statuses ...string) ([]models.Lead, error) {
	const query = `SELECT ` + leadColumns + ` FROM leads WHERE NOT (status = ANY($1)) ORDER BY created_at DESC`
	return r.queryLeads(query, pq.Array(statuses))
}

func (r *LeadRepository) queryLeads(query string, args ...interface{}) ([]models.Lead, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *lead)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*models.Lead, error) {
	var (
		lead                             models.Lead
		company, contact, vehicles       []byte
		creationDate, delivery, contract models.Date
	)
	err := row.Scan(
		&lead.ID, &company, &contact, &vehicles, &lead.Status, &lead.Note,
		&creationDate, &lead.CreatedAt,
		&lead.AssignedToPrestataire, &lead.AssignedToCommercial,
		&delivery, &contract,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(company, &lead.Company); err != nil {
		return nil, fmt.Errorf("lead %s: bad company document: %w", lead.ID, err)
	}
	if err := json.Unmarshal(contact, &lead.Contact); err != nil {
		return nil, fmt.Errorf("lead %s: bad contact document: %w", lead.ID, err)
	}
	if err := json.Unmarshal(vehicles, &lead.Vehicles); err != nil {
		return nil, fmt.Errorf("lead %s: bad vehicles document: %w", lead.ID, err)
	}
	lead.LeadCreationDate = datePtr(creationDate)
	lead.DeliveryDate = datePtr(delivery)
	lead.ContractEndDate = datePtr(contract)
	return &lead, nil
}

func datePtr(d models.Date) *models.Date {
	if d.IsZero() {
		return nil
	}
	return &d
}

func marshalLeadDocs(lead *models.Lead) (company, contact, vehicles []byte, err error) {
	if company, err = json.Marshal(lead.Company); err != nil {
		return
	}
	if contact, err = json.Marshal(lead.Contact); err != nil {
		return
	}
	if lead.Vehicles == nil {
		vehicles = []byte("[]")
		return
	}
	vehicles, err = json.Marshal(lead.Vehicles)
	return
}
