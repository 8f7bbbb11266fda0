package models

import "time"

// LeadStatus values follow the pipeline of the brokerage. The list the
// server actually accepts comes from the catalog, so a new status is a
// configuration change; these constants only name the well-known ones.
const (
	StatusAContacter      = "a_contacter"
	StatusPremierContact  = "premier_contact"
	StatusRelance         = "relance"
	StatusAttribue        = "attribue"
	StatusOffre           = "offre"
	StatusAttenteDocument = "attente_document"
	StatusEtudeEnCours    = "etude_en_cours"
	StatusAccord          = "accord"
	StatusLivree          = "livree"
	StatusPerdu           = "perdu"
)

const (
	CarburantDiesel     = "diesel"
	CarburantEssence    = "essence"
	CarburantHybride    = "hybride"
	CarburantElectrique = "electrique"
)

const (
	PaymentEnAttente = "en_attente"
	PaymentPaye      = "paye"
)

const (
	DefaultContractDuration = 36
	DefaultAnnualMileage    = 15000
)

type Company struct {
	Name    string `json:"name"`
	Siret   string `json:"siret,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type Contact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Position  string `json:"position,omitempty"`
}

// Vehicle is one leased-vehicle line item attached to a lead.
// TarifMensuel and CommissionAgence stay free text ("800€") so that
// existing backups and the frontend keep round-tripping unchanged.
type Vehicle struct {
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	Carburant        string `json:"carburant"`
	ContractDuration int    `json:"contract_duration"`
	AnnualMileage    int    `json:"annual_mileage"`
	TarifMensuel     string `json:"tarif_mensuel,omitempty"`
	CommissionAgence string `json:"commission_agence,omitempty"`
	PaymentStatus    string `json:"payment_status"`
}

type Lead struct {
	ID                    string    `json:"id"`
	Company               Company   `json:"company"`
	Contact               Contact   `json:"contact"`
	Vehicles              []Vehicle `json:"vehicles"`
	Status                string    `json:"status"`
	Note                  string    `json:"note,omitempty"`
	LeadCreationDate      *Date     `json:"lead_creation_date,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	AssignedToPrestataire string    `json:"assigned_to_prestataire,omitempty"`
	AssignedToCommercial  string    `json:"assigned_to_commercial,omitempty"`
	DeliveryDate          *Date     `json:"delivery_date,omitempty"`
	// ContractEndDate is derived from DeliveryDate and the first
	// vehicle's contract duration; client-supplied values are ignored.
	ContractEndDate *Date `json:"contract_end_date,omitempty"`
}

// Clone returns a deep copy, so rule functions can normalize a lead
// without touching the caller's value.
func (l *Lead) Clone() *Lead {
	out := *l
	out.Vehicles = make([]Vehicle, len(l.Vehicles))
	copy(out.Vehicles, l.Vehicles)
	out.LeadCreationDate = cloneDate(l.LeadCreationDate)
	out.DeliveryDate = cloneDate(l.DeliveryDate)
	out.ContractEndDate = cloneDate(l.ContractEndDate)
	return &out
}

func cloneDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

// FirstVehicle returns the vehicle driving the contract end date, or nil.
func (l *Lead) FirstVehicle() *Vehicle {
	if len(l.Vehicles) == 0 {
		return nil
	}
	return &l.Vehicles[0]
}

func ValidCarburant(s string) bool {
	switch s {
	case "", CarburantDiesel, CarburantEssence, CarburantHybride, CarburantElectrique:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case "", PaymentEnAttente, PaymentPaye:
		return true
	}
	return false
}
