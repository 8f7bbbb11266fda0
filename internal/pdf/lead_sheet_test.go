package pdf

import (
	"bytes"
	"testing"
	"time"

	"leasingcrm/internal/models"
)

func TestLeadSheet(t *testing.T) {
	delivery := models.NewDate(2026, time.March, 1)
	end := models.NewDate(2029, time.March, 1)
	lead := &models.Lead{
		ID:      "2f1e0a9c-0000-0000-0000-000000000000",
		Company: models.Company{Name: "Transports Dupont", Siret: "12345678901234"},
		Contact: models.Contact{FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com"},
		Vehicles: []models.Vehicle{{
			Brand:            "Peugeot",
			Model:            "308",
			Carburant:        models.CarburantDiesel,
			ContractDuration: 36,
			AnnualMileage:    15000,
			TarifMensuel:     "450€",
			CommissionAgence: "800€",
			PaymentStatus:    models.PaymentEnAttente,
		}},
		Status:          models.StatusAccord,
		DeliveryDate:    &delivery,
		ContractEndDate: &end,
	}

	data, err := NewSheetGenerator("").LeadSheet(lead)
	if err != nil {
		t.Fatalf("LeadSheet: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a pdf: %q", data[:min(16, len(data))])
	}
}

func TestLeadSheetMinimalLead(t *testing.T) {
	lead := &models.Lead{
		ID:      "abc",
		Company: models.Company{Name: "Vide"},
		Status:  models.StatusAContacter,
	}
	data, err := NewSheetGenerator("").LeadSheet(lead)
	if err != nil {
		t.Fatalf("LeadSheet on a bare lead: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty output")
	}
}
