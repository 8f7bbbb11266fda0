package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"leasingcrm/internal/models"
)

// Generator is an interface so handlers can be tested with a stub.
type Generator interface {
	LeadSheet(lead *models.Lead) ([]byte, error)
}

// SheetGenerator renders the printable lead sheet the brokers hand to
// prestataires. With a TTF configured (DejaVu recommended) the sheet is
// full UTF-8; without one it falls back to the core Helvetica font and
// a latin-1 translator, which covers French accents.
type SheetGenerator struct {
	FontPath string
	fontName string
}

func NewSheetGenerator(fontPath string) *SheetGenerator {
	return &SheetGenerator{FontPath: fontPath, fontName: "Helvetica"}
}

func (g *SheetGenerator) LeadSheet(lead *models.Lead) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fiche lead "+lead.Company.Name, true)
	pdf.SetAuthor("CRM LLD", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	tr := func(s string) string { return s }
	font := g.fontName
	if g.FontPath != "" {
		pdf.AddUTF8Font("custom", "", g.FontPath)
		pdf.AddUTF8Font("custom", "B", g.FontPath)
		font = "custom"
	} else {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.AddPage()

	pdf.SetFont(font, "B", 18)
	pdf.CellFormat(0, 10, tr("FICHE LEAD"), "", 1, "C", false, 0, "")
	pdf.SetFont(font, "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Réf. %s - statut %s", shortRef(lead.ID), lead.Status)), "", 1, "C", false, 0, "")
	hr(pdf)

	sectionTitle(pdf, font, tr, "Société")
	kvLine(pdf, font, tr, "Raison sociale", lead.Company.Name)
	kvLine(pdf, font, tr, "SIRET", lead.Company.Siret)
	kvLine(pdf, font, tr, "Adresse", lead.Company.Address)
	kvLine(pdf, font, tr, "Téléphone", lead.Company.Phone)
	kvLine(pdf, font, tr, "Email", lead.Company.Email)
	hr(pdf)

	sectionTitle(pdf, font, tr, "Contact")
	kvLine(pdf, font, tr, "Nom", lead.Contact.FirstName+" "+lead.Contact.LastName)
	kvLine(pdf, font, tr, "Email", lead.Contact.Email)
	kvLine(pdf, font, tr, "Téléphone", lead.Contact.Phone)
	kvLine(pdf, font, tr, "Fonction", lead.Contact.Position)
	hr(pdf)

	sectionTitle(pdf, font, tr, "Véhicules")
	if len(lead.Vehicles) == 0 {
		pdf.SetFont(font, "", 11)
		pdf.MultiCell(0, 6, tr("Aucun véhicule renseigné."), "", "L", false)
	}
	for i, v := range lead.Vehicles {
		kvLine(pdf, font, tr, fmt.Sprintf("Véhicule %d", i+1),
			fmt.Sprintf("%s %s (%s)", v.Brand, v.Model, v.Carburant))
		kvLine(pdf, font, tr, "Contrat",
			fmt.Sprintf("%d mois / %s km/an", v.ContractDuration, thousands(v.AnnualMileage)))
		if v.TarifMensuel != "" {
			kvLine(pdf, font, tr, "Tarif mensuel", v.TarifMensuel)
		}
		if v.CommissionAgence != "" {
			paid := "en attente"
			if v.PaymentStatus == models.PaymentPaye {
				paid = "payée"
			}
			kvLine(pdf, font, tr, "Commission", v.CommissionAgence+" ("+paid+")")
		}
		pdf.Ln(1)
	}
	hr(pdf)

	sectionTitle(pdf, font, tr, "Suivi")
	kvLine(pdf, font, tr, "Commercial", lead.AssignedToCommercial)
	kvLine(pdf, font, tr, "Prestataire", lead.AssignedToPrestataire)
	if lead.DeliveryDate != nil {
		kvLine(pdf, font, tr, "Livraison", lead.DeliveryDate.Format("02/01/2006"))
	}
	if lead.ContractEndDate != nil {
		kvLine(pdf, font, tr, "Fin de contrat", lead.ContractEndDate.Format("02/01/2006"))
	}
	if lead.Note != "" {
		pdf.Ln(1)
		pdf.SetFont(font, "", 11)
		pdf.MultiCell(0, 6, tr(lead.Note), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *gofpdf.Fpdf, font string, tr func(string) string, title string) {
	pdf.Ln(2)
	pdf.SetFont(font, "B", 13)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
}

func kvLine(pdf *gofpdf.Fpdf, font string, tr func(string) string, key, value string) {
	if value == "" {
		return
	}
	pdf.SetFont(font, "B", 11)
	pdf.CellFormat(45, 6, tr(key), "", 0, "L", false, 0, "")
	pdf.SetFont(font, "", 11)
	pdf.MultiCell(0, 6, tr(value), "", "L", false)
}

func hr(pdf *gofpdf.Fpdf) {
	pdf.Ln(2)
	x, y := pdf.GetXY()
	pageWidth, _ := pdf.GetPageSize()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(x, y, pageWidth-20, y)
	pdf.Ln(3)
}

func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func thousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	return s[:len(s)-3] + " " + s[len(s)-3:]
}
