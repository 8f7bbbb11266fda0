package models

// Catalog is the authoritative source for every configurable enumeration
// of the CRM: brand→models, contract durations, mileages, assignment
// lists and the status set itself. It is served as-is on GET /config and
// the save rules reject values outside it.
type Catalog struct {
	CarBrands         map[string][]string `json:"car_brands" yaml:"car_brands"`
	ContractDurations []int               `json:"contract_durations" yaml:"contract_durations"`
	AnnualMileages    []int               `json:"annual_mileages" yaml:"annual_mileages"`
	Prestataires      []string            `json:"prestataires" yaml:"prestataires"`
	Commerciaux       []string            `json:"commerciaux" yaml:"commerciaux"`
	Statuses          []string            `json:"statuses" yaml:"statuses"`
	StatusColors      map[string]string   `json:"status_colors" yaml:"status_colors"`
}

func DefaultCatalog() Catalog {
	mileages := make([]int, 0, 11)
	for km := 10000; km <= 60000; km += 5000 {
		mileages = append(mileages, km)
	}
	return Catalog{
		CarBrands: map[string][]string{
			"Peugeot":    {"208", "308", "3008", "5008", "508", "2008", "Partner", "Expert", "Boxer"},
			"Renault":    {"Clio", "Megane", "Captur", "Kadjar", "Koleos", "Talisman", "Master", "Kangoo"},
			"Citroën":    {"C3", "C4", "C5 Aircross", "Berlingo", "Jumper", "SpaceTourer"},
			"Volkswagen": {"Golf", "Polo", "Tiguan", "Passat", "Touareg", "Transporter", "Crafter"},
			"BMW":        {"Série 1", "Série 3", "Série 5", "X1", "X3", "X5", "i3", "i4"},
			"Mercedes":   {"Classe A", "Classe C", "Classe E", "GLA", "GLC", "Vito", "Sprinter"},
			"Audi":       {"A1", "A3", "A4", "A6", "Q2", "Q3", "Q5", "Q7", "e-tron"},
			"Toyota":     {"Yaris", "Corolla", "RAV4", "Prius", "Camry", "Hilux", "Proace"},
			"Ford":       {"Fiesta", "Focus", "Kuga", "Mondeo", "Transit", "Ranger"},
		},
		ContractDurations: []int{24, 25, 27, 30, 35, 36, 37, 48, 60},
		AnnualMileages:    mileages,
		Prestataires: []string{
			"Localease", "Leasefactory", "Ayvens", "Leaseplan", "ALD Automotive",
			"Alphabet", "Arval", "Autre",
		},
		Commerciaux: []string{"Matthews", "Sauveur", "Autre"},
		Statuses: []string{
			StatusAContacter, StatusPremierContact, StatusRelance, StatusAttribue,
			StatusOffre, StatusAttenteDocument, StatusEtudeEnCours, StatusAccord,
			StatusLivree, StatusPerdu,
		},
		StatusColors: map[string]string{
			StatusAContacter:      "#64748b",
			StatusPremierContact:  "#94a3b8",
			StatusRelance:         "#f59e0b",
			StatusAttribue:        "#06b6d4",
			StatusOffre:           "#8b5cf6",
			StatusAttenteDocument: "#f97316",
			StatusEtudeEnCours:    "#3b82f6",
			StatusAccord:          "#10b981",
			StatusLivree:          "#22c55e",
			StatusPerdu:           "#ef4444",
		},
	}
}

func (c Catalog) HasStatus(status string) bool {
	for _, s := range c.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// ModelsFor returns the allowed models for a brand. ok is false for a
// brand outside the catalog.
func (c Catalog) ModelsFor(brand string) (models []string, ok bool) {
	models, ok = c.CarBrands[brand]
	return
}

func (c Catalog) HasModel(brand, model string) bool {
	models, ok := c.CarBrands[brand]
	if !ok {
		return false
	}
	for _, m := range models {
		if m == model {
			return true
		}
	}
	return false
}

func (c Catalog) HasDuration(months int) bool {
	for _, d := range c.ContractDurations {
		if d == months {
			return true
		}
	}
	return false
}

func (c Catalog) HasMileage(km int) bool {
	for _, m := range c.AnnualMileages {
		if m == km {
			return true
		}
	}
	return false
}

func (c Catalog) HasPrestataire(name string) bool {
	for _, p := range c.Prestataires {
		if p == name {
			return true
		}
	}
	return false
}

func (c Catalog) HasCommercial(name string) bool {
	for _, cm := range c.Commerciaux {
		if cm == name {
			return true
		}
	}
	return false
}
