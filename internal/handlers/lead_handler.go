package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"leasingcrm/internal/models"
	"leasingcrm/internal/pdf"
	"leasingcrm/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
	Sheets  pdf.Generator
}

func NewLeadHandler(service *services.LeadService, sheets pdf.Generator) *LeadHandler {
	return &LeadHandler{Service: service, Sheets: sheets}
}

// @Summary      Create a lead
// @Description  Validates the lead against the status rules and the catalog, derives the contract end date and persists it
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        lead  body      models.Lead  true  "Lead to create"
// @Success      201   {object}  models.Lead
// @Failure      400   {object}  map[string]interface{}
// @Router       /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.Create(&lead)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Update a lead
// @Description  Merges the payload over the stored lead, re-validates and re-derives before saving; partial payloads are accepted
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Lead id"
// @Param        lead  body      models.Lead  true  "Fields to update"
// @Success      200   {object}  models.Lead
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]string
// @Router       /leads/{id} [put]
func (h *LeadHandler) Update(c *gin.Context) {
	id := c.Param("id")
	current, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}

	// Binding over a copy of the stored lead gives merge semantics:
	// absent fields keep their persisted value.
	candidate := *current.Clone()
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.Update(id, &candidate)
	if err != nil {
		respondError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Get a lead
// @Tags         Leads
// @Produce      json
// @Param        id  path      string  true  "Lead id"
// @Success      200  {object}  models.Lead
// @Failure      404  {object}  map[string]string
// @Router       /leads/{id} [get]
func (h *LeadHandler) GetByID(c *gin.Context) {
	lead, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

// @Summary      Delete a lead
// @Tags         Leads
// @Param        id  path  string  true  "Lead id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	lead, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      List leads
// @Description  Optional search (company, contact, vehicles, note), exact status filter and sort key
// @Tags         Leads
// @Produce      json
// @Param        search  query     string  false  "Substring search"
// @Param        status  query     string  false  "Exact status filter"
// @Param        sort    query     string  false  "Sort key (company_name, contact_name, status, commercial, prestataire, vehicle_brand, created_at, created_at_asc, lead_creation_date, lead_creation_date_desc, commission_total)"
// @Success      200  {array}  models.Lead
// @Router       /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.Service.List(c.Query("search"), c.Query("status"), c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

// @Summary      List active leads
// @Description  Leads still in the pipeline (neither delivered nor lost)
// @Tags         Leads
// @Produce      json
// @Success      200  {array}  models.Lead
// @Router       /leads/active [get]
func (h *LeadHandler) ListActive(c *gin.Context) {
	leads, err := h.Service.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

// @Summary      Download the lead sheet PDF
// @Tags         Leads
// @Produce      application/pdf
// @Param        id  path  string  true  "Lead id"
// @Success      200  {file}  file
// @Failure      404  {object}  map[string]string
// @Router       /leads/{id}/pdf [get]
func (h *LeadHandler) DownloadPDF(c *gin.Context) {
	lead, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}

	data, err := h.Sheets.LeadSheet(lead)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate pdf"})
		return
	}

	filename := fmt.Sprintf("Lead_%s_%s.pdf", sanitizeFilename(lead.Company.Name), shortID(lead.ID))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, name)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
