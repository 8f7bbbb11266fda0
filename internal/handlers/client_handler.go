package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"leasingcrm/internal/models"
	"leasingcrm/internal/services"
)

// ClientHandler serves the read-only registry of delivered leads.
type ClientHandler struct {
	Service *services.LeadService
}

func NewClientHandler(service *services.LeadService) *ClientHandler {
	return &ClientHandler{Service: service}
}

// clientView adds the contract countdown the registry displays.
// days_remaining can be negative for an expired contract.
type clientView struct {
	models.Lead
	DaysRemaining *int `json:"days_remaining,omitempty"`
}

// @Summary      List clients
// @Description  Leads whose status reached livree, presented as clients with their contract countdown
// @Tags         Clients
// @Produce      json
// @Success      200  {array}  models.Lead
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.Service.ListClients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}
	now := time.Now()
	out := make([]clientView, 0, len(clients))
	for _, lead := range clients {
		out = append(out, clientView{
			Lead:          lead,
			DaysRemaining: services.DaysRemaining(lead.ContractEndDate, now),
		})
	}
	c.JSON(http.StatusOK, out)
}
