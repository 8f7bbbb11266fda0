package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leasingcrm/internal/models"
)

// ConfigHandler exposes the catalog the frontend builds its dropdowns
// from. The same catalog drives server-side validation, so the two can
// never disagree.
type ConfigHandler struct {
	Catalog models.Catalog
}

func NewConfigHandler(catalog models.Catalog) *ConfigHandler {
	return &ConfigHandler{Catalog: catalog}
}

// @Summary      CRM configuration catalog
// @Tags         Config
// @Produce      json
// @Success      200  {object}  models.Catalog
// @Router       /config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog)
}
