package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"leasingcrm/internal/services"
)

type BackupHandler struct {
	Service *services.BackupService
}

func NewBackupHandler(service *services.BackupService) *BackupHandler {
	return &BackupHandler{Service: service}
}

// @Summary      Backup status
// @Tags         Backup
// @Produce      json
// @Success      200  {object}  models.BackupStatus
// @Router       /backup/status [get]
func (h *BackupHandler) Status(c *gin.Context) {
	status, err := h.Service.Status()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read backup status"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary      Export the full dataset
// @Tags         Backup
// @Produce      json
// @Success      200  {object}  models.BackupSnapshot
// @Router       /backup/export [get]
func (h *BackupHandler) Export(c *gin.Context) {
	snapshot, err := h.Service.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export backup"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="crm_backup.json"`)
	c.JSON(http.StatusOK, snapshot)
}

// @Summary      Import a dataset snapshot
// @Description  Replaces all leads and reminders. All-or-nothing: a malformed snapshot changes nothing
// @Tags         Backup
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.BackupStatus
// @Failure      400  {object}  map[string]string
// @Router       /backup/import [post]
func (h *BackupHandler) Import(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	status, err := h.Service.Import(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "backup imported", "status": status})
}
