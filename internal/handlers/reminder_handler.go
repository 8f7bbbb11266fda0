package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leasingcrm/internal/models"
	"leasingcrm/internal/services"
)

type ReminderHandler struct {
	Service *services.ReminderService
}

func NewReminderHandler(service *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: service}
}

// @Summary      Create a reminder
// @Tags         Reminders
// @Accept       json
// @Produce      json
// @Param        reminder  body      models.Reminder  true  "Reminder to create"
// @Success      201       {object}  models.Reminder
// @Failure      400       {object}  map[string]interface{}
// @Router       /reminders [post]
func (h *ReminderHandler) Create(c *gin.Context) {
	var reminder models.Reminder
	if err := c.ShouldBindJSON(&reminder); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.Create(&reminder)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "reminder created", "reminder": created})
}

// @Summary      List reminders
// @Tags         Reminders
// @Produce      json
// @Success      200  {array}  models.Reminder
// @Router       /reminders [get]
func (h *ReminderHandler) List(c *gin.Context) {
	reminders, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reminders"})
		return
	}
	c.JSON(http.StatusOK, reminders)
}

type updateReminderRequest struct {
	Completed bool `json:"completed"`
}

// @Summary      Mark a reminder done or not done
// @Tags         Reminders
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Reminder id"
// @Param        body  body      updateReminderRequest  true  "Completion flag"
// @Success      200   {object}  models.Reminder
// @Failure      404   {object}  map[string]string
// @Router       /reminders/{id} [put]
func (h *ReminderHandler) Update(c *gin.Context) {
	var req updateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.Service.SetCompleted(c.Param("id"), req.Completed)
	if err != nil {
		respondError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a reminder
// @Tags         Reminders
// @Param        id  path  string  true  "Reminder id"
// @Success      204
// @Router       /reminders/{id} [delete]
func (h *ReminderHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Upcoming reminders for the calendar
// @Tags         Reminders
// @Produce      json
// @Param        days  query     int  false  "Window in days (default 30)"
// @Success      200   {array}  models.Reminder
// @Router       /calendar/reminders [get]
func (h *ReminderHandler) Calendar(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 {
		days = 30
	}
	reminders, err := h.Service.Upcoming(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reminders"})
		return
	}
	c.JSON(http.StatusOK, reminders)
}
