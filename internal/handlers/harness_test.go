package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"leasingcrm/internal/models"
	"leasingcrm/internal/services"
)

// In-memory stores and a stub sheet generator so handler tests run the
// real services against the real routes without Postgres.

type memLeadStore struct {
	leads []models.Lead
}

func (s *memLeadStore) Create(lead *models.Lead) error {
	s.leads = append(s.leads, *lead.Clone())
	return nil
}

func (s *memLeadStore) Update(lead *models.Lead) error {
	for i := range s.leads {
		if s.leads[i].ID == lead.ID {
			s.leads[i] = *lead.Clone()
			return nil
		}
	}
	return nil
}

func (s *memLeadStore) GetByID(id string) (*models.Lead, error) {
	for i := range s.leads {
		if s.leads[i].ID == id {
			return s.leads[i].Clone(), nil
		}
	}
	return nil, nil
}

func (s *memLeadStore) List() ([]models.Lead, error) {
	return append([]models.Lead(nil), s.leads...), nil
}

func (s *memLeadStore) ListByStatus(status string) ([]models.Lead, error) {
	var out []models.Lead
	for _, l := range s.leads {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *memLeadStore) ListExcludingStatuses(statuses ...string) ([]models.Lead, error) {
	excluded := make(map[string]bool, len(statuses))
	for _, st := range statuses {
		excluded[st] = true
	}
	var out []models.Lead
	for _, l := range s.leads {
		if !excluded[l.Status] {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *memLeadStore) Delete(id string) error {
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memLeadStore) Count() (int, error) {
	return len(s.leads), nil
}

type memReminderStore struct {
	reminders []models.Reminder
}

func (s *memReminderStore) Create(r *models.Reminder) error {
	s.reminders = append(s.reminders, *r)
	return nil
}

func (s *memReminderStore) GetByID(id string) (*models.Reminder, error) {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			r := s.reminders[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (s *memReminderStore) List() ([]models.Reminder, error) {
	return append([]models.Reminder(nil), s.reminders...), nil
}

func (s *memReminderStore) ListWindow(from, to time.Time) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range s.reminders {
		if !r.ReminderDate.Before(from) && !r.ReminderDate.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memReminderStore) SetCompleted(id string, completed bool) error {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders[i].Completed = completed
			return nil
		}
	}
	return nil
}

func (s *memReminderStore) Delete(id string) error {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memReminderStore) Count() (int, error) {
	return len(s.reminders), nil
}

type stubSheets struct{}

func (stubSheets) LeadSheet(lead *models.Lead) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

type testEnv struct {
	router    *gin.Engine
	leads     *memLeadStore
	reminders *memReminderStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	leadStore := &memLeadStore{}
	reminderStore := &memReminderStore{}
	catalog := models.DefaultCatalog()

	leadSvc := services.NewLeadService(leadStore, catalog)
	reminderSvc := services.NewReminderService(reminderStore, leadStore, nil)

	leadHandler := NewLeadHandler(leadSvc, stubSheets{})
	clientHandler := NewClientHandler(leadSvc)
	reminderHandler := NewReminderHandler(reminderSvc)
	dashboardHandler := NewDashboardHandler(services.NewDashboardService(leadStore))

	r := gin.New()
	api := r.Group("/api")
	leads := api.Group("/leads")
	{
		leads.POST("", leadHandler.Create)
		leads.GET("", leadHandler.List)
		leads.GET("/active", leadHandler.ListActive)
		leads.GET("/:id", leadHandler.GetByID)
		leads.PUT("/:id", leadHandler.Update)
		leads.DELETE("/:id", leadHandler.Delete)
		leads.GET("/:id/pdf", leadHandler.DownloadPDF)
	}
	api.GET("/clients", clientHandler.List)
	api.GET("/dashboard/stats", dashboardHandler.Stats)
	reminders := api.Group("/reminders")
	{
		reminders.POST("", reminderHandler.Create)
		reminders.GET("", reminderHandler.List)
		reminders.PUT("/:id", reminderHandler.Update)
		reminders.DELETE("/:id", reminderHandler.Delete)
	}
	api.GET("/calendar/reminders", reminderHandler.Calendar)

	return &testEnv{router: r, leads: leadStore, reminders: reminderStore}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func (e *testEnv) createLead(t *testing.T, mutate func(*models.Lead)) models.Lead {
	t.Helper()
	lead := models.Lead{
		Company: models.Company{Name: "Transports Dupont"},
		Contact: models.Contact{
			FirstName: "Jean",
			LastName:  "Dupont",
			Email:     "jean.dupont@example.com",
		},
		Vehicles: []models.Vehicle{{
			Brand:            "Peugeot",
			Model:            "308",
			Carburant:        models.CarburantDiesel,
			ContractDuration: 36,
			AnnualMileage:    15000,
			CommissionAgence: "800€",
		}},
		Status: models.StatusPremierContact,
	}
	if mutate != nil {
		mutate(&lead)
	}
	w := e.do(t, http.MethodPost, "/api/leads", lead)
	if w.Code != http.StatusCreated {
		t.Fatalf("create lead: status %d, body %s", w.Code, w.Body.String())
	}
	var created models.Lead
	decodeBody(t, w, &created)
	return created
}
