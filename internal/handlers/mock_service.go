package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/schedule"
	"github.com/mikasr411/RouteBoss/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockCustomers struct {
	customers []models.Customer
	customer  models.Customer
	err       error

	lastID          string
	lastServiceDate string
	lastFrequency   models.ServiceFrequency
	lastNextDate    string
	lastSelected    bool
	geocodeUpdated  int
}

func (m *mockCustomers) List(ctx context.Context) ([]models.Customer, error) {
	return m.customers, m.err
}
func (m *mockCustomers) Get(ctx context.Context, id string) (models.Customer, error) {
	m.lastID = id
	return m.customer, m.err
}
func (m *mockCustomers) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	if m.err != nil {
		return models.Customer{}, m.err
	}
	return c, nil
}
func (m *mockCustomers) Delete(ctx context.Context, id string) error {
	m.lastID = id
	return m.err
}
func (m *mockCustomers) LogService(ctx context.Context, id, serviceDate string) (models.Customer, error) {
	m.lastID = id
	m.lastServiceDate = serviceDate
	return m.customer, m.err
}
func (m *mockCustomers) SkipCycle(ctx context.Context, id string) (models.Customer, error) {
	m.lastID = id
	return m.customer, m.err
}
func (m *mockCustomers) SetFrequency(ctx context.Context, id string, f models.ServiceFrequency) (models.Customer, error) {
	m.lastID = id
	m.lastFrequency = f
	return m.customer, m.err
}
func (m *mockCustomers) SetNextServiceDate(ctx context.Context, id, nextDate string) (models.Customer, error) {
	m.lastID = id
	m.lastNextDate = nextDate
	return m.customer, m.err
}
func (m *mockCustomers) SelectForRoute(ctx context.Context, id string, selected bool) (models.Customer, error) {
	m.lastID = id
	m.lastSelected = selected
	return m.customer, m.err
}
func (m *mockCustomers) GeocodeMissing(ctx context.Context) (int, error) {
	return m.geocodeUpdated, m.err
}

type mockEquipments struct {
	equipment []models.Equipment
	single    models.Equipment
	reminders []models.Reminder
	reminder  models.Reminder
	costs     service.MaintenanceCosts
	err       error

	lastID     string
	lastDelta  float64
	lastLog    service.ServiceLogParams
	lastParams service.ReminderParams
}

func (m *mockEquipments) List(ctx context.Context) ([]models.Equipment, error) {
	return m.equipment, m.err
}
func (m *mockEquipments) Get(ctx context.Context, id string) (models.Equipment, error) {
	m.lastID = id
	return m.single, m.err
}
func (m *mockEquipments) Create(ctx context.Context, eq models.Equipment) (models.Equipment, error) {
	if m.err != nil {
		return models.Equipment{}, m.err
	}
	return eq, nil
}
func (m *mockEquipments) Delete(ctx context.Context, id string) error {
	m.lastID = id
	return m.err
}
func (m *mockEquipments) AddHours(ctx context.Context, id string, delta float64) (models.Equipment, error) {
	m.lastID = id
	m.lastDelta = delta
	return m.single, m.err
}
func (m *mockEquipments) LogService(ctx context.Context, id string, p service.ServiceLogParams) (models.Equipment, error) {
	m.lastID = id
	m.lastLog = p
	return m.single, m.err
}
func (m *mockEquipments) Reminders(ctx context.Context, equipmentID string) ([]models.Reminder, error) {
	m.lastID = equipmentID
	return m.reminders, m.err
}
func (m *mockEquipments) AddReminder(ctx context.Context, equipmentID string, p service.ReminderParams) (models.Reminder, error) {
	m.lastID = equipmentID
	m.lastParams = p
	return m.reminder, m.err
}
func (m *mockEquipments) UpdateReminder(ctx context.Context, reminderID string, p service.ReminderParams) (models.Reminder, error) {
	m.lastID = reminderID
	m.lastParams = p
	return m.reminder, m.err
}
func (m *mockEquipments) DeleteReminder(ctx context.Context, reminderID string) error {
	m.lastID = reminderID
	return m.err
}
func (m *mockEquipments) Costs(ctx context.Context, id string) (service.MaintenanceCosts, error) {
	m.lastID = id
	return m.costs, m.err
}

type mockServiceLog struct {
	records    []models.ServiceRecord
	err        error
	lastFilter service.HistoryFilter
}

func (m *mockServiceLog) List(ctx context.Context, f service.HistoryFilter) ([]models.ServiceRecord, error) {
	m.lastFilter = f
	return m.records, m.err
}

type mockWorklist struct {
	entries     []schedule.WorklistEntry
	due         []models.Customer
	err         error
	lastHorizon int
	builds      int
}

func (m *mockWorklist) Build(ctx context.Context, horizonDays int) ([]schedule.WorklistEntry, error) {
	m.builds++
	m.lastHorizon = horizonDays
	return m.entries, m.err
}
func (m *mockWorklist) DueCustomers(ctx context.Context) ([]models.Customer, error) {
	return m.due, m.err
}

type mockTemplates struct {
	rendered string
	err      error
	lastID   string
	lastTpl  string
}

func (m *mockTemplates) Render(tpl string, c models.Customer, now time.Time) (string, error) {
	m.lastTpl = tpl
	return m.rendered, m.err
}
func (m *mockTemplates) Preview(ctx context.Context, customerID, tpl string) (string, error) {
	m.lastID = customerID
	m.lastTpl = tpl
	return m.rendered, m.err
}

type mockImporter struct {
	summary  service.ImportSummary
	err      error
	lastBody []byte
}

func (m *mockImporter) ImportCustomers(ctx context.Context, r io.Reader) (service.ImportSummary, error) {
	m.lastBody, _ = io.ReadAll(r)
	return m.summary, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// authedService wraps mocks with an auth mock that accepts any token.
func authedService(s *service.Service) *service.Service {
	if s.Authorization == nil {
		s.Authorization = &mockAuth{parseID: 1}
	}
	return s
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
