package service

import (
	"context"
	"io"
	"time"

	"github.com/mikasr411/RouteBoss/internal/logger"
	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/repository"
	"github.com/mikasr411/RouteBoss/internal/schedule"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Customers exposes the cadence-domain reconciliation operations. There
// is deliberately no arbitrary field-patch primitive: every mutation is
// a named operation with known invariants.
type Customers interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id string) (models.Customer, error)
	Create(ctx context.Context, c models.Customer) (models.Customer, error)
	Delete(ctx context.Context, id string) error
	// LogService records a completed visit and recomputes the next one.
	LogService(ctx context.Context, id, serviceDate string) (models.Customer, error)
	// SkipCycle rolls the next visit forward one frequency interval.
	SkipCycle(ctx context.Context, id string) (models.Customer, error)
	// SetFrequency re-baselines the next visit from the last service
	// date, discarding any manual override.
	SetFrequency(ctx context.Context, id string, f models.ServiceFrequency) (models.Customer, error)
	// SetNextServiceDate applies a manual override ("" clears it).
	SetNextServiceDate(ctx context.Context, id, nextDate string) (models.Customer, error)
	SelectForRoute(ctx context.Context, id string, selected bool) (models.Customer, error)
	// GeocodeMissing resolves coordinates for customers that lack them,
	// returning how many were updated.
	GeocodeMissing(ctx context.Context) (int, error)
}

// ServiceLogParams is the payload for logging completed maintenance.
type ServiceLogParams struct {
	Date           string // ISO yyyy-MM-dd, required
	ServiceType    models.ServiceType
	Description    string
	CostParts      *float64
	CostLabor      *float64
	HoursAtService *float64
}

// ReminderParams is the payload for creating or updating a reminder.
type ReminderParams struct {
	Name                 string
	DueDate              string
	DueHoursSinceService *float64
}

// MaintenanceCosts summarizes spend for one piece of equipment.
type MaintenanceCosts struct {
	TotalCost       float64  `json:"total_cost"`
	CostPerHour     *float64 `json:"cost_per_hour,omitempty"` // absent when no hours accrued
	LastServiceDate string   `json:"last_service_date,omitempty"`
}

// Equipments exposes the maintenance-domain reconciliation operations.
type Equipments interface {
	List(ctx context.Context) ([]models.Equipment, error)
	Get(ctx context.Context, id string) (models.Equipment, error)
	Create(ctx context.Context, eq models.Equipment) (models.Equipment, error)
	Delete(ctx context.Context, id string) error
	// AddHours accrues usage on both counters; delta must be positive.
	AddHours(ctx context.Context, id string, delta float64) (models.Equipment, error)
	// LogService records maintenance and resets the usage counter.
	LogService(ctx context.Context, id string, p ServiceLogParams) (models.Equipment, error)
	Reminders(ctx context.Context, equipmentID string) ([]models.Reminder, error)
	AddReminder(ctx context.Context, equipmentID string, p ReminderParams) (models.Reminder, error)
	UpdateReminder(ctx context.Context, reminderID string, p ReminderParams) (models.Reminder, error)
	DeleteReminder(ctx context.Context, reminderID string) error
	Costs(ctx context.Context, id string) (MaintenanceCosts, error)
}

// HistoryFilter narrows a service-history query.
type HistoryFilter struct {
	EquipmentID string
	From        string // ISO yyyy-MM-dd, inclusive; "" means no lower bound
	To          string // ISO yyyy-MM-dd, inclusive; "" means no upper bound
	ServiceType string
}

// ServiceLog exposes the maintenance history with filtering access.
type ServiceLog interface {
	List(ctx context.Context, f HistoryFilter) ([]models.ServiceRecord, error)
}

// Worklist builds the prioritized obligations view on demand.
type Worklist interface {
	Build(ctx context.Context, horizonDays int) ([]schedule.WorklistEntry, error)
	DueCustomers(ctx context.Context) ([]models.Customer, error)
}

// ImportSummary reports the outcome of a CSV import.
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"` // rows missing an ID or street line
}

// Importer maps external CSV rows onto the customer collection.
type Importer interface {
	ImportCustomers(ctx context.Context, r io.Reader) (ImportSummary, error)
}

// Templates renders outreach messages from a closed variable set.
type Templates interface {
	Render(tpl string, c models.Customer, now time.Time) (string, error)
	Preview(ctx context.Context, customerID, tpl string) (string, error)
}

// Digest runs the background job that periodically rebuilds the
// worklist and logs a summary. Stop via context cancellation in main().
type Digest interface {
	Run(ctx context.Context) error
}

// Geocoder is the external address -> coordinate collaborator.
// ok=false means the address could not be resolved; that is not an error.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, ok bool, err error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Customers
	Equipments
	ServiceLog
	Worklist
	Templates
	Importer
	Digest
	Authorization
}

// Deps carries everything the sub-services need.
type Deps struct {
	Repos             *repository.Repository
	Geocoder          Geocoder
	Log               *logger.Logger
	SigningKey        string
	DigestSpec        string // cron spec, e.g. "0 7 * * *"
	DigestHorizonDays int
}

// NewService wires the repository layer into concrete services.
func NewService(d Deps) *Service {
	worklist := NewWorklistService(d.Repos.Equipment, d.Repos.Reminders, d.Repos.Customers)
	return &Service{
		Customers:     NewCustomerService(d.Repos.Customers, d.Geocoder),
		Equipments:    NewEquipmentService(d.Repos.Equipment, d.Repos.Reminders, d.Repos.ServiceRecords),
		ServiceLog:    NewServiceLogService(d.Repos.ServiceRecords),
		Worklist:      worklist,
		Templates:     NewTemplateService(d.Repos.Customers),
		Importer:      NewImportService(d.Repos.Customers),
		Digest:        NewDigestService(worklist, d.Log, d.DigestSpec, d.DigestHorizonDays),
		Authorization: NewAuthService(d.Repos.Auth, d.SigningKey),
	}
}
