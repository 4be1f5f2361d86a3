package repository

import (
	"context"
	"database/sql"

	"github.com/mikasr411/RouteBoss/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type CustomerRepo interface {
	Create(ctx context.Context, c models.Customer) error
	Update(ctx context.Context, c models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Delete(ctx context.Context, id string) error
	// ReplaceAll swaps the whole collection in one transaction (CSV import).
	ReplaceAll(ctx context.Context, customers []models.Customer) error
}

type EquipmentRepo interface {
	Create(ctx context.Context, eq models.Equipment) error
	Update(ctx context.Context, eq models.Equipment) error
	GetByID(ctx context.Context, id string) (*models.Equipment, error)
	List(ctx context.Context) ([]models.Equipment, error)
	// Delete cascades to the equipment's reminders and service records.
	Delete(ctx context.Context, id string) error
}

// ServiceRecordFilter narrows a service-history listing. Empty fields
// mean no bound; dates are inclusive ISO calendar dates.
type ServiceRecordFilter struct {
	EquipmentID string
	From        string
	To          string
	ServiceType string
}

type ServiceRecordRepo interface {
	Insert(ctx context.Context, rec models.ServiceRecord) error
	// List returns matching records ordered by date ascending.
	List(ctx context.Context, f ServiceRecordFilter) ([]models.ServiceRecord, error)
	Delete(ctx context.Context, id string) error
}

type ReminderRepo interface {
	Create(ctx context.Context, r models.Reminder) error
	Update(ctx context.Context, r models.Reminder) error
	GetByID(ctx context.Context, id string) (*models.Reminder, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]models.Reminder, error)
	List(ctx context.Context) ([]models.Reminder, error)
	Delete(ctx context.Context, id string) error
	// StampReset records the resolved HoursTotal on every reminder owned
	// by the equipment when a service is logged.
	StampReset(ctx context.Context, equipmentID string, hoursAtReset float64) error
}

type Repository struct {
	Customers      CustomerRepo
	Equipment      EquipmentRepo
	ServiceRecords ServiceRecordRepo
	Reminders      ReminderRepo
	Auth           Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Customers:      NewCustomerSQLite(db),
		Equipment:      NewEquipmentSQLite(db),
		ServiceRecords: NewServiceRecordSQLite(db),
		Reminders:      NewReminderSQLite(db),
		Auth:           NewUserRepository(db),
	}
}
