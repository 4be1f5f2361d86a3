package service

import (
	"context"
	"time"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/repository"
	"github.com/mikasr411/RouteBoss/internal/schedule"
)

const defaultHorizonDays = 30

// WorklistService assembles the prioritized view over both scheduling
// domains. Read-only: nothing here mutates stored state.
type WorklistService struct {
	equipment repository.EquipmentRepo
	reminders repository.ReminderRepo
	customers repository.CustomerRepo

	now func() time.Time // swapped in tests
}

func NewWorklistService(equipment repository.EquipmentRepo, reminders repository.ReminderRepo, customers repository.CustomerRepo) *WorklistService {
	return &WorklistService{
		equipment: equipment,
		reminders: reminders,
		customers: customers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Build ranks every maintenance obligation within the horizon. A
// non-positive horizon falls back to the default look-ahead window.
func (s *WorklistService) Build(ctx context.Context, horizonDays int) ([]schedule.WorklistEntry, error) {
	if horizonDays <= 0 {
		horizonDays = defaultHorizonDays
	}
	equipment, err := s.equipment.List(ctx)
	if err != nil {
		return nil, err
	}
	reminders, err := s.reminders.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.BuildWorklist(equipment, reminders, horizonDays, s.now()), nil
}

// DueCustomers returns the customers whose cadence has come due today.
func (s *WorklistService) DueCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.DueCustomers(customers, s.now()), nil
}
