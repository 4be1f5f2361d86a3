package service

import (
	"context"
	"strings"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/repository"
	"github.com/mikasr411/RouteBoss/internal/schedule"

	"github.com/google/uuid"
)

// EquipmentService owns the maintenance-domain reconciliation: usage
// accrual, service logging with the hours reset, and reminder upkeep.
type EquipmentService struct {
	equipment repository.EquipmentRepo
	reminders repository.ReminderRepo
	records   repository.ServiceRecordRepo
}

func NewEquipmentService(equipment repository.EquipmentRepo, reminders repository.ReminderRepo, records repository.ServiceRecordRepo) *EquipmentService {
	return &EquipmentService{equipment: equipment, reminders: reminders, records: records}
}

func (s *EquipmentService) List(ctx context.Context) ([]models.Equipment, error) {
	return s.equipment.List(ctx)
}

func (s *EquipmentService) Get(ctx context.Context, id string) (models.Equipment, error) {
	return s.load(ctx, id)
}

func (s *EquipmentService) Create(ctx context.Context, eq models.Equipment) (models.Equipment, error) {
	if strings.TrimSpace(eq.Name) == "" {
		return models.Equipment{}, validationErr("name is required")
	}
	if eq.Type == "" {
		eq.Type = models.EquipmentOther
	}
	if eq.Status == "" {
		eq.Status = models.StatusActive
	}
	if eq.HoursSinceService > eq.HoursTotal {
		return models.Equipment{}, validationErr("hours_since_service (%.1f) cannot exceed hours_total (%.1f)", eq.HoursSinceService, eq.HoursTotal)
	}
	if eq.ID == "" {
		eq.ID = uuid.NewString()
	}
	if err := s.equipment.Create(ctx, eq); err != nil {
		return models.Equipment{}, err
	}
	return eq, nil
}

// Delete removes the equipment together with its reminders and service
// records (the only cascading deletion in the model).
func (s *EquipmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.equipment.Delete(ctx, id)
}

// AddHours accrues usage on both counters by the same delta, keeping
// hours_since_service <= hours_total. Non-positive deltas are rejected
// and the equipment is left untouched.
func (s *EquipmentService) AddHours(ctx context.Context, id string, delta float64) (models.Equipment, error) {
	if delta <= 0 {
		return models.Equipment{}, validationErr("hours delta must be positive, got %v", delta)
	}
	eq, err := s.load(ctx, id)
	if err != nil {
		return models.Equipment{}, err
	}
	eq.HoursTotal += delta
	eq.HoursSinceService += delta
	return s.save(ctx, eq)
}

// LogService records completed maintenance and resets the usage counter:
// hours_since_service goes to zero, and when the operator supplied a
// meter reading it becomes the new hours_total — even when lower than
// the running total. That retroactive lowering is intentional operator
// input (a meter correction path) and is deliberately not validated
// away. Every reminder of the equipment gets its reset snapshot stamped
// with the resolved total.
func (s *EquipmentService) LogService(ctx context.Context, id string, p ServiceLogParams) (models.Equipment, error) {
	if _, ok := schedule.ParseDate(p.Date); !ok {
		return models.Equipment{}, validationErr("service date %q is not a valid yyyy-MM-dd date", p.Date)
	}
	if p.ServiceType == "" {
		p.ServiceType = models.ServiceOther
	}
	eq, err := s.load(ctx, id)
	if err != nil {
		return models.Equipment{}, err
	}

	if p.HoursAtService != nil {
		eq.HoursTotal = *p.HoursAtService
	}
	eq.HoursSinceService = 0

	rec := models.ServiceRecord{
		ID:             uuid.NewString(),
		EquipmentID:    eq.ID,
		Date:           p.Date,
		ServiceType:    p.ServiceType,
		Description:    p.Description,
		CostParts:      p.CostParts,
		CostLabor:      p.CostLabor,
		HoursAtService: p.HoursAtService,
	}
	if err := s.records.Insert(ctx, rec); err != nil {
		return models.Equipment{}, err
	}
	if err := s.reminders.StampReset(ctx, eq.ID, eq.HoursTotal); err != nil {
		return models.Equipment{}, err
	}
	return s.save(ctx, eq)
}

func (s *EquipmentService) Reminders(ctx context.Context, equipmentID string) ([]models.Reminder, error) {
	if _, err := s.load(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.reminders.ListByEquipment(ctx, equipmentID)
}

func (s *EquipmentService) AddReminder(ctx context.Context, equipmentID string, p ReminderParams) (models.Reminder, error) {
	if err := validateReminderParams(p); err != nil {
		return models.Reminder{}, err
	}
	if _, err := s.load(ctx, equipmentID); err != nil {
		return models.Reminder{}, err
	}
	rem := models.Reminder{
		ID:                   uuid.NewString(),
		EquipmentID:          equipmentID,
		Name:                 p.Name,
		DueDate:              p.DueDate,
		DueHoursSinceService: p.DueHoursSinceService,
	}
	if err := s.reminders.Create(ctx, rem); err != nil {
		return models.Reminder{}, err
	}
	return rem, nil
}

func (s *EquipmentService) UpdateReminder(ctx context.Context, reminderID string, p ReminderParams) (models.Reminder, error) {
	if err := validateReminderParams(p); err != nil {
		return models.Reminder{}, err
	}
	existing, err := s.reminders.GetByID(ctx, reminderID)
	if err != nil {
		return models.Reminder{}, err
	}
	if existing == nil {
		return models.Reminder{}, notFoundErr("reminder", reminderID)
	}
	rem := *existing
	rem.Name = p.Name
	rem.DueDate = p.DueDate
	rem.DueHoursSinceService = p.DueHoursSinceService
	if err := s.reminders.Update(ctx, rem); err != nil {
		return models.Reminder{}, err
	}
	return rem, nil
}

func (s *EquipmentService) DeleteReminder(ctx context.Context, reminderID string) error {
	existing, err := s.reminders.GetByID(ctx, reminderID)
	if err != nil {
		return err
	}
	if existing == nil {
		return notFoundErr("reminder", reminderID)
	}
	return s.reminders.Delete(ctx, reminderID)
}

// Costs aggregates maintenance spend for the equipment. CostPerHour is
// absent until any hours have accrued.
func (s *EquipmentService) Costs(ctx context.Context, id string) (MaintenanceCosts, error) {
	eq, err := s.load(ctx, id)
	if err != nil {
		return MaintenanceCosts{}, err
	}
	records, err := s.records.List(ctx, repository.ServiceRecordFilter{EquipmentID: id})
	if err != nil {
		return MaintenanceCosts{}, err
	}

	var costs MaintenanceCosts
	for _, rec := range records {
		if rec.CostParts != nil {
			costs.TotalCost += *rec.CostParts
		}
		if rec.CostLabor != nil {
			costs.TotalCost += *rec.CostLabor
		}
		if rec.Date > costs.LastServiceDate {
			costs.LastServiceDate = rec.Date
		}
	}
	if eq.HoursTotal > 0 {
		perHour := costs.TotalCost / eq.HoursTotal
		costs.CostPerHour = &perHour
	}
	return costs, nil
}

func validateReminderParams(p ReminderParams) error {
	if strings.TrimSpace(p.Name) == "" {
		return validationErr("reminder name is required")
	}
	if p.DueDate != "" {
		if _, ok := schedule.ParseDate(p.DueDate); !ok {
			return validationErr("due date %q is not a valid yyyy-MM-dd date", p.DueDate)
		}
	}
	if p.DueHoursSinceService != nil && *p.DueHoursSinceService <= 0 {
		return validationErr("due hours threshold must be positive, got %v", *p.DueHoursSinceService)
	}
	return nil
}

func (s *EquipmentService) load(ctx context.Context, id string) (models.Equipment, error) {
	eq, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return models.Equipment{}, err
	}
	if eq == nil {
		return models.Equipment{}, notFoundErr("equipment", id)
	}
	return *eq, nil
}

func (s *EquipmentService) save(ctx context.Context, eq models.Equipment) (models.Equipment, error) {
	if err := s.equipment.Update(ctx, eq); err != nil {
		return models.Equipment{}, err
	}
	return eq, nil
}
