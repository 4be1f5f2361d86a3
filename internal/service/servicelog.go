package service

import (
	"context"
	"strings"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/repository"
	"github.com/mikasr411/RouteBoss/internal/schedule"
)

// ServiceLogService lists maintenance history with normalized filters.
type ServiceLogService struct {
	records repository.ServiceRecordRepo
}

func NewServiceLogService(records repository.ServiceRecordRepo) *ServiceLogService {
	return &ServiceLogService{records: records}
}

// normalizeAndValidateFilter trims the filter and checks the date range.
// Bounds must be valid ISO dates when present, and From must not exceed To.
func normalizeAndValidateFilter(f HistoryFilter) (repository.ServiceRecordFilter, error) {
	out := repository.ServiceRecordFilter{
		EquipmentID: strings.TrimSpace(f.EquipmentID),
		From:        strings.TrimSpace(f.From),
		To:          strings.TrimSpace(f.To),
		ServiceType: strings.ToLower(strings.TrimSpace(f.ServiceType)),
	}
	if out.From != "" {
		if _, ok := schedule.ParseDate(out.From); !ok {
			return repository.ServiceRecordFilter{}, validationErr("from date %q is not a valid yyyy-MM-dd date", out.From)
		}
	}
	if out.To != "" {
		if _, ok := schedule.ParseDate(out.To); !ok {
			return repository.ServiceRecordFilter{}, validationErr("to date %q is not a valid yyyy-MM-dd date", out.To)
		}
	}
	if out.From != "" && out.To != "" && out.From > out.To {
		return repository.ServiceRecordFilter{}, validationErr("invalid range: from %s is after to %s", out.From, out.To)
	}
	return out, nil
}

func (s *ServiceLogService) List(ctx context.Context, f HistoryFilter) ([]models.ServiceRecord, error) {
	filter, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.records.List(ctx, filter)
}
