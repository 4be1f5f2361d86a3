package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mikasr411/RouteBoss/internal/repository"
)

func TestNormalizeAndValidateFilter(t *testing.T) {
	got, err := normalizeAndValidateFilter(HistoryFilter{
		EquipmentID: " eq-1 ",
		From:        "2024-01-01",
		To:          "2024-06-30 ",
		ServiceType: " Oil_Change",
	})
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	want := repository.ServiceRecordFilter{
		EquipmentID: "eq-1",
		From:        "2024-01-01",
		To:          "2024-06-30",
		ServiceType: "oil_change",
	}
	if got != want {
		t.Errorf("filter = %+v, want %+v", got, want)
	}
}

func TestNormalizeAndValidateFilter_Rejects(t *testing.T) {
	cases := []struct {
		name string
		f    HistoryFilter
	}{
		{"bad from", HistoryFilter{From: "01/01/2024"}},
		{"bad to", HistoryFilter{To: "yesterday"}},
		{"inverted range", HistoryFilter{From: "2024-06-01", To: "2024-01-01"}},
	}
	for _, tc := range cases {
		if _, err := normalizeAndValidateFilter(tc.f); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: error = %v, want ErrValidation", tc.name, err)
		}
	}
}

func TestServiceLogService_List_PassesFilter(t *testing.T) {
	recs := &fakeServiceRecordRepo{}
	svc := NewServiceLogService(recs)

	if _, err := svc.List(context.Background(), HistoryFilter{EquipmentID: "eq-1"}); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if _, err := svc.List(context.Background(), HistoryFilter{From: "not-a-date"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}
