package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/schedule"
)

type fakeWorklist struct {
	entries []schedule.WorklistEntry
	builds  int
}

func (f *fakeWorklist) Build(ctx context.Context, horizonDays int) ([]schedule.WorklistEntry, error) {
	f.builds++
	return f.entries, nil
}
func (f *fakeWorklist) DueCustomers(ctx context.Context) ([]models.Customer, error) {
	return nil, nil
}

func TestDigestService_RunRejectsBadSpec(t *testing.T) {
	svc := NewDigestService(&fakeWorklist{}, nil, "not a cron spec", 30)
	if err := svc.Run(context.Background()); !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestDigestService_RunStopsOnCancel(t *testing.T) {
	svc := NewDigestService(&fakeWorklist{}, nil, "", 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestDigestService_RunOnce(t *testing.T) {
	wl := &fakeWorklist{entries: []schedule.WorklistEntry{
		{Status: schedule.Status{IsDue: true, IsOverdue: true}},
		{Status: schedule.Status{IsDue: true}},
	}}
	svc := NewDigestService(wl, nil, "", 0)

	svc.runOnce(context.Background())
	if wl.builds != 1 {
		t.Fatalf("builds = %d, want 1", wl.builds)
	}
	if svc.horizonDays != defaultHorizonDays {
		t.Errorf("horizonDays = %d, want the %d-day default", svc.horizonDays, defaultHorizonDays)
	}
}
