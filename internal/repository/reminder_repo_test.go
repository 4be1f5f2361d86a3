package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReminderSQLite_StampReset_UpdatesAllOwnedReminders(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewReminderSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reminders SET last_reset_at_hours=? WHERE equipment_id=?")).
		WithArgs(250.0, "eq-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.StampReset(context.Background(), "eq-1", 250.0); err != nil {
		t.Fatalf("StampReset() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReminderSQLite_Create_NullableTriggers(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewReminderSQLite(db)

	hours := 50.0
	rem := models.Reminder{
		ID:                   "rem-1",
		EquipmentID:          "eq-1",
		Name:                 "Oil change",
		DueHoursSinceService: &hours,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reminders")).
		WithArgs("rem-1", "eq-1", "Oil change", nil, &hours, (*float64)(nil)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rem); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReminderSQLite_ListByEquipment_ScansTriggers(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewReminderSQLite(db)

	cols := []string{"id", "equipment_id", "name", "due_date", "due_hours_since_service", "last_reset_at_hours"}
	rows := sqlmock.NewRows(cols).
		AddRow("rem-1", "eq-1", "Oil change", "2024-09-01", 50.0, 120.0).
		AddRow("rem-2", "eq-1", "Pump seals", nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reminders WHERE equipment_id=?")).
		WithArgs("eq-1").
		WillReturnRows(rows)

	got, err := repo.ListByEquipment(context.Background(), "eq-1")
	if err != nil {
		t.Fatalf("ListByEquipment() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].DueDate != "2024-09-01" || got[0].DueHoursSinceService == nil || *got[0].DueHoursSinceService != 50 {
		t.Fatalf("first reminder scanned wrong: %+v", got[0])
	}
	if got[1].DueDate != "" || got[1].DueHoursSinceService != nil || got[1].LastResetAtHours != nil {
		t.Fatalf("null triggers should scan to absent: %+v", got[1])
	}
}
