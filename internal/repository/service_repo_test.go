package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestServiceRecordSQLite_List_NoFilterHasNoWhereClause(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewServiceRecordSQLite(db)

	cols := []string{"id", "equipment_id", "date", "service_type", "description", "cost_parts", "cost_labor", "hours_at_service"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM service_records ORDER BY date ASC")).
		WillReturnRows(sqlmock.NewRows(cols))

	if _, err := repo.List(context.Background(), repository.ServiceRecordFilter{}); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestServiceRecordSQLite_List_CombinesFilterConditions(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewServiceRecordSQLite(db)

	cols := []string{"id", "equipment_id", "date", "service_type", "description", "cost_parts", "cost_labor", "hours_at_service"}
	rows := sqlmock.NewRows(cols).
		AddRow("sr-1", "eq-1", "2024-05-10", "oil_change", "routine", 30.0, 45.0, 210.0)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE equipment_id = ? AND date >= ? AND date <= ? AND service_type = ?")).
		WithArgs("eq-1", "2024-01-01", "2024-12-31", "oil_change").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), repository.ServiceRecordFilter{
		EquipmentID: "eq-1",
		From:        "2024-01-01",
		To:          "2024-12-31",
		ServiceType: "oil_change",
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "sr-1" {
		t.Fatalf("got %+v", got)
	}
	if got[0].HoursAtService == nil || *got[0].HoursAtService != 210 {
		t.Fatalf("HoursAtService = %v, want 210", got[0].HoursAtService)
	}
}

func TestCustomerSQLite_ReplaceAll_RunsInOneTransaction(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewCustomerSQLite(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customers")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO customers")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), []models.Customer{
		{ID: "c-1", DisplayName: "Jane Doe", Street1: "1 Main St", ServiceFrequency: models.FrequencyBiannual},
	})
	if err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
