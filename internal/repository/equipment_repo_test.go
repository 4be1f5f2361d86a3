package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestEquipmentSQLite_Create_BindsAllColumns(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewEquipmentSQLite(db)

	price := 12500.0
	eq := models.Equipment{
		ID:                "eq-1",
		Name:              "Pressure Washer A",
		Type:              models.EquipmentPressureWasher,
		Status:            models.StatusActive,
		SerialNumber:      "SN-42",
		PurchaseDate:      "2023-03-15",
		PurchasePrice:     &price,
		InServiceDate:     "2023-04-01",
		HoursTotal:        120.5,
		HoursSinceService: 30.5,
		Notes:             "rear bay",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO equipment")).
		WithArgs(
			"eq-1", "Pressure Washer A", "pressure_washer", "active",
			"SN-42", "2023-03-15", &price, "2023-04-01", 120.5, 30.5, "rear bay",
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), eq); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEquipmentSQLite_Create_EmptyOptionalsStoredAsNull(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewEquipmentSQLite(db)

	eq := models.Equipment{ID: "eq-2", Name: "Hose", Type: models.EquipmentHose, Status: models.StatusSpare}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO equipment")).
		WithArgs(
			"eq-2", "Hose", "hose", "spare",
			nil, nil, (*float64)(nil), nil, 0.0, 0.0, nil,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), eq); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEquipmentSQLite_GetByID_NotFoundReturnsNilNil(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewEquipmentSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment WHERE id=?")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	eq, err := repo.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if eq != nil {
		t.Fatalf("expected nil for missing row, got %+v", eq)
	}
}

func TestEquipmentSQLite_Update_ZeroRowsIsErrNoRows(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewEquipmentSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE equipment SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), models.Equipment{ID: "ghost", Name: "x", Type: models.EquipmentOther, Status: models.StatusActive})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("Update() error = %v, want sql.ErrNoRows", err)
	}
}

func TestEquipmentSQLite_Delete_ZeroRowsIsErrNoRows(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewEquipmentSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM equipment WHERE id=?")).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "ghost"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("Delete() error = %v, want sql.ErrNoRows", err)
	}
}

func TestEquipmentSQLite_List_ScansNullableColumns(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewEquipmentSQLite(db)

	cols := []string{"id", "name", "type", "status", "serial_number", "purchase_date",
		"purchase_price", "in_service_date", "hours_total", "hours_since_service", "notes"}
	rows := sqlmock.NewRows(cols).
		AddRow("eq-1", "Pump", "pump", "active", nil, nil, nil, nil, 55.0, 12.5, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM equipment ORDER BY name ASC")).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	eq := got[0]
	if eq.SerialNumber != "" || eq.PurchasePrice != nil || eq.Notes != "" {
		t.Fatalf("null columns should scan to zero values, got %+v", eq)
	}
	if eq.HoursSinceService != 12.5 {
		t.Fatalf("HoursSinceService = %v, want 12.5", eq.HoursSinceService)
	}
}
