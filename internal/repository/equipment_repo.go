package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mikasr411/RouteBoss/internal/models"
)

type EquipmentSQLite struct {
	db *sql.DB
}

func NewEquipmentSQLite(db *sql.DB) *EquipmentSQLite { return &EquipmentSQLite{db: db} }

var _ EquipmentRepo = (*EquipmentSQLite)(nil)

const (
	equipmentColumns = `id, name, type, status, serial_number, purchase_date, purchase_price,
		in_service_date, hours_total, hours_since_service, notes`

	insertEquipmentSQL = `
		INSERT INTO equipment (` + equipmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	updateEquipmentSQL = `
		UPDATE equipment SET
			name=?, type=?, status=?, serial_number=?, purchase_date=?, purchase_price=?,
			in_service_date=?, hours_total=?, hours_since_service=?, notes=?
		WHERE id=?
	`

	selectEquipmentSQL     = `SELECT ` + equipmentColumns + ` FROM equipment WHERE id=?`
	selectAllEquipmentSQL  = `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY name ASC`
	deleteEquipmentByIDSQL = `DELETE FROM equipment WHERE id=?`
)

func (r *EquipmentSQLite) Create(ctx context.Context, eq models.Equipment) error {
	_, err := r.db.ExecContext(ctx, insertEquipmentSQL, equipmentArgs(eq)...)
	if err != nil {
		return fmt.Errorf("insert equipment %q: %w", eq.ID, err)
	}
	return nil
}

func (r *EquipmentSQLite) Update(ctx context.Context, eq models.Equipment) error {
	args := append(equipmentArgs(eq)[1:], eq.ID)
	res, err := r.db.ExecContext(ctx, updateEquipmentSQL, args...)
	if err != nil {
		return fmt.Errorf("update equipment %q: %w", eq.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetByID fetches a piece of equipment. Returns (nil, nil) if not found.
func (r *EquipmentSQLite) GetByID(ctx context.Context, id string) (*models.Equipment, error) {
	row := r.db.QueryRowContext(ctx, selectEquipmentSQL, id)
	eq, err := scanEquipment(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select equipment %q: %w", id, err)
	}
	return &eq, nil
}

func (r *EquipmentSQLite) List(ctx context.Context) ([]models.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, selectAllEquipmentSQL)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	out := make([]models.Equipment, 0, 32)
	for rows.Next() {
		eq, err := scanEquipment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, eq)
	}
	return out, rows.Err()
}

// Delete removes the equipment row; reminders and service records follow
// via ON DELETE CASCADE.
func (r *EquipmentSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteEquipmentByIDSQL, id)
	if err != nil {
		return fmt.Errorf("delete equipment %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func equipmentArgs(eq models.Equipment) []any {
	return []any{
		eq.ID,
		eq.Name,
		string(eq.Type),
		string(eq.Status),
		nullIfEmpty(eq.SerialNumber),
		nullIfEmpty(eq.PurchaseDate),
		eq.PurchasePrice,
		nullIfEmpty(eq.InServiceDate),
		eq.HoursTotal,
		eq.HoursSinceService,
		nullIfEmpty(eq.Notes),
	}
}

func scanEquipment(scan func(dest ...any) error) (models.Equipment, error) {
	var (
		eq                            models.Equipment
		typ, status                   string
		serial, purchased, inSvc, nts sql.NullString
	)
	if err := scan(
		&eq.ID, &eq.Name, &typ, &status, &serial, &purchased, &eq.PurchasePrice,
		&inSvc, &eq.HoursTotal, &eq.HoursSinceService, &nts,
	); err != nil {
		return models.Equipment{}, err
	}
	eq.Type = models.EquipmentType(typ)
	eq.Status = models.EquipmentStatus(status)
	eq.SerialNumber = serial.String
	eq.PurchaseDate = purchased.String
	eq.InServiceDate = inSvc.String
	eq.Notes = nts.String
	return eq, nil
}
