package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mikasr411/RouteBoss/internal/models"
)

type ServiceRecordSQLite struct {
	db *sql.DB
}

func NewServiceRecordSQLite(db *sql.DB) *ServiceRecordSQLite { return &ServiceRecordSQLite{db: db} }

var _ ServiceRecordRepo = (*ServiceRecordSQLite)(nil)

const (
	serviceRecordColumns = `id, equipment_id, date, service_type, description, cost_parts, cost_labor, hours_at_service`

	insertServiceRecordSQL = `
		INSERT INTO service_records (` + serviceRecordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	deleteServiceRecordSQL = `DELETE FROM service_records WHERE id=?`
)

func (r *ServiceRecordSQLite) Insert(ctx context.Context, rec models.ServiceRecord) error {
	_, err := r.db.ExecContext(ctx, insertServiceRecordSQL,
		rec.ID,
		rec.EquipmentID,
		rec.Date,
		string(rec.ServiceType),
		nullIfEmpty(rec.Description),
		rec.CostParts,
		rec.CostLabor,
		rec.HoursAtService,
	)
	if err != nil {
		return fmt.Errorf("insert service record %q: %w", rec.ID, err)
	}
	return nil
}

// List returns records matching the filter, ordered by date ascending.
// ISO date strings compare correctly as text, so the range bounds are
// plain string comparisons in SQL.
func (r *ServiceRecordSQLite) List(ctx context.Context, f ServiceRecordFilter) ([]models.ServiceRecord, error) {
	var (
		conds []string
		args  []any
	)
	if f.EquipmentID != "" {
		conds = append(conds, "equipment_id = ?")
		args = append(args, f.EquipmentID)
	}
	if f.From != "" {
		conds = append(conds, "date >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		conds = append(conds, "date <= ?")
		args = append(args, f.To)
	}
	if f.ServiceType != "" {
		conds = append(conds, "service_type = ?")
		args = append(args, f.ServiceType)
	}

	q := `SELECT ` + serviceRecordColumns + ` FROM service_records`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY date ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list service records: %w", err)
	}
	defer rows.Close()

	out := make([]models.ServiceRecord, 0, 32)
	for rows.Next() {
		var (
			rec  models.ServiceRecord
			typ  string
			desc sql.NullString
		)
		if err := rows.Scan(
			&rec.ID, &rec.EquipmentID, &rec.Date, &typ, &desc,
			&rec.CostParts, &rec.CostLabor, &rec.HoursAtService,
		); err != nil {
			return nil, err
		}
		rec.ServiceType = models.ServiceType(typ)
		rec.Description = desc.String
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *ServiceRecordSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteServiceRecordSQL, id)
	if err != nil {
		return fmt.Errorf("delete service record %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
