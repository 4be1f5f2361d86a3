package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mikasr411/RouteBoss/internal/models"
)

type ReminderSQLite struct {
	db *sql.DB
}

func NewReminderSQLite(db *sql.DB) *ReminderSQLite { return &ReminderSQLite{db: db} }

var _ ReminderRepo = (*ReminderSQLite)(nil)

const (
	reminderColumns = `id, equipment_id, name, due_date, due_hours_since_service, last_reset_at_hours`

	insertReminderSQL = `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	updateReminderSQL = `
		UPDATE reminders SET
			name=?, due_date=?, due_hours_since_service=?, last_reset_at_hours=?
		WHERE id=?
	`

	selectReminderSQL             = `SELECT ` + reminderColumns + ` FROM reminders WHERE id=?`
	selectRemindersByEquipmentSQL = `SELECT ` + reminderColumns + ` FROM reminders WHERE equipment_id=? ORDER BY name ASC`
	selectAllRemindersSQL         = `SELECT ` + reminderColumns + ` FROM reminders ORDER BY equipment_id, name ASC`
	deleteReminderSQL             = `DELETE FROM reminders WHERE id=?`
	stampResetSQL                 = `UPDATE reminders SET last_reset_at_hours=? WHERE equipment_id=?`
)

func (r *ReminderSQLite) Create(ctx context.Context, rem models.Reminder) error {
	_, err := r.db.ExecContext(ctx, insertReminderSQL,
		rem.ID,
		rem.EquipmentID,
		rem.Name,
		nullIfEmpty(rem.DueDate),
		rem.DueHoursSinceService,
		rem.LastResetAtHours,
	)
	if err != nil {
		return fmt.Errorf("insert reminder %q: %w", rem.ID, err)
	}
	return nil
}

func (r *ReminderSQLite) Update(ctx context.Context, rem models.Reminder) error {
	res, err := r.db.ExecContext(ctx, updateReminderSQL,
		rem.Name,
		nullIfEmpty(rem.DueDate),
		rem.DueHoursSinceService,
		rem.LastResetAtHours,
		rem.ID,
	)
	if err != nil {
		return fmt.Errorf("update reminder %q: %w", rem.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetByID fetches a reminder. Returns (nil, nil) if not found.
func (r *ReminderSQLite) GetByID(ctx context.Context, id string) (*models.Reminder, error) {
	row := r.db.QueryRowContext(ctx, selectReminderSQL, id)
	rem, err := scanReminder(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select reminder %q: %w", id, err)
	}
	return &rem, nil
}

func (r *ReminderSQLite) ListByEquipment(ctx context.Context, equipmentID string) ([]models.Reminder, error) {
	return r.queryReminders(ctx, selectRemindersByEquipmentSQL, equipmentID)
}

func (r *ReminderSQLite) List(ctx context.Context) ([]models.Reminder, error) {
	return r.queryReminders(ctx, selectAllRemindersSQL)
}

func (r *ReminderSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteReminderSQL, id)
	if err != nil {
		return fmt.Errorf("delete reminder %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// StampReset writes the resolved hours snapshot onto every reminder of
// the equipment in one statement.
func (r *ReminderSQLite) StampReset(ctx context.Context, equipmentID string, hoursAtReset float64) error {
	if _, err := r.db.ExecContext(ctx, stampResetSQL, hoursAtReset, equipmentID); err != nil {
		return fmt.Errorf("stamp reminder reset for equipment %q: %w", equipmentID, err)
	}
	return nil
}

func (r *ReminderSQLite) queryReminders(ctx context.Context, q string, args ...any) ([]models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	out := make([]models.Reminder, 0, 32)
	for rows.Next() {
		rem, err := scanReminder(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}

func scanReminder(scan func(dest ...any) error) (models.Reminder, error) {
	var (
		rem models.Reminder
		due sql.NullString
	)
	if err := scan(&rem.ID, &rem.EquipmentID, &rem.Name, &due, &rem.DueHoursSinceService, &rem.LastResetAtHours); err != nil {
		return models.Reminder{}, err
	}
	rem.DueDate = due.String
	return rem, nil
}
