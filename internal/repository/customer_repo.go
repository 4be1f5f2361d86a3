package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mikasr411/RouteBoss/internal/models"
)

type CustomerSQLite struct {
	db *sql.DB
}

func NewCustomerSQLite(db *sql.DB) *CustomerSQLite { return &CustomerSQLite{db: db} }

var _ CustomerRepo = (*CustomerSQLite)(nil)

const (
	customerColumns = `id, first_name, last_name, display_name, mobile_number, home_number,
		email, company, last_service_date, lifetime_value, street1, street2, city, state,
		postal_code, address_notes, full_address, service_frequency, next_service_date,
		notes, selected_for_route, latitude, longitude`

	insertCustomerSQL = `
		INSERT INTO customers (` + customerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	updateCustomerSQL = `
		UPDATE customers SET
			first_name=?, last_name=?, display_name=?, mobile_number=?, home_number=?,
			email=?, company=?, last_service_date=?, lifetime_value=?, street1=?, street2=?,
			city=?, state=?, postal_code=?, address_notes=?, full_address=?,
			service_frequency=?, next_service_date=?, notes=?, selected_for_route=?,
			latitude=?, longitude=?
		WHERE id=?
	`

	selectCustomerSQL  = `SELECT ` + customerColumns + ` FROM customers WHERE id=?`
	selectCustomersSQL = `SELECT ` + customerColumns + ` FROM customers ORDER BY display_name ASC`
	deleteCustomerSQL  = `DELETE FROM customers WHERE id=?`
	deleteCustomersSQL = `DELETE FROM customers`
)

// nullIfEmpty stores empty strings as NULL so optional text columns stay clean.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (r *CustomerSQLite) Create(ctx context.Context, c models.Customer) error {
	_, err := r.db.ExecContext(ctx, insertCustomerSQL, customerInsertArgs(c)...)
	if err != nil {
		return fmt.Errorf("insert customer %q: %w", c.ID, err)
	}
	return nil
}

func (r *CustomerSQLite) Update(ctx context.Context, c models.Customer) error {
	args := append(customerInsertArgs(c)[1:], c.ID)
	res, err := r.db.ExecContext(ctx, updateCustomerSQL, args...)
	if err != nil {
		return fmt.Errorf("update customer %q: %w", c.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetByID fetches a customer. Returns (nil, nil) if not found.
func (r *CustomerSQLite) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	row := r.db.QueryRowContext(ctx, selectCustomerSQL, id)
	c, err := scanCustomer(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select customer %q: %w", id, err)
	}
	return &c, nil
}

func (r *CustomerSQLite) List(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.db.QueryContext(ctx, selectCustomersSQL)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	out := make([]models.Customer, 0, 64)
	for rows.Next() {
		c, err := scanCustomer(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CustomerSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteCustomerSQL, id)
	if err != nil {
		return fmt.Errorf("delete customer %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ReplaceAll swaps the whole collection atomically; used by CSV import.
func (r *CustomerSQLite) ReplaceAll(ctx context.Context, customers []models.Customer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace customers: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteCustomersSQL); err != nil {
		return fmt.Errorf("clear customers: %w", err)
	}
	for _, c := range customers {
		if _, err := tx.ExecContext(ctx, insertCustomerSQL, customerInsertArgs(c)...); err != nil {
			return fmt.Errorf("insert customer %q: %w", c.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace customers: %w", err)
	}
	return nil
}

func customerInsertArgs(c models.Customer) []any {
	return []any{
		c.ID,
		nullIfEmpty(c.FirstName),
		nullIfEmpty(c.LastName),
		c.DisplayName,
		nullIfEmpty(c.MobileNumber),
		nullIfEmpty(c.HomeNumber),
		nullIfEmpty(c.Email),
		nullIfEmpty(c.Company),
		nullIfEmpty(c.LastServiceDate),
		c.LifetimeValue,
		c.Street1,
		nullIfEmpty(c.Street2),
		c.City,
		c.State,
		c.PostalCode,
		nullIfEmpty(c.AddressNotes),
		c.FullAddress,
		string(c.ServiceFrequency),
		nullIfEmpty(c.NextServiceDate),
		nullIfEmpty(c.Notes),
		c.SelectedForRoute,
		c.Latitude,
		c.Longitude,
	}
}

func scanCustomer(scan func(dest ...any) error) (models.Customer, error) {
	var (
		c                             models.Customer
		firstName, lastName           sql.NullString
		mobile, home, email, company  sql.NullString
		lastService, street2          sql.NullString
		city, state, postal           sql.NullString
		addressNotes, fullAddr, notes sql.NullString
		nextService                   sql.NullString
		freq                          string
	)
	if err := scan(
		&c.ID, &firstName, &lastName, &c.DisplayName, &mobile, &home,
		&email, &company, &lastService, &c.LifetimeValue, &c.Street1, &street2,
		&city, &state, &postal, &addressNotes, &fullAddr, &freq, &nextService,
		&notes, &c.SelectedForRoute, &c.Latitude, &c.Longitude,
	); err != nil {
		return models.Customer{}, err
	}
	c.FirstName = firstName.String
	c.LastName = lastName.String
	c.MobileNumber = mobile.String
	c.HomeNumber = home.String
	c.Email = email.String
	c.Company = company.String
	c.LastServiceDate = lastService.String
	c.Street2 = street2.String
	c.City = city.String
	c.State = state.String
	c.PostalCode = postal.String
	c.AddressNotes = addressNotes.String
	c.FullAddress = fullAddr.String
	c.ServiceFrequency = models.ServiceFrequency(freq)
	c.NextServiceDate = nextService.String
	c.Notes = notes.String
	return c, nil
}
