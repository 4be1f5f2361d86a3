package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/repository"
	"github.com/mikasr411/RouteBoss/internal/schedule"
)

// ImportService maps Housecall Pro customer exports onto the customer
// collection. The import replaces the collection wholesale: the CSV is
// the system of record for who the customers are.
type ImportService struct {
	customers repository.CustomerRepo
}

func NewImportService(customers repository.CustomerRepo) *ImportService {
	return &ImportService{customers: customers}
}

// Column headers of the Housecall Pro export.
const (
	colID           = "ID"
	colFirstName    = "First Name"
	colLastName     = "Last Name"
	colDisplayName  = "Display Name"
	colMobileNumber = "Mobile Number"
	colHomeNumber   = "Home Number"
	colEmail        = "Email"
	colCompany      = "Company"
	colLastService  = "Last service date"
	colLifetimeVal  = "Lifetime value"
	colStreet1      = "Address_1 Street Line 1"
	colStreet2      = "Address_1 Street Line 2"
	colCity         = "Address_1 City"
	colState        = "Address_1 State"
	colPostalCode   = "Address_1 Postal Code"
	colAddressNotes = "Address_1 Notes"
)

// Every import gets the biannual default; the next visit is derived
// from whatever last-service date survived parsing.
const importDefaultFrequency = models.FrequencyBiannual

// ImportCustomers reads the CSV, drops rows without an ID or a primary
// street line, and replaces the stored collection with the rest.
func (s *ImportService) ImportCustomers(ctx context.Context, r io.Reader) (ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged exports happen; cell lookup is by header

	header, err := reader.Read()
	if err != nil {
		return ImportSummary{}, validationErr("cannot read CSV header: %v", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index[colID]; !ok {
		return ImportSummary{}, validationErr("CSV is missing the %q column", colID)
	}

	var (
		summary   ImportSummary
		customers []models.Customer
	)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ImportSummary{}, fmt.Errorf("read CSV row: %w", err)
		}
		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		if cell(colID) == "" || cell(colStreet1) == "" {
			summary.Skipped++
			continue
		}
		customers = append(customers, rowToCustomer(cell))
	}

	if err := s.customers.ReplaceAll(ctx, customers); err != nil {
		return ImportSummary{}, err
	}
	summary.Imported = len(customers)
	return summary, nil
}

// rowToCustomer normalizes one accepted CSV row.
func rowToCustomer(cell func(string) string) models.Customer {
	street1 := cell(colStreet1)
	street2 := cell(colStreet2)
	city := cell(colCity)
	state := cell(colState)
	postal := cell(colPostalCode)

	displayName := cell(colDisplayName)
	if displayName == "" {
		displayName = strings.TrimSpace(cell(colFirstName) + " " + cell(colLastName))
	}
	if displayName == "" {
		displayName = "Unknown"
	}

	lastService := parseServiceDate(cell(colLastService))

	return models.Customer{
		ID:               cell(colID),
		FirstName:        cell(colFirstName),
		LastName:         cell(colLastName),
		DisplayName:      displayName,
		MobileNumber:     cell(colMobileNumber),
		HomeNumber:       cell(colHomeNumber),
		Email:            cell(colEmail),
		Company:          cell(colCompany),
		LastServiceDate:  lastService,
		LifetimeValue:    parseLifetimeValue(cell(colLifetimeVal)),
		Street1:          street1,
		Street2:          street2,
		City:             city,
		State:            state,
		PostalCode:       postal,
		AddressNotes:     cell(colAddressNotes),
		FullAddress:      BuildFullAddress(street1, city, state, postal, street2),
		ServiceFrequency: importDefaultFrequency,
		NextServiceDate:  schedule.NextServiceDate(lastService, importDefaultFrequency),
	}
}

// Date formats seen in Housecall Pro exports, tried in order.
var importDateLayouts = []string{
	"01/02/2006",
	"2006-01-02",
	"01-02-2006",
	"1/2/2006",
	"2006/01/02",
}

// parseServiceDate normalizes an export date cell to ISO yyyy-MM-dd.
// Unparseable input degrades to "" — an import must never fail on one
// bad date.
func parseServiceDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range importDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return schedule.FormatDate(t)
		}
	}
	return ""
}

// parseLifetimeValue strips currency formatting ("$1,234.56" -> 1234.56).
func parseLifetimeValue(raw string) *float64 {
	if raw == "" {
		return nil
	}
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(raw)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}
