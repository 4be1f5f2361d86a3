package service

import (
	"context"
	"strings"
	"testing"

	"github.com/mikasr411/RouteBoss/internal/models"
)

const importHeader = "ID,First Name,Last Name,Display Name,Mobile Number,Email,Last service date,Lifetime value,Address_1 Street Line 1,Address_1 City,Address_1 State,Address_1 Postal Code"

func TestImportService_ImportCustomers(t *testing.T) {
	csvBody := importHeader + "\n" +
		`hcp-1,Jane,Doe,Jane Doe,555-0100,jane@example.com,03/15/2024,"$1,250.00",1 Main St,Springfield,OR,97000` + "\n" +
		",John,Roe,John Roe,555-0101,,,,2 Oak Ave,Springfield,OR,97000\n" + // no ID
		"hcp-3,Ann,Poe,,,,not a date,,3 Elm St,Springfield,OR,97000\n" +
		"hcp-4,Bob,Moe,Bob Moe,,,,,,Springfield,OR,97000\n" // no street line

	repo := newFakeCustomerRepo()
	svc := NewImportService(repo)

	summary, err := svc.ImportCustomers(context.Background(), strings.NewReader(csvBody))
	if err != nil {
		t.Fatalf("ImportCustomers() error = %v", err)
	}
	if summary.Imported != 2 || summary.Skipped != 2 {
		t.Fatalf("summary = %+v, want 2 imported / 2 skipped", summary)
	}
	if len(repo.replaced) != 2 {
		t.Fatalf("ReplaceAll received %d customers", len(repo.replaced))
	}

	jane := repo.items["hcp-1"]
	if jane.DisplayName != "Jane Doe" || jane.MobileNumber != "555-0100" {
		t.Errorf("jane = %+v", jane)
	}
	if jane.LastServiceDate != "2024-03-15" {
		t.Errorf("LastServiceDate = %q, want normalized 2024-03-15", jane.LastServiceDate)
	}
	if jane.NextServiceDate != "2024-09-15" {
		t.Errorf("NextServiceDate = %q, want biannual default applied", jane.NextServiceDate)
	}
	if jane.LifetimeValue == nil || *jane.LifetimeValue != 1250 {
		t.Errorf("LifetimeValue = %v, want 1250", jane.LifetimeValue)
	}
	if jane.ServiceFrequency != models.FrequencyBiannual {
		t.Errorf("ServiceFrequency = %q", jane.ServiceFrequency)
	}
	if jane.FullAddress != "1 Main St, Springfield, OR 97000" {
		t.Errorf("FullAddress = %q", jane.FullAddress)
	}

	ann := repo.items["hcp-3"]
	if ann.DisplayName != "Ann Poe" {
		t.Errorf("display name fallback = %q, want first+last", ann.DisplayName)
	}
	if ann.LastServiceDate != "" {
		t.Errorf("unparseable date must degrade to absent, got %q", ann.LastServiceDate)
	}
	if ann.NextServiceDate != "" {
		t.Errorf("no last service means no next service, got %q", ann.NextServiceDate)
	}
}

func TestImportService_RejectsMissingIDColumn(t *testing.T) {
	svc := NewImportService(newFakeCustomerRepo())
	body := "First Name,Last Name\nJane,Doe\n"
	if _, err := svc.ImportCustomers(context.Background(), strings.NewReader(body)); err == nil {
		t.Fatal("expected an error for a CSV without the ID column")
	}
}

func TestParseServiceDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"03/15/2024", "2024-03-15"},
		{"2024-03-15", "2024-03-15"},
		{"3/5/2024", "2024-03-05"},
		{"garbage", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := parseServiceDate(tc.in); got != tc.want {
			t.Errorf("parseServiceDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseLifetimeValue(t *testing.T) {
	if v := parseLifetimeValue("$1,234.56"); v == nil || *v != 1234.56 {
		t.Errorf("got %v, want 1234.56", v)
	}
	if v := parseLifetimeValue("n/a"); v != nil {
		t.Errorf("got %v, want nil", *v)
	}
	if v := parseLifetimeValue(""); v != nil {
		t.Errorf("got %v, want nil", *v)
	}
}
