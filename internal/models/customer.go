package models

// ServiceFrequency is the recurring-visit cadence for a customer.
type ServiceFrequency string

const (
	FrequencyOneTime   ServiceFrequency = "OneTime"
	FrequencyQuarterly ServiceFrequency = "Quarterly" // every 3 months
	FrequencyBiannual  ServiceFrequency = "Biannual"  // every 6 months
)

// Valid reports whether f is one of the known frequencies.
func (f ServiceFrequency) Valid() bool {
	switch f {
	case FrequencyOneTime, FrequencyQuarterly, FrequencyBiannual:
		return true
	}
	return false
}

// Customer is a serviced customer with a recurring visit schedule.
// All dates are ISO calendar-date strings (yyyy-MM-dd); empty means unknown.
type Customer struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"first_name,omitempty"`
	LastName         string           `json:"last_name,omitempty"`
	DisplayName      string           `json:"display_name"`
	MobileNumber     string           `json:"mobile_number,omitempty"`
	HomeNumber       string           `json:"home_number,omitempty"`
	Email            string           `json:"email,omitempty"`
	Company          string           `json:"company,omitempty"`
	LastServiceDate  string           `json:"last_service_date,omitempty"`
	LifetimeValue    *float64         `json:"lifetime_value,omitempty"` // USD
	Street1          string           `json:"street1"`
	Street2          string           `json:"street2,omitempty"`
	City             string           `json:"city"`
	State            string           `json:"state"`
	PostalCode       string           `json:"postal_code"`
	AddressNotes     string           `json:"address_notes,omitempty"`
	FullAddress      string           `json:"full_address"` // "street1, city, state postalCode"
	ServiceFrequency ServiceFrequency `json:"service_frequency"`
	NextServiceDate  string           `json:"next_service_date,omitempty"` // derived, user-overridable
	Notes            string           `json:"notes,omitempty"`
	SelectedForRoute bool             `json:"selected_for_route"`
	Latitude         *float64         `json:"latitude,omitempty"`
	Longitude        *float64         `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the customer has been geocoded.
func (c Customer) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}
