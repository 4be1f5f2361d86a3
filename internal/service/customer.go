package service

import (
	"context"
	"strings"
	"time"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/repository"
	"github.com/mikasr411/RouteBoss/internal/schedule"

	"github.com/google/uuid"
)

// CustomerService owns the cadence-domain reconciliation. Every write
// is load -> validate -> mutate -> save; on any failure the stored
// customer is left as it was.
type CustomerService struct {
	customers repository.CustomerRepo
	geocoder  Geocoder
}

func NewCustomerService(customers repository.CustomerRepo, geocoder Geocoder) *CustomerService {
	return &CustomerService{customers: customers, geocoder: geocoder}
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.customers.List(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id string) (models.Customer, error) {
	return s.load(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	if strings.TrimSpace(c.DisplayName) == "" {
		return models.Customer{}, validationErr("display_name is required")
	}
	if strings.TrimSpace(c.Street1) == "" {
		return models.Customer{}, validationErr("street1 is required")
	}
	if c.ServiceFrequency == "" {
		c.ServiceFrequency = models.FrequencyBiannual
	}
	if !c.ServiceFrequency.Valid() {
		return models.Customer{}, validationErr("unknown service frequency %q", c.ServiceFrequency)
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.FullAddress == "" {
		c.FullAddress = BuildFullAddress(c.Street1, c.City, c.State, c.PostalCode, c.Street2)
	}
	if c.NextServiceDate == "" {
		c.NextServiceDate = schedule.NextServiceDate(c.LastServiceDate, c.ServiceFrequency)
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.customers.Delete(ctx, id)
}

// LogService records a completed visit: the last service date moves to
// serviceDate and the next one is recomputed from it. OneTime customers
// end up with no next date.
func (s *CustomerService) LogService(ctx context.Context, id, serviceDate string) (models.Customer, error) {
	if _, ok := schedule.ParseDate(serviceDate); !ok {
		return models.Customer{}, validationErr("service date %q is not a valid yyyy-MM-dd date", serviceDate)
	}
	c, err := s.load(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	c.LastServiceDate = serviceDate
	c.NextServiceDate = schedule.NextServiceDate(serviceDate, c.ServiceFrequency)
	return s.save(ctx, c)
}

// SkipCycle advances the next visit by one full frequency interval from
// its stored value. A customer without a next date is returned unchanged.
func (s *CustomerService) SkipCycle(ctx context.Context, id string) (models.Customer, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	skipped := schedule.SkipCycle(c)
	if skipped.NextServiceDate == c.NextServiceDate {
		return c, nil
	}
	return s.save(ctx, skipped)
}

// SetFrequency changes the cadence and immediately recomputes the next
// visit from the existing last service date, not from the current next
// date. Any manual override is discarded here and only here.
func (s *CustomerService) SetFrequency(ctx context.Context, id string, f models.ServiceFrequency) (models.Customer, error) {
	if !f.Valid() {
		return models.Customer{}, validationErr("unknown service frequency %q", f)
	}
	c, err := s.load(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	c.ServiceFrequency = f
	c.NextServiceDate = schedule.NextServiceDate(c.LastServiceDate, f)
	return s.save(ctx, c)
}

// SetNextServiceDate applies a manual override. Overrides are permitted
// even on OneTime customers and survive until the next recompute.
func (s *CustomerService) SetNextServiceDate(ctx context.Context, id, nextDate string) (models.Customer, error) {
	if nextDate != "" {
		if _, ok := schedule.ParseDate(nextDate); !ok {
			return models.Customer{}, validationErr("next service date %q is not a valid yyyy-MM-dd date", nextDate)
		}
	}
	c, err := s.load(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	c.NextServiceDate = nextDate
	return s.save(ctx, c)
}

func (s *CustomerService) SelectForRoute(ctx context.Context, id string, selected bool) (models.Customer, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	c.SelectedForRoute = selected
	return s.save(ctx, c)
}

// GeocodeMissing asks the external geocoder for coordinates of every
// customer that has none. Unresolvable addresses are skipped, not
// failed: the collaborator owns address quality, not this service.
func (s *CustomerService) GeocodeMissing(ctx context.Context) (int, error) {
	if s.geocoder == nil {
		return 0, validationErr("no geocoder configured")
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return 0, err
	}
	updated := 0
	for _, c := range customers {
		if c.HasCoordinates() || c.FullAddress == "" {
			continue
		}
		lat, lng, ok, err := s.geocoder.Geocode(ctx, c.FullAddress)
		if err != nil {
			return updated, err
		}
		if !ok {
			continue
		}
		c.Latitude, c.Longitude = &lat, &lng
		if _, err := s.save(ctx, c); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func (s *CustomerService) load(ctx context.Context, id string) (models.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	if c == nil {
		return models.Customer{}, notFoundErr("customer", id)
	}
	return *c, nil
}

func (s *CustomerService) save(ctx context.Context, c models.Customer) (models.Customer, error) {
	if err := s.customers.Update(ctx, c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

// BuildFullAddress joins the address parts the way route exports expect:
// "street1[, street2], city, state postalCode".
func BuildFullAddress(street1, city, state, postalCode, street2 string) string {
	parts := []string{street1}
	if street2 != "" {
		parts = append(parts, street2)
	}
	parts = append(parts, city+", "+state+" "+postalCode)
	return strings.Join(parts, ", ")
}

// today returns the current calendar date, midnight UTC.
func today() time.Time {
	return schedule.Midnight(time.Now().UTC())
}
