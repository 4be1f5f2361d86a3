package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/repository"
	"github.com/mikasr411/RouteBoss/internal/schedule"
)

// DefaultTemplate is the stock outreach message.
const DefaultTemplate = `Hey {displayName}, it's been {daysSinceLastService} days since we last cleaned your solar panels at {fullAddress}.

We're switching to a semi-automated system for scheduling routes in your neighborhood and we'll be in your area soon.

Reply YES to confirm you'd like to be added to this route.`

// displayDateLayout renders dates for humans ("Jun 1, 2024").
const displayDateLayout = "Jan 2, 2006"

// templateResolvers is the closed set of placeholder names. Rendering
// rejects anything outside this map; there is no dynamic dispatch on
// arbitrary field names.
var templateResolvers = map[string]func(models.Customer, time.Time) string{
	"displayName":  func(c models.Customer, _ time.Time) string { return c.DisplayName },
	"fullAddress":  func(c models.Customer, _ time.Time) string { return c.FullAddress },
	"city":         func(c models.Customer, _ time.Time) string { return c.City },
	"state":        func(c models.Customer, _ time.Time) string { return c.State },
	"mobileNumber": func(c models.Customer, _ time.Time) string { return c.MobileNumber },
	"lastServiceDate": func(c models.Customer, _ time.Time) string {
		return displayDate(c.LastServiceDate)
	},
	"nextServiceDate": func(c models.Customer, _ time.Time) string {
		return displayDate(c.NextServiceDate)
	},
	"daysSinceLastService": func(c models.Customer, now time.Time) string {
		days, ok := schedule.DaysSinceLastService(c, now)
		if !ok {
			return ""
		}
		return strconv.Itoa(days)
	},
}

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// TemplateService renders outreach messages for customers.
type TemplateService struct {
	customers repository.CustomerRepo
}

func NewTemplateService(customers repository.CustomerRepo) *TemplateService {
	return &TemplateService{customers: customers}
}

// Render substitutes every {placeholder} in tpl from the customer.
// Unknown placeholders reject the whole render with a validation error
// naming them, instead of silently emitting empty strings.
func (s *TemplateService) Render(tpl string, c models.Customer, now time.Time) (string, error) {
	var unknown []string
	for _, m := range placeholderRe.FindAllStringSubmatch(tpl, -1) {
		if _, ok := templateResolvers[m[1]]; !ok {
			unknown = append(unknown, m[1])
		}
	}
	if len(unknown) > 0 {
		return "", validationErr("unknown template placeholders: %s", strings.Join(unknown, ", "))
	}

	out := placeholderRe.ReplaceAllStringFunc(tpl, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		return templateResolvers[name](c, now)
	})
	return out, nil
}

// Preview renders tpl for a stored customer.
func (s *TemplateService) Preview(ctx context.Context, customerID, tpl string) (string, error) {
	if tpl == "" {
		tpl = DefaultTemplate
	}
	c, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", notFoundErr("customer", customerID)
	}
	return s.Render(tpl, *c, today())
}

// displayDate converts a stored ISO date to the display form; bad or
// absent input renders as empty rather than erroring.
func displayDate(iso string) string {
	d, ok := schedule.ParseDate(iso)
	if !ok {
		return ""
	}
	return d.Format(displayDateLayout)
}
