package models

type EquipmentType string

const (
	EquipmentTruck          EquipmentType = "truck"
	EquipmentTrailer        EquipmentType = "trailer"
	EquipmentPressureWasher EquipmentType = "pressure_washer"
	EquipmentPump           EquipmentType = "pump"
	EquipmentBrush          EquipmentType = "brush"
	EquipmentHose           EquipmentType = "hose"
	EquipmentGenerator      EquipmentType = "generator"
	EquipmentOther          EquipmentType = "other"
)

type EquipmentStatus string

const (
	StatusActive  EquipmentStatus = "active"
	StatusSpare   EquipmentStatus = "spare"
	StatusRetired EquipmentStatus = "retired"
	StatusSold    EquipmentStatus = "sold"
)

// Equipment is a tracked piece of gear with a cumulative usage counter.
// HoursSinceService resets to zero when a service is logged; HoursTotal
// only moves backward when an operator supplies a lower reading on a
// service record (see EquipmentService.LogService).
type Equipment struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Type              EquipmentType   `json:"type"`
	Status            EquipmentStatus `json:"status"`
	SerialNumber      string          `json:"serial_number,omitempty"`
	PurchaseDate      string          `json:"purchase_date,omitempty"` // ISO yyyy-MM-dd
	PurchasePrice     *float64        `json:"purchase_price,omitempty"`
	InServiceDate     string          `json:"in_service_date,omitempty"` // ISO yyyy-MM-dd
	HoursTotal        float64         `json:"hours_total"`
	HoursSinceService float64         `json:"hours_since_service"`
	Notes             string          `json:"notes,omitempty"`
}
