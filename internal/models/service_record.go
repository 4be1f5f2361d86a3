package models

type ServiceType string

const (
	ServiceOilChange    ServiceType = "oil_change"
	ServicePumpSeals    ServiceType = "pump_seals"
	ServiceNewHose      ServiceType = "new_hose"
	ServiceTireRotation ServiceType = "tire_rotation"
	ServiceBrakes       ServiceType = "brakes"
	ServiceInspection   ServiceType = "general_inspection"
	ServiceOther        ServiceType = "other"
)

// ServiceRecord is one completed maintenance event for a piece of equipment.
type ServiceRecord struct {
	ID          string      `json:"id"`
	EquipmentID string      `json:"equipment_id"`
	Date        string      `json:"date"` // ISO yyyy-MM-dd
	ServiceType ServiceType `json:"service_type"`
	Description string      `json:"description"`
	CostParts   *float64    `json:"cost_parts,omitempty"` // USD
	CostLabor   *float64    `json:"cost_labor,omitempty"` // USD
	// HoursAtService is the meter reading entered by the operator. When
	// present it becomes the equipment's new HoursTotal, even if lower
	// than the running total.
	HoursAtService *float64 `json:"hours_at_service,omitempty"`
}
