package models

import "time"

// ApplianceState is the persisted snapshot of the simulated dishwasher hardware.
type ApplianceState struct {
	ID             int       `json:"id"`
	DoorClosed     bool      `json:"door_closed"`
	FilterCapacity float64   `json:"filter_capacity"`        // % of usable capacity left
	PumpFault      string    `json:"pump_fault,omitempty"`   // non-empty: pump refuses to pour
	EngineFault    string    `json:"engine_fault,omitempty"` // non-empty: engine refuses to run
	UpdatedAt      time.Time `json:"updated_at"`
}
