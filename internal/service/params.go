package service

import (
	"time"

	dw "controlling_dishwasher"
)

// CycleParams is an unvalidated cycle request.
type CycleParams struct {
	Program     string // ECO | INTENSIVE | RINSE | NIAGARA
	TabletsUsed bool
	FillLevel   string // HALF | FULL | "" for the appliance default
}

// CycleOutcome reports one cycle attempt.
type CycleOutcome struct {
	Program    dw.WashingProgram `json:"program"`
	Status     dw.Status         `json:"status"`
	RunMinutes int               `json:"run_minutes"`
	FillLevel  dw.FillLevel      `json:"fill_level,omitempty"` // level actually poured
	Fault      string            `json:"fault,omitempty"`
}

// ProgramInfo describes a washing program and its nominal duration.
type ProgramInfo struct {
	Program dw.WashingProgram `json:"program"`
	Minutes int               `json:"minutes"`
}

// Faultable hardware components.
const (
	ComponentPump   = "PUMP"
	ComponentEngine = "ENGINE"
)

// FaultParams injects a malfunction into a simulated component.
type FaultParams struct {
	Component string // PUMP | ENGINE
	Reason    string
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "" or one of the models.Event* types
}
