package controlling_dishwasher

import "fmt"

// Door reports whether the appliance door is shut.
type Door interface {
	Closed() bool
}

// DirtFilter reports remaining usable filter capacity in percent.
type DirtFilter interface {
	Capacity() float64
}

// WaterPump fills the tub. Failures should be returned as *PumpError.
type WaterPump interface {
	Pour(level FillLevel) error
}

// Engine heats and washes. Failures should be returned as *EngineError.
type Engine interface {
	RunProgram(program WashingProgram) error
}

// PumpError is a water pump malfunction.
type PumpError struct {
	Level  FillLevel
	Reason string
}

func (e *PumpError) Error() string {
	return fmt.Sprintf("water pump failed to pour %s: %s", e.Level, e.Reason)
}

// EngineError is a wash engine malfunction.
type EngineError struct {
	Program WashingProgram
	Reason  string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine failed to run %s: %s", e.Program, e.Reason)
}
