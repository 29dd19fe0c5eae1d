// Package hardware provides simulated dishwasher collaborators driven by a
// persisted appliance snapshot.
package hardware

import (
	dw "controlling_dishwasher"
	"controlling_dishwasher/internal/models"
)

// Panel bundles one set of simulated collaborators. It records every
// command issued so the service can report what the controller did.
type Panel struct {
	Door   *Door
	Filter *Filter
	Pump   *Pump
	Engine *Engine
}

// NewPanel builds collaborators reflecting st.
func NewPanel(st models.ApplianceState) *Panel {
	return &Panel{
		Door:   &Door{closed: st.DoorClosed},
		Filter: &Filter{capacity: st.FilterCapacity},
		Pump:   &Pump{fault: st.PumpFault},
		Engine: &Engine{fault: st.EngineFault},
	}
}

type Door struct{ closed bool }

func (d *Door) Closed() bool { return d.closed }

type Filter struct{ capacity float64 }

func (f *Filter) Capacity() float64 { return f.capacity }

// Pump refuses to pour while a fault is set.
type Pump struct {
	fault  string
	poured []dw.FillLevel
}

func (p *Pump) Pour(level dw.FillLevel) error {
	if p.fault != "" {
		return &dw.PumpError{Level: level, Reason: p.fault}
	}
	p.poured = append(p.poured, level)
	return nil
}

// Poured lists successful fill commands in order.
func (p *Pump) Poured() []dw.FillLevel { return p.poured }

// Engine refuses to run while a fault is set.
type Engine struct {
	fault string
	ran   []dw.WashingProgram
}

func (e *Engine) RunProgram(program dw.WashingProgram) error {
	if e.fault != "" {
		return &dw.EngineError{Program: program, Reason: e.fault}
	}
	e.ran = append(e.ran, program)
	return nil
}

// Ran lists programs the engine completed.
func (e *Engine) Ran() []dw.WashingProgram { return e.ran }

var (
	_ dw.Door       = (*Door)(nil)
	_ dw.DirtFilter = (*Filter)(nil)
	_ dw.WaterPump  = (*Pump)(nil)
	_ dw.Engine     = (*Engine)(nil)
)
