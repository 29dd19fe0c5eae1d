package controlling_dishwasher

import (
	"errors"
	"fmt"
)

var (
	ErrProgramRequired  = errors.New("washing program is required")
	ErrUnknownProgram   = errors.New("unknown washing program")
	ErrUnknownFillLevel = errors.New("unknown fill level")
)

// ProgramConfiguration describes one requested wash cycle. It is immutable
// once built; use NewProgramConfiguration to obtain one.
type ProgramConfiguration struct {
	program     WashingProgram
	tabletsUsed bool
	fillLevel   FillLevel
}

// ConfigurationOption sets an optional field of a ProgramConfiguration.
type ConfigurationOption func(*ProgramConfiguration)

func WithTabletsUsed(used bool) ConfigurationOption {
	return func(c *ProgramConfiguration) { c.tabletsUsed = used }
}

// WithFillLevel requests a fill level. FillLevelUnset leaves the choice to the controller.
func WithFillLevel(level FillLevel) ConfigurationOption {
	return func(c *ProgramConfiguration) { c.fillLevel = level }
}

// NewProgramConfiguration validates the mandatory program and any optional
// fields. The fill level is left unset unless requested.
func NewProgramConfiguration(program WashingProgram, opts ...ConfigurationOption) (ProgramConfiguration, error) {
	if program == "" {
		return ProgramConfiguration{}, ErrProgramRequired
	}
	if !program.Valid() {
		return ProgramConfiguration{}, fmt.Errorf("%w: %q", ErrUnknownProgram, program)
	}

	c := ProgramConfiguration{program: program}
	for _, opt := range opts {
		opt(&c)
	}
	if c.fillLevel != FillLevelUnset && !c.fillLevel.Valid() {
		return ProgramConfiguration{}, fmt.Errorf("%w: %q", ErrUnknownFillLevel, c.fillLevel)
	}
	return c, nil
}

func (c ProgramConfiguration) Program() WashingProgram { return c.program }

func (c ProgramConfiguration) TabletsUsed() bool { return c.tabletsUsed }

// FillLevel returns the requested level and whether one was set.
func (c ProgramConfiguration) FillLevel() (FillLevel, bool) {
	return c.fillLevel, c.fillLevel != FillLevelUnset
}
