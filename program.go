package controlling_dishwasher

import (
	"fmt"
	"strings"
)

// WashingProgram is a wash profile with a fixed nominal duration.
type WashingProgram string

const (
	ProgramEco       WashingProgram = "ECO"
	ProgramIntensive WashingProgram = "INTENSIVE"
	ProgramRinse     WashingProgram = "RINSE"
	ProgramNiagara   WashingProgram = "NIAGARA"
)

// Programs returns every known program in display order.
func Programs() []WashingProgram {
	return []WashingProgram{ProgramEco, ProgramIntensive, ProgramRinse, ProgramNiagara}
}

// Valid reports whether p is one of the known programs.
func (p WashingProgram) Valid() bool {
	switch p {
	case ProgramEco, ProgramIntensive, ProgramRinse, ProgramNiagara:
		return true
	default:
		return false
	}
}

func (p WashingProgram) String() string { return string(p) }

// ParseWashingProgram accepts program names in any case, surrounded by spaces or not.
func ParseWashingProgram(s string) (WashingProgram, error) {
	p := WashingProgram(strings.ToUpper(strings.TrimSpace(s)))
	if p == "" {
		return "", ErrProgramRequired
	}
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProgram, s)
	}
	return p, nil
}

// FillLevel is the target water quantity for the pump. The zero value means unset.
type FillLevel string

const (
	FillLevelUnset FillLevel = ""
	FillLevelHalf  FillLevel = "HALF"
	FillLevelFull  FillLevel = "FULL"
)

// Valid reports whether l is HALF or FULL.
func (l FillLevel) Valid() bool {
	return l == FillLevelHalf || l == FillLevelFull
}

func (l FillLevel) String() string { return string(l) }

// ParseFillLevel returns FillLevelUnset for an empty string.
func ParseFillLevel(s string) (FillLevel, error) {
	l := FillLevel(strings.ToUpper(strings.TrimSpace(s)))
	if l == FillLevelUnset {
		return FillLevelUnset, nil
	}
	if !l.Valid() {
		return FillLevelUnset, fmt.Errorf("%w: %q", ErrUnknownFillLevel, s)
	}
	return l, nil
}

// Status is the terminal outcome of one cycle attempt.
type Status string

const (
	StatusSuccess      Status = "SUCCESS"
	StatusDoorOpen     Status = "DOOR_OPEN"
	StatusErrorFilter  Status = "ERROR_FILTER"
	StatusErrorPump    Status = "ERROR_PUMP"
	StatusErrorProgram Status = "ERROR_PROGRAM"
	StatusErrorSystem  Status = "ERROR_SYSTEM"
)

func (s Status) String() string { return string(s) }

// Failed reports whether the status was caused by a collaborator fault.
func (s Status) Failed() bool {
	switch s {
	case StatusErrorPump, StatusErrorProgram, StatusErrorSystem:
		return true
	default:
		return false
	}
}
