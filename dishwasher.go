package controlling_dishwasher

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Controller defaults.
const (
	DefaultFilterThreshold = 50.0 // minimum usable filter capacity, %
	DefaultFillLevel       = FillLevelHalf
)

var (
	ErrMissingCollaborator = errors.New("dishwasher collaborator is nil")
	ErrInvalidThreshold    = errors.New("filter threshold must be within (0, 100]")
	ErrInvalidDuration     = errors.New("program duration must be positive")
)

// DefaultDurations returns the nominal run time in minutes of every program.
func DefaultDurations() map[WashingProgram]int {
	return map[WashingProgram]int{
		ProgramEco:       90,
		ProgramIntensive: 120,
		ProgramRinse:     15,
		ProgramNiagara:   100,
	}
}

// DishWasher runs single wash cycles against its hardware collaborators.
// It keeps no state between calls; concurrent Start calls are only safe if
// the collaborators are.
type DishWasher struct {
	pump   WaterPump
	engine Engine
	filter DirtFilter
	door   Door

	threshold   float64
	durations   map[WashingProgram]int
	defaultFill FillLevel
	log         *zap.Logger
}

// Option customises a DishWasher.
type Option func(*DishWasher) error

func WithFilterThreshold(percent float64) Option {
	return func(d *DishWasher) error {
		if !(percent > 0 && percent <= 100) {
			return fmt.Errorf("%w: %v", ErrInvalidThreshold, percent)
		}
		d.threshold = percent
		return nil
	}
}

// WithProgramDurations overrides entries of the default duration table.
func WithProgramDurations(minutes map[WashingProgram]int) Option {
	return func(d *DishWasher) error {
		for p, m := range minutes {
			if !p.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownProgram, p)
			}
			if m <= 0 {
				return fmt.Errorf("%w: %s=%d", ErrInvalidDuration, p, m)
			}
			d.durations[p] = m
		}
		return nil
	}
}

// WithDefaultFillLevel sets the level poured when a configuration has none.
func WithDefaultFillLevel(level FillLevel) Option {
	return func(d *DishWasher) error {
		if !level.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownFillLevel, level)
		}
		d.defaultFill = level
		return nil
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(d *DishWasher) error {
		if log != nil {
			d.log = log
		}
		return nil
	}
}

// New builds a controller around the given hardware.
func New(pump WaterPump, engine Engine, filter DirtFilter, door Door, opts ...Option) (*DishWasher, error) {
	if pump == nil || engine == nil || filter == nil || door == nil {
		return nil, ErrMissingCollaborator
	}
	d := &DishWasher{
		pump:        pump,
		engine:      engine,
		filter:      filter,
		door:        door,
		threshold:   DefaultFilterThreshold,
		durations:   DefaultDurations(),
		defaultFill: DefaultFillLevel,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// CheckOptions reports the first invalid option without building a controller.
func CheckOptions(opts ...Option) error {
	scratch := &DishWasher{durations: DefaultDurations()}
	for _, opt := range opts {
		if err := opt(scratch); err != nil {
			return err
		}
	}
	return nil
}

// Start runs one cycle attempt. An open door or a clogged filter is
// reported through the result status before any hardware is driven; the
// pump always pours before the engine runs.
func (d *DishWasher) Start(cfg ProgramConfiguration) (result RunResult) {
	log := d.log.With(zap.Stringer("program", cfg.Program()))

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("collaborator panic: %v", r)
			log.Error("cycle aborted", zap.Error(err))
			result = faulted(StatusErrorSystem, err)
		}
	}()

	if !cfg.Program().Valid() {
		return faulted(StatusErrorSystem, ErrProgramRequired)
	}

	if !d.door.Closed() {
		log.Info("cycle rejected", zap.Stringer("status", StatusDoorOpen))
		return rejected(StatusDoorOpen)
	}

	// NaN readings fail the check
	if capacity := d.filter.Capacity(); !(capacity >= d.threshold) {
		log.Info("cycle rejected",
			zap.Stringer("status", StatusErrorFilter),
			zap.Float64("filter_capacity", capacity),
			zap.Float64("threshold", d.threshold))
		return rejected(StatusErrorFilter)
	}

	level := d.fillLevel(cfg)
	if err := d.pump.Pour(level); err != nil {
		log.Warn("pump fault", zap.Stringer("fill_level", level), zap.Error(err))
		return faulted(StatusErrorPump, err)
	}

	if err := d.engine.RunProgram(cfg.Program()); err != nil {
		var engineErr *EngineError
		if errors.As(err, &engineErr) {
			log.Warn("engine fault", zap.Error(err))
			return faulted(StatusErrorProgram, err)
		}
		log.Error("engine returned unexpected error", zap.Error(err))
		return faulted(StatusErrorSystem, err)
	}

	minutes := d.durations[cfg.Program()]
	log.Info("cycle finished",
		zap.Stringer("fill_level", level),
		zap.Bool("tablets_used", cfg.TabletsUsed()),
		zap.Int("run_minutes", minutes))
	return succeeded(minutes)
}

// Duration returns the configured run time of a program in minutes.
func (d *DishWasher) Duration(p WashingProgram) (int, bool) {
	m, ok := d.durations[p]
	return m, ok
}

func (d *DishWasher) FilterThreshold() float64 { return d.threshold }

func (d *DishWasher) DefaultFillLevel() FillLevel { return d.defaultFill }

func (d *DishWasher) fillLevel(cfg ProgramConfiguration) FillLevel {
	if level, ok := cfg.FillLevel(); ok {
		return level
	}
	return d.defaultFill
}
