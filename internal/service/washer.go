package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dw "controlling_dishwasher"
	"controlling_dishwasher/internal/hardware"
	"controlling_dishwasher/internal/metrics"
	"controlling_dishwasher/internal/repository"

	"go.uber.org/zap"
)

// ErrInvalidCycle marks a cycle request rejected before the appliance is touched.
var ErrInvalidCycle = errors.New("invalid cycle request")

type WasherService struct {
	stateRepo repository.StateRepo
	opts      []dw.Option
	log       *zap.Logger

	// guards the single appliance row; shared with ApplianceService
	mu *sync.Mutex
}

func NewWasherService(stateRepo repository.StateRepo, opts []dw.Option, log *zap.Logger) *WasherService {
	if log == nil {
		log = zap.NewNop()
	}
	return &WasherService{stateRepo: stateRepo, opts: opts, log: log, mu: &sync.Mutex{}}
}

// Start validates the request, wires the current appliance snapshot into a
// controller and runs one cycle attempt. Door, filter and hardware faults
// are reported in the outcome; only repository or option errors are returned.
func (s *WasherService) Start(ctx context.Context, p CycleParams) (CycleOutcome, error) {
	cfg, err := buildConfiguration(p)
	if err != nil {
		return CycleOutcome{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return CycleOutcome{}, err
	}
	if st.ID == 0 {
		st = baselineState(time.Now().UTC())
	}

	panel := hardware.NewPanel(st)
	washer, err := s.controller(panel)
	if err != nil {
		return CycleOutcome{}, err
	}

	res := washer.Start(cfg)
	metrics.ObserveCycle(cfg.Program(), res)

	out := CycleOutcome{
		Program:    cfg.Program(),
		Status:     res.Status(),
		RunMinutes: res.RunMinutes(),
	}
	if poured := panel.Pump.Poured(); len(poured) > 0 {
		out.FillLevel = poured[len(poured)-1]
	}
	if res.Err() != nil {
		out.Fault = res.Err().Error()
	}
	return out, nil
}

// Programs lists every washing program with its configured duration.
func (s *WasherService) Programs() []ProgramInfo {
	washer, err := s.controller(hardware.NewPanel(baselineState(time.Time{})))
	if err != nil {
		s.log.Error("controller options rejected", zap.Error(err))
		return nil
	}
	out := make([]ProgramInfo, 0, len(dw.Programs()))
	for _, p := range dw.Programs() {
		minutes, _ := washer.Duration(p)
		out = append(out, ProgramInfo{Program: p, Minutes: minutes})
	}
	return out
}

func (s *WasherService) controller(panel *hardware.Panel) (*dw.DishWasher, error) {
	opts := append([]dw.Option{dw.WithLogger(s.log)}, s.opts...)
	return dw.New(panel.Pump, panel.Engine, panel.Filter, panel.Door, opts...)
}

func buildConfiguration(p CycleParams) (dw.ProgramConfiguration, error) {
	program, err := dw.ParseWashingProgram(p.Program)
	if err != nil {
		return dw.ProgramConfiguration{}, fmt.Errorf("%w: %w", ErrInvalidCycle, err)
	}
	level, err := dw.ParseFillLevel(p.FillLevel)
	if err != nil {
		return dw.ProgramConfiguration{}, fmt.Errorf("%w: %w", ErrInvalidCycle, err)
	}
	cfg, err := dw.NewProgramConfiguration(program, dw.WithTabletsUsed(p.TabletsUsed), dw.WithFillLevel(level))
	if err != nil {
		return dw.ProgramConfiguration{}, fmt.Errorf("%w: %w", ErrInvalidCycle, err)
	}
	return cfg, nil
}
