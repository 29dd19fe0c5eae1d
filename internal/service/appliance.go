package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"controlling_dishwasher/internal/models"
	"controlling_dishwasher/internal/repository"

	"github.com/google/uuid"
)

const fullFilterCapacity = 100.0

var (
	ErrInvalidCapacity  = errors.New("filter capacity must be within [0, 100]")
	ErrInvalidComponent = errors.New("invalid component: must be PUMP or ENGINE")
	ErrFaultReason      = errors.New("fault reason is required")
	ErrDoorAlreadyOpen  = errors.New("door is already open")
	ErrDoorClosed       = errors.New("door is already closed")
)

// ApplianceService changes the simulated hardware on behalf of an operator
// and records each change in the maintenance log.
type ApplianceService struct {
	stateRepo repository.StateRepo
	eventRepo repository.EventRepo

	mu *sync.Mutex
}

func NewApplianceService(stateRepo repository.StateRepo, eventRepo repository.EventRepo) *ApplianceService {
	return &ApplianceService{stateRepo: stateRepo, eventRepo: eventRepo, mu: &sync.Mutex{}}
}

// change describes one operator action.
type change struct {
	eventType   string
	description string
	apply       func(st *models.ApplianceState) error
	metadata    func(st models.ApplianceState) map[string]any
}

func (s *ApplianceService) OpenDoor(ctx context.Context) error {
	return s.update(ctx, change{
		eventType:   models.EventDoorOpened,
		description: "Door opened",
		apply: func(st *models.ApplianceState) error {
			if !st.DoorClosed {
				return ErrDoorAlreadyOpen
			}
			st.DoorClosed = false
			return nil
		},
	})
}

func (s *ApplianceService) CloseDoor(ctx context.Context) error {
	return s.update(ctx, change{
		eventType:   models.EventDoorClosed,
		description: "Door closed",
		apply: func(st *models.ApplianceState) error {
			if st.DoorClosed {
				return ErrDoorClosed
			}
			st.DoorClosed = true
			return nil
		},
	})
}

// CleanFilter restores full filter capacity.
func (s *ApplianceService) CleanFilter(ctx context.Context) error {
	var before float64
	return s.update(ctx, change{
		eventType:   models.EventFilterCleaned,
		description: "Dirt filter cleaned",
		apply: func(st *models.ApplianceState) error {
			before = st.FilterCapacity
			st.FilterCapacity = fullFilterCapacity
			return nil
		},
		metadata: func(st models.ApplianceState) map[string]any {
			return map[string]any{"from": before, "to": st.FilterCapacity}
		},
	})
}

// SetFilterCapacity models a sensor reading, e.g. a clogged filter.
func (s *ApplianceService) SetFilterCapacity(ctx context.Context, percent float64) error {
	if !(percent >= 0 && percent <= fullFilterCapacity) {
		return fmt.Errorf("%w: %v", ErrInvalidCapacity, percent)
	}
	return s.update(ctx, change{
		eventType:   models.EventFilterSet,
		description: fmt.Sprintf("Filter capacity set to %.1f%%", percent),
		apply: func(st *models.ApplianceState) error {
			st.FilterCapacity = percent
			return nil
		},
		metadata: func(st models.ApplianceState) map[string]any {
			return map[string]any{"capacity": st.FilterCapacity}
		},
	})
}

// InjectFault makes the pump or engine fail on its next command.
func (s *ApplianceService) InjectFault(ctx context.Context, p FaultParams) error {
	component := strings.ToUpper(strings.TrimSpace(p.Component))
	reason := strings.TrimSpace(p.Reason)
	if component != ComponentPump && component != ComponentEngine {
		return ErrInvalidComponent
	}
	if reason == "" {
		return ErrFaultReason
	}
	return s.update(ctx, change{
		eventType:   models.EventFaultInjected,
		description: fmt.Sprintf("%s fault injected: %s", component, reason),
		apply: func(st *models.ApplianceState) error {
			if component == ComponentPump {
				st.PumpFault = reason
			} else {
				st.EngineFault = reason
			}
			return nil
		},
		metadata: func(models.ApplianceState) map[string]any {
			return map[string]any{"component": component, "reason": reason}
		},
	})
}

func (s *ApplianceService) ClearFaults(ctx context.Context) error {
	return s.update(ctx, change{
		eventType:   models.EventFaultsCleared,
		description: "Hardware faults cleared",
		apply: func(st *models.ApplianceState) error {
			st.PumpFault = ""
			st.EngineFault = ""
			return nil
		},
	})
}

// update loads the snapshot (or the baseline when none exists), applies c,
// saves and appends the matching event. If the event cannot be appended the
// previous snapshot is written back, so state and log stay in step.
func (s *ApplianceService) update(ctx context.Context, c change) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return err
	}
	if st.ID == 0 {
		st = baselineState(now)
	}
	prev := st
	if err := c.apply(&st); err != nil {
		return err
	}
	st.UpdatedAt = now

	if err := s.stateRepo.Save(ctx, st); err != nil {
		return err
	}

	ev := models.ApplianceEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        c.eventType,
		Description: c.description,
	}
	if c.metadata != nil {
		ev.Metadata = c.metadata(st)
	}
	if err := s.eventRepo.Append(ctx, ev); err != nil {
		if rerr := s.stateRepo.Save(ctx, prev); rerr != nil {
			return errors.Join(err, fmt.Errorf("restore appliance state: %w", rerr))
		}
		return err
	}
	return nil
}
