package service

import (
	"context"
	"time"

	"controlling_dishwasher/internal/models"
	"controlling_dishwasher/internal/repository"
)

type MonitoringService struct {
	stateRepo repository.StateRepo
}

func NewMonitoringService(stateRepo repository.StateRepo) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo}
}

// GetState returns the persisted appliance snapshot, or the factory
// baseline when nothing has been persisted yet.
func (s *MonitoringService) GetState(ctx context.Context) (models.ApplianceState, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.ApplianceState{}, err
	}
	if state.ID == 0 {
		return baselineState(time.Now().UTC()), nil
	}
	state.UpdatedAt = toUTC(state.UpdatedAt)
	return state, nil
}

// baselineState is a fresh appliance: door shut, clean filter, no faults.
func baselineState(now time.Time) models.ApplianceState {
	return models.ApplianceState{
		ID:             1, // schema enforces the single row id=1
		DoorClosed:     true,
		FilterCapacity: fullFilterCapacity,
		UpdatedAt:      now,
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
