package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"controlling_dishwasher/internal/models"
	"controlling_dishwasher/internal/repository"
)

var (
	ErrInvalidTimeRange = errors.New("invalid time range: From must be <= To")
	ErrUnknownEventType = errors.New("unknown event type")
)

var knownEventTypes = map[string]struct{}{
	models.EventDoorOpened:    {},
	models.EventDoorClosed:    {},
	models.EventFilterCleaned: {},
	models.EventFilterSet:     {},
	models.EventFaultInjected: {},
	models.EventFaultsCleared: {},
}

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

// normalizeFilter converts bounds to UTC, uppercases the type and rejects
// inverted ranges or unknown types before the repository is queried.
func normalizeFilter(f LogFilter) (LogFilter, error) {
	out := LogFilter{
		From: toUTC(f.From),
		To:   toUTC(f.To),
		Type: strings.ToUpper(strings.TrimSpace(f.Type)),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return LogFilter{}, ErrInvalidTimeRange
	}
	if out.Type != "" {
		if _, ok := knownEventTypes[out.Type]; !ok {
			return LogFilter{}, fmt.Errorf("%w: %q", ErrUnknownEventType, f.Type)
		}
	}
	return out, nil
}

// List returns maintenance events matching f, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.ApplianceEvent, error) {
	nf, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, nf.From, nf.To, nf.Type)
}
