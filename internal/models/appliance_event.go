package models

import "time"

// Event types recorded in the maintenance log.
const (
	EventDoorOpened    = "DOOR_OPENED"
	EventDoorClosed    = "DOOR_CLOSED"
	EventFilterCleaned = "FILTER_CLEANED"
	EventFilterSet     = "FILTER_SET"
	EventFaultInjected = "FAULT_INJECTED"
	EventFaultsCleared = "FAULTS_CLEARED"
)

// ApplianceEvent is a single maintenance log entry.
type ApplianceEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
