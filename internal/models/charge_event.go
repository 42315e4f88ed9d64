package models

import "time"

// Event types recorded in the charge history.
const (
	EventCycleStart    = "CYCLE_START"
	EventCycleComplete = "CYCLE_COMPLETE"
	EventCycleStop     = "CYCLE_STOP"
	EventError         = "ERROR"
)

// ChargeEvent is a single history entry.
type ChargeEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // CYCLE_START | CYCLE_COMPLETE | CYCLE_STOP | ERROR
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
