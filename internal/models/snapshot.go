package models

// Line levels as reported over the API.
const (
	LevelHigh = "HIGH"
	LevelLow  = "LOW"
)

// Cycle statuses.
const (
	StatusCharging = "charging"
	StatusIdle     = "idle"
)

// Snapshot is the externally visible charge-cycle state.
// While charging, DurationMs and TimeRemainingMs are populated and
// GpioLevel is the commanded HIGH; when idle, GpioLevel is a live read
// of the line.
type Snapshot struct {
	Status          string `json:"status"`                      // charging | idle
	GpioLevel       string `json:"gpio_level"`                  // HIGH | LOW
	DurationMs      int64  `json:"duration_ms,omitempty"`       // set while charging
	TimeRemainingMs int64  `json:"time_remaining_ms,omitempty"` // set while charging
}

// StartReceipt reports an accepted charge request.
type StartReceipt struct {
	DurationMs int64 `json:"duration_ms"`
}

// StopReceipt reports the outcome of a stop request.
type StopReceipt struct {
	Interrupted bool `json:"interrupted"` // true if an active cycle was cut short
}
