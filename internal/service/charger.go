package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"chargebench/internal/clock"
	"chargebench/internal/gpio"
	"chargebench/internal/logger"
	"chargebench/internal/models"
	"chargebench/internal/repository"

	"github.com/google/uuid"
)

// Accepted charge duration bounds, inclusive, in milliseconds.
const (
	MinDurationMs = 100
	MaxDurationMs = 60000
)

var (
	// ErrCycleInProgress rejects a start while a cycle is active.
	ErrCycleInProgress = errors.New("charging in progress")

	// ErrDurationOutOfRange rejects durations outside the accepted bounds.
	ErrDurationOutOfRange = fmt.Errorf("duration must be between %d and %d ms", MinDurationMs, MaxDurationMs)
)

// DeviceError wraps a hardware fault from the charge line. A cycle that
// hits one is failed: the machine returns to idle and drives the line LOW
// on a best-effort basis.
type DeviceError struct {
	Op  string // "set" or "read"
	Err error
}

func (e *DeviceError) Error() string { return "charge line " + e.Op + ": " + e.Err.Error() }
func (e *DeviceError) Unwrap() error { return e.Err }

// Cycle phases.
const (
	phaseIdle = iota
	phaseCharging
)

// ChargerService owns the charge-cycle state machine. All access to the
// line and the cycle fields routes through it; Start, Stop, Status and
// Tick each run under the one lock, so they are indivisible with respect
// to each other even though gin serves requests on multiple goroutines
// while the monitor loop ticks.
type ChargerService struct {
	line      gpio.Line
	clk       clock.Clock
	eventRepo repository.EventRepo
	log       *logger.Logger

	mu         sync.Mutex
	phase      int
	startedAt  uint32 // clk.Millis() at accept; meaningful only while charging
	durationMs uint32 // meaningful only while charging
}

// NewChargerService returns an idle charger. The caller is expected to
// drive the line LOW once at boot (Stop does this).
func NewChargerService(line gpio.Line, clk clock.Clock, eventRepo repository.EventRepo, log *logger.Logger) *ChargerService {
	return &ChargerService{line: line, clk: clk, eventRepo: eventRepo, log: log}
}

// Start begins a charge cycle: line HIGH, phase charging. The line write
// and the phase transition happen under one lock hold, so no caller can
// observe one without the other. Validation rejects a start while a cycle
// is active before it looks at the duration.
func (s *ChargerService) Start(ctx context.Context, durationMs int64) (models.StartReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == phaseCharging {
		return models.StartReceipt{}, ErrCycleInProgress
	}
	if durationMs < MinDurationMs || durationMs > MaxDurationMs {
		return models.StartReceipt{}, ErrDurationOutOfRange
	}

	if err := s.line.SetLevel(gpio.High); err != nil {
		devErr := &DeviceError{Op: "set", Err: err}
		// The machine stays idle; make sure the line is not left part-way.
		_ = s.line.SetLevel(gpio.Low)
		s.appendEvent(ctx, models.EventError, "start failed: "+devErr.Error(), nil)
		return models.StartReceipt{}, devErr
	}

	s.phase = phaseCharging
	s.startedAt = s.clk.Millis()
	s.durationMs = uint32(durationMs)

	s.appendEvent(ctx, models.EventCycleStart,
		fmt.Sprintf("Charge cycle initiated for %dms", durationMs),
		map[string]any{"duration_ms": durationMs})

	return models.StartReceipt{DurationMs: durationMs}, nil
}

// Stop drives the line LOW unconditionally and ends any active cycle.
// It serves both as an interrupt and as a safety confirmation, so the
// line write happens even when already idle.
func (s *ChargerService) Stop(ctx context.Context) (models.StopReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	interrupted := s.phase == phaseCharging
	s.phase = phaseIdle

	if err := s.line.SetLevel(gpio.Low); err != nil {
		devErr := &DeviceError{Op: "set", Err: err}
		s.appendEvent(ctx, models.EventError, "stop failed: "+devErr.Error(), nil)
		return models.StopReceipt{Interrupted: interrupted}, devErr
	}

	if interrupted {
		s.appendEvent(ctx, models.EventCycleStop, "Charging stopped immediately", nil)
	}
	return models.StopReceipt{Interrupted: interrupted}, nil
}

// Status reports the current snapshot. While charging, the snapshot is
// computed from the cycle fields; when idle, the level comes from a live
// read of the line, never from the last commanded value, so a pin forced
// LOW (or HIGH) out-of-band is reported truthfully.
func (s *ChargerService) Status(ctx context.Context) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == phaseCharging {
		// Unsigned subtraction stays correct across a counter wrap.
		elapsed := s.clk.Millis() - s.startedAt
		var remaining uint32
		if s.durationMs > elapsed {
			remaining = s.durationMs - elapsed
		}
		return models.Snapshot{
			Status:          models.StatusCharging,
			GpioLevel:       models.LevelHigh,
			DurationMs:      int64(s.durationMs),
			TimeRemainingMs: int64(remaining),
		}, nil
	}

	lvl, err := s.line.ReadLevel()
	if err != nil {
		return models.Snapshot{}, &DeviceError{Op: "read", Err: err}
	}
	return models.Snapshot{Status: models.StatusIdle, GpioLevel: lvl.String()}, nil
}

// Tick ends the cycle once the requested duration has elapsed. The
// comparison uses modular subtraction, so a counter that wrapped
// mid-cycle still completes on time. No-op when idle.
func (s *ChargerService) Tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != phaseCharging {
		return
	}
	if s.clk.Millis()-s.startedAt < s.durationMs {
		return
	}

	done := s.durationMs
	s.phase = phaseIdle

	if err := s.line.SetLevel(gpio.Low); err != nil {
		devErr := &DeviceError{Op: "set", Err: err}
		if s.log != nil {
			s.log.Errorw("charge_line_release_failed", "err", devErr)
		}
		s.appendEvent(ctx, models.EventError, "complete failed: "+devErr.Error(), nil)
		return
	}

	s.appendEvent(ctx, models.EventCycleComplete,
		fmt.Sprintf("Charge complete after %dms", done),
		map[string]any{"duration_ms": int64(done)})
}

// appendEvent records a history entry; a failed append is logged, never
// allowed to disturb the cycle.
func (s *ChargerService) appendEvent(ctx context.Context, typ, desc string, meta map[string]any) {
	if s.eventRepo == nil {
		return
	}
	ev := models.ChargeEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	}
	if err := s.eventRepo.Append(ctx, ev); err != nil && s.log != nil {
		s.log.Errorw("event_append_failed", "err", err, "type", typ)
	}
}
