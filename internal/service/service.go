package service

import (
	"context"
	"time"

	"chargebench/internal/clock"
	"chargebench/internal/gpio"
	"chargebench/internal/logger"
	"chargebench/internal/models"
	"chargebench/internal/repository"
)

// Charger exposes control of the charge line: start/stop/status plus the
// scheduler-driven timeout check. Tick is invoked only by the monitor
// loop, never by request handlers.
type Charger interface {
	Start(ctx context.Context, durationMs int64) (models.StartReceipt, error)
	Stop(ctx context.Context) (models.StopReceipt, error)
	Status(ctx context.Context) (models.Snapshot, error)
	Tick(ctx context.Context)
}

// EventLog exposes the append-only cycle history with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ChargeEvent, error)
}

// Monitor runs the background loop that completes due cycles.
// Stop via context cancellation in main() for graceful shutdown.
type Monitor interface {
	Run(ctx context.Context, tick time.Duration)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Charger
	EventLog
	Monitor
}

// NewService wires the hardware collaborators and the repository layer
// into concrete services.
func NewService(repos *repository.Repository, line gpio.Line, clk clock.Clock, log *logger.Logger) *Service {
	charger := NewChargerService(line, clk, repos.EventRepo, log)
	return &Service{
		Charger:  charger,
		EventLog: NewEventLogService(repos.EventRepo),
		Monitor:  NewMonitorService(charger, log),
	}
}
