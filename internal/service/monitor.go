package service

import (
	"context"
	"time"

	"chargebench/internal/logger"
)

// MonitorService drives the charger's timeout check at a fixed interval.
// The interval must stay small relative to the minimum cycle duration of
// 100ms, so a due cycle is never held HIGH for long past its deadline.
type MonitorService struct {
	charger Charger
	log     *logger.Logger
}

func NewMonitorService(charger Charger, log *logger.Logger) *MonitorService {
	return &MonitorService{charger: charger, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (m *MonitorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.charger.Tick(ctx)
		}
	}
}
