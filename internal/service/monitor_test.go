package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"chargebench/internal/models"
)

// tickCounter counts Tick invocations; the other operations are unused.
type tickCounter struct {
	ticks atomic.Int64
}

func (c *tickCounter) Start(ctx context.Context, durationMs int64) (models.StartReceipt, error) {
	return models.StartReceipt{}, nil
}
func (c *tickCounter) Stop(ctx context.Context) (models.StopReceipt, error) {
	return models.StopReceipt{}, nil
}
func (c *tickCounter) Status(ctx context.Context) (models.Snapshot, error) {
	return models.Snapshot{}, nil
}
func (c *tickCounter) Tick(ctx context.Context) { c.ticks.Add(1) }

func TestMonitor_TicksUntilCanceled(t *testing.T) {
	charger := &tickCounter{}
	m := NewMonitorService(charger, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	// Give the loop a few intervals to fire.
	time.Sleep(60 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if charger.ticks.Load() < 2 {
		t.Fatalf("expected at least 2 ticks, got %d", charger.ticks.Load())
	}

	// No further ticks after Run returned.
	n := charger.ticks.Load()
	time.Sleep(20 * time.Millisecond)
	if charger.ticks.Load() != n {
		t.Fatalf("ticks continued after cancel")
	}
}

func TestMonitor_CompletesARealCycle(t *testing.T) {
	s, line, clk, _ := newTestCharger()
	m := NewMonitorService(s, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx, time.Millisecond)

	if _, err := s.Start(ctx, 100); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.Advance(100)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		snap, err := s.Status(ctx)
		if err != nil {
			t.Fatalf("Status: %v", err)
		}
		if snap.Status == models.StatusIdle {
			if lvl, _ := line.ReadLevel(); lvl.String() != models.LevelLow {
				t.Fatalf("line not LOW after completion")
			}
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("monitor never completed the due cycle")
}
