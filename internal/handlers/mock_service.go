package handlers

import (
	"context"
	"time"

	"chargebench/internal/models"
	"chargebench/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockCharger struct {
	startReceipt models.StartReceipt
	startErr     error
	stopReceipt  models.StopReceipt
	stopErr      error
	snapshot     models.Snapshot
	statusErr    error

	lastDurationMs int64
	startCalled    int
	stopCalled     int
	statusCalled   int
	tickCalled     int
}

func (m *mockCharger) Start(ctx context.Context, durationMs int64) (models.StartReceipt, error) {
	m.startCalled++
	m.lastDurationMs = durationMs
	if m.startErr != nil {
		return models.StartReceipt{}, m.startErr
	}
	if m.startReceipt.DurationMs == 0 {
		return models.StartReceipt{DurationMs: durationMs}, nil
	}
	return m.startReceipt, nil
}

func (m *mockCharger) Stop(ctx context.Context) (models.StopReceipt, error) {
	m.stopCalled++
	return m.stopReceipt, m.stopErr
}

func (m *mockCharger) Status(ctx context.Context) (models.Snapshot, error) {
	m.statusCalled++
	return m.snapshot, m.statusErr
}

func (m *mockCharger) Tick(ctx context.Context) { m.tickCalled++ }

type mockEventLog struct {
	resp     []models.ChargeEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.ChargeEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, BenchInfo{Project: "test bench", APIVersion: "test"}, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
