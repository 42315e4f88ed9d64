package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chargebench/internal/models"
	"chargebench/internal/service"
)

func TestChargeHandler_SuccessAndValidation(t *testing.T) {
	// Missing 'time' parameter -> 400 with the missing-parameter message.
	// The request still reaches Start (as a zero duration) so the busy
	// check gets first say.
	ch := &mockCharger{startErr: service.ErrDurationOutOfRange}
	r := newTestRouter(&service.Service{Charger: ch})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/charge", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing time: status=%d, body=%s", w.Code, w.Body.String())
	}
	if ch.startCalled != 1 || ch.lastDurationMs != 0 {
		t.Fatalf("Start calls=%d lastDuration=%d", ch.startCalled, ch.lastDurationMs)
	}
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != msgMissingTime {
		t.Fatalf("missing time message: %q", resp.Message)
	}

	// Unparseable 'time' -> 400 with the invalid-parameter message
	ch = &mockCharger{startErr: service.ErrDurationOutOfRange}
	r = newTestRouter(&service.Service{Charger: ch})

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/charge?time=bogus", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bogus time: status=%d", w.Code)
	}
	if ch.startCalled != 1 || ch.lastDurationMs != 0 {
		t.Fatalf("Start calls=%d lastDuration=%d", ch.startCalled, ch.lastDurationMs)
	}
	resp = struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != msgInvalidTime {
		t.Fatalf("bogus time message: %q", resp.Message)
	}

	// Valid request -> 200 with success body, duration passed through
	ch = &mockCharger{}
	r = newTestRouter(&service.Service{Charger: ch})

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/charge?time=500", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("charge status=%d, body=%s", w.Code, w.Body.String())
	}
	if ch.startCalled != 1 || ch.lastDurationMs != 500 {
		t.Fatalf("Start calls=%d lastDuration=%d", ch.startCalled, ch.lastDurationMs)
	}
	resp = struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != statusSuccess || resp.Message != "Charge cycle initiated for 500ms." {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestChargeHandler_BusyAnswersConflictBeforeValidation(t *testing.T) {
	// A request with no usable 'time' during an active cycle is still a
	// conflict, matching the bench firmware's check order.
	for _, u := range []string{"/charge", "/charge?time=bogus"} {
		ch := &mockCharger{startErr: service.ErrCycleInProgress}
		r := newTestRouter(&service.Service{Charger: ch})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, u, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("%s while charging: status=%d, want 409", u, w.Code)
		}
		if ch.startCalled != 1 {
			t.Fatalf("%s: Start must be consulted, calls=%d", u, ch.startCalled)
		}
		var resp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != msgBusy {
			t.Fatalf("%s: message %q, want %q", u, resp.Message, msgBusy)
		}
	}
}

func TestChargeHandler_ConflictAndRangeMapping(t *testing.T) {
	// Busy charger -> 409
	ch := &mockCharger{startErr: service.ErrCycleInProgress}
	r := newTestRouter(&service.Service{Charger: ch})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/charge?time=500", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("conflict: status=%d, want 409", w.Code)
	}

	// Out-of-range duration -> 400 (distinct from conflict)
	ch = &mockCharger{startErr: service.ErrDurationOutOfRange}
	r = newTestRouter(&service.Service{Charger: ch})

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/charge?time=99", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out of range: status=%d, want 400", w.Code)
	}

	// Device fault -> 500
	ch = &mockCharger{startErr: &service.DeviceError{Op: "set", Err: http.ErrAbortHandler}}
	r = newTestRouter(&service.Service{Charger: ch})

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/charge?time=500", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("device error: status=%d, want 500", w.Code)
	}
}

func TestStopHandler_AlwaysSucceeds(t *testing.T) {
	// Interrupting an active cycle
	ch := &mockCharger{stopReceipt: models.StopReceipt{Interrupted: true}}
	r := newTestRouter(&service.Service{Charger: ch})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/stop", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("stop status=%d", w.Code)
	}
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Status != statusSuccess || resp.Message != msgStopped {
		t.Fatalf("unexpected stop response: %+v", resp)
	}

	// Already idle: still 200, different message
	ch = &mockCharger{}
	r = newTestRouter(&service.Service{Charger: ch})

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/stop", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("idle stop status=%d", w.Code)
	}
	resp = struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != msgConfirmedLow {
		t.Fatalf("unexpected idle stop message: %q", resp.Message)
	}
	if ch.stopCalled != 1 {
		t.Fatalf("expected Stop called once, got %d", ch.stopCalled)
	}
}

func TestStateHandler_ReturnsSnapshotVerbatim(t *testing.T) {
	ch := &mockCharger{snapshot: models.Snapshot{
		Status:          models.StatusCharging,
		GpioLevel:       models.LevelHigh,
		DurationMs:      5000,
		TimeRemainingMs: 1500,
	}}
	r := newTestRouter(&service.Service{Charger: ch})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("state status=%d, body=%s", w.Code, w.Body.String())
	}

	var snap models.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if snap != ch.snapshot {
		t.Fatalf("snapshot changed in transit: %+v", snap)
	}
}

func TestHealthInfoAndNotFound(t *testing.T) {
	r := newTestRouter(&service.Service{Charger: &mockCharger{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/info", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("info status=%d", w.Code)
	}
	var info BenchInfo
	_ = json.Unmarshal(w.Body.Bytes(), &info)
	if info.Project != "test bench" {
		t.Fatalf("unexpected info: %+v", info)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/no/such/path", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("notFound status=%d", w.Code)
	}

	// Root redirects to the swagger UI
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusFound {
		t.Fatalf("root status=%d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/swagger/index.html" {
		t.Fatalf("root redirect location=%q", loc)
	}
}
