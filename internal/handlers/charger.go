package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"chargebench/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusSuccess = "success"
	statusError   = "error"

	errStartCycle = "failed to start charge cycle"
	errStopCycle  = "failed to stop charge cycle"
	errGetState   = "failed to read charge state"

	msgMissingTime   = "Missing 'time' parameter (ms)."
	msgInvalidTime   = "Invalid 'time' parameter (ms)."
	msgTimeOutOfBand = "'time' must be between 100 and 60000 ms."
	msgBusy          = "Charging in progress. Please wait."
	msgStopped       = "Charging stopped immediately."
	msgConfirmedLow  = "Not currently charging. Pin confirmed LOW."
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"status": statusError, "message": userMsg})
}

// @Summary      Start capacitor charging
// @Description  Holds the charge line HIGH for the requested time, then releases it autonomously.
// @Tags         control
// @Produce      json
// @Param        time  query  int  true  "Duration to hold the charge line HIGH, in milliseconds (100 to 60000)"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string  "Invalid or missing 'time' parameter"
// @Failure      409  {object}  map[string]string  "A charging cycle is already in progress"
// @Router       /charge [get]
func (h *Handler) charge(c *gin.Context) {
	raw, ok := c.GetQuery("time")
	durationMs, parseErr := strconv.ParseInt(raw, 10, 64)
	if !ok || parseErr != nil {
		// Zero is out of range, so the request still reaches Start and an
		// active cycle answers with the conflict before the input is judged.
		durationMs = 0
	}

	receipt, err := h.services.Charger.Start(c.Request.Context(), durationMs)
	switch {
	case errors.Is(err, service.ErrCycleInProgress):
		c.JSON(http.StatusConflict, gin.H{"status": statusError, "message": msgBusy})
	case errors.Is(err, service.ErrDurationOutOfRange):
		msg := msgTimeOutOfBand
		switch {
		case !ok:
			msg = msgMissingTime
		case parseErr != nil:
			msg = msgInvalidTime
		}
		c.JSON(http.StatusBadRequest, gin.H{"status": statusError, "message": msg})
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errStartCycle, "charge_start_failed", err, "duration_ms", durationMs)
	default:
		if h.log != nil {
			h.log.Infow("charge_cycle_initiated", "duration_ms", receipt.DurationMs)
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  statusSuccess,
			"message": fmt.Sprintf("Charge cycle initiated for %dms.", receipt.DurationMs),
		})
	}
}

// @Summary      Emergency stop
// @Description  Immediately stops any active charging cycle by driving the charge line LOW. Safe to call while idle.
// @Tags         control
// @Produce      json
// @Success      200  {object}  map[string]string  "Charge stopped or confirmed idle"
// @Failure      500  {object}  map[string]string
// @Router       /stop [post]
func (h *Handler) stop(c *gin.Context) {
	receipt, err := h.services.Charger.Stop(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errStopCycle, "charge_stop_failed", err)
		return
	}
	msg := msgConfirmedLow
	if receipt.Interrupted {
		msg = msgStopped
		if h.log != nil {
			h.log.Infow("charge_cycle_interrupted")
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "message": msg})
}

// @Summary      Get current charge state
// @Description  Reports whether the line is currently HIGH (charging) or LOW (idle), and the remaining time if charging. The idle level is a live read of the line.
// @Tags         status
// @Produce      json
// @Success      200  {object}  models.Snapshot
// @Failure      500  {object}  map[string]string
// @Router       /state [get]
func (h *Handler) state(c *gin.Context) {
	snap, err := h.services.Charger.Status(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "charge_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	resp := gin.H{"status": statusOK}
	if h.clk != nil {
		resp["uptime_ms"] = h.clk.Millis()
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Get bench information
// @Tags         system
// @Produce      json
// @Success      200  {object}  BenchInfo
// @Router       /info [get]
func (h *Handler) benchInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.info)
}

func (h *Handler) root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/swagger/index.html")
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  statusError,
		"message": "Resource Not Found",
		"path":    c.Request.URL.Path,
		"method":  c.Request.Method,
	})
}
