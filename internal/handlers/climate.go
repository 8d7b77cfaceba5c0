package handlers

import (
	"net/http"

	"smart_climate"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK           = "ok"
	statusEvaluated    = "evaluated"
	statusOccupancySet = "occupancy_set"

	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO for a manual evaluation.
type evaluateRequest struct {
	Reading   smart_climate.EnvironmentalReading `json:"reading" binding:"required"`
	Occupancy smart_climate.Occupancy            `json:"occupancy" binding:"required"`
}

// EvaluateRequest is an exported model for Swagger docs of the evaluate payload.
type EvaluateRequest struct {
	// Current outdoor reading
	Reading smart_climate.EnvironmentalReading `json:"reading"`
	// Room occupancy. Allowed: OCCUPIED, UNOCCUPIED
	Occupancy string `json:"occupancy" example:"OCCUPIED"`
}

// Request DTO for the occupancy toggle.
type occupancyRequest struct {
	Occupancy smart_climate.Occupancy `json:"occupancy" binding:"required"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Evaluate devices for a reading
// @Description  Runs the decision rules against the stored preferences and persists the snapshot
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body   EvaluateRequest  true  "Reading and occupancy"
// @Success      200   {object}  map[string]interface{}  "status, state"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/climate/evaluate [post]
// @Security     BearerAuth
func (h *Handler) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	st, err := h.services.Climate.Evaluate(ctx, req.Reading, req.Occupancy)
	if err != nil {
		// Validation failures in the service surface as bad requests.
		if h.log != nil {
			h.log.Errorw("climate_evaluate_failed", "err", err, "occupancy", req.Occupancy)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusEvaluated, "state": st})
}

// @Summary      Get climate state
// @Tags         climate
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/climate/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Monitoring.GetState(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "climate_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Set room occupancy
// @Description  Re-evaluates all devices against the last recorded reading
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body   map[string]string  true  "Occupancy payload, e.g. {\"occupancy\":\"UNOCCUPIED\"}"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/climate/occupancy [put]
// @Security     BearerAuth
func (h *Handler) setOccupancy(c *gin.Context) {
	var req occupancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	st, err := h.services.Climate.SetOccupancy(ctx, req.Occupancy)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("climate_set_occupancy_failed", "err", err, "occupancy", req.Occupancy)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOccupancySet, "occupancy": req.Occupancy, "state": st})
}
