package handlers

import (
	"net/http"

	"smart_climate"

	"github.com/gin-gonic/gin"
)

const (
	statusPrefsUpdated       = "preferences_updated"
	statusRecommendedApplied = "recommended_applied"

	errGetPrefs = "failed to load preferences"
)

// Request DTO for updating preferences.
type preferencesRequest struct {
	TempMinC     float64 `json:"temp_min_c"`
	TempMaxC     float64 `json:"temp_max_c"`
	ACThresholdC float64 `json:"ac_threshold_c"`
	AQIThreshold int     `json:"aqi_threshold"`
}

// PreferencesRequest is an exported model for Swagger docs of the update payload.
type PreferencesRequest struct {
	// Lower bound of the preferred temperature range (°C)
	TempMinC float64 `json:"temp_min_c" example:"20"`
	// Upper bound of the preferred temperature range (°C); must be >= temp_min_c
	TempMaxC float64 `json:"temp_max_c" example:"26"`
	// Outdoor temperature above which the AC runs (°C)
	ACThresholdC float64 `json:"ac_threshold_c" example:"27"`
	// AQI above which the purifier runs
	AQIThreshold int `json:"aqi_threshold" example:"100"`
}

// @Summary      Get preferences
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/preferences [get]
// @Security     BearerAuth
func (h *Handler) getPreferences(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.services.Preferences.Get(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetPrefs, "prefs_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Update preferences
// @Description  temp_min_c must be <= temp_max_c; aqi_threshold must be non-negative
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body   PreferencesRequest  true  "Preferences payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/preferences [put]
// @Security     BearerAuth
func (h *Handler) updatePreferences(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	prefs := smart_climate.UserPreferences{
		TempMinC:     req.TempMinC,
		TempMaxC:     req.TempMaxC,
		ACThresholdC: req.ACThresholdC,
		AQIThreshold: req.AQIThreshold,
	}
	if err := h.services.Preferences.Update(ctx, prefs); err != nil {
		// Treat as bad request: service-side failures here are validation ones.
		if h.log != nil {
			h.log.Errorw("prefs_update_failed", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusPrefsUpdated, "preferences": prefs})
}

// @Summary      Recommend preferences
// @Description  Suggests settings derived from the last recorded reading; nothing is stored
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/preferences/recommend [get]
// @Security     BearerAuth
func (h *Handler) recommendPreferences(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.services.Preferences.Recommend(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("prefs_recommend_failed", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommended": p})
}

// @Summary      Apply recommended preferences
// @Description  Persists the recommendation derived from the last recorded reading
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/preferences/recommend/apply [post]
// @Security     BearerAuth
func (h *Handler) applyRecommended(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.services.Preferences.ApplyRecommended(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("prefs_apply_recommended_failed", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusRecommendedApplied, "preferences": p})
}
