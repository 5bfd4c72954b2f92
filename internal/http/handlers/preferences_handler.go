// Preference HTTP handlers.
//
//   - GET /preferences  returns the stored UI selections (defaults when unset)
//   - PUT /preferences  overlays the non-empty fields of the payload and
//     returns the merged result
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shambhvi2006/cafe-curator/internal/services"
)

// UpdatePreferencesRequest is the JSON payload for updating preferences.
// Empty fields keep their stored values.
type UpdatePreferencesRequest struct {
	PlaceType string `json:"place_type" example:"cafe"`
	ViewMode  string `json:"view_mode" example:"swipe" enums:"swipe,grid"`
	Theme     string `json:"theme" example:"system" enums:"light,dark,system"`
}

// GetPreferences godoc
// @ID          getPreferences
// @Summary     Get UI preferences
// @Description Returns the stored place type, view mode, and theme, or the defaults when nothing was stored yet.
// @Tags        Preferences
// @Produce     json
//
// @Success     200  {object}  services.Preferences
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /preferences [get]
func (h *Handlers) GetPreferences(c *gin.Context) {
	prefs, err := h.prefSvc.Get(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load preferences")
		return
	}
	ok(c, http.StatusOK, prefs)
}

// UpdatePreferences godoc
// @ID          updatePreferences
// @Summary     Update UI preferences
// @Description Applies the non-empty fields of the payload on top of the stored preferences and returns the merged result.
// @Tags        Preferences
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.UpdatePreferencesRequest  true  "Fields to change"
//
// @Success     200  {object}  services.Preferences
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown preference value"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /preferences [put]
func (h *Handlers) UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	prefs, err := h.prefSvc.Update(c.Request.Context(), services.Preferences{
		PlaceType: req.PlaceType,
		ViewMode:  req.ViewMode,
		Theme:     req.Theme,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidPreference) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown preference value")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not store preferences")
		return
	}
	ok(c, http.StatusOK, prefs)
}
