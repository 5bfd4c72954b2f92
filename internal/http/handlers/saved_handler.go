// Saved-place HTTP handlers.
//
// This file exposes REST endpoints for the per-category saved-place registry:
//   - GET    /saved/{category}            (list, insertion order)
//   - POST   /saved/{category}            (save, duplicate-safe)
//   - DELETE /saved/{category}/{placeID}  (remove, absent id is a no-op)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shambhvi2006/cafe-curator/internal/domain"
	"github.com/shambhvi2006/cafe-curator/internal/services"
)

//
// DTOs
//

// SavePlaceRequest is the JSON payload for saving a place to a category.
type SavePlaceRequest struct {
	// PlaceID is the upstream place identifier.
	PlaceID string `json:"place_id" binding:"required" example:"ChIJN1t_tDeuEmsRUsoyG83frY4"`
	// Name is the display name shown in the saved list.
	Name string `json:"name" binding:"required" example:"Ritual Coffee"`
	// PhotoURL optionally stores the proxied photo URL.
	PhotoURL string `json:"photo_url" example:"/api/photo?ref=abc&max=400"`
	// Rating optionally stores the rating at save time.
	Rating *float64 `json:"rating" example:"4.6"`
}

// SavePlaceResponse reports whether the save created a new entry.
type SavePlaceResponse struct {
	Saved bool `json:"saved"`
	// AlreadySaved is true when the place was present before this request.
	AlreadySaved bool `json:"already_saved"`
}

// SavedListResponse wraps a category's saved places.
type SavedListResponse struct {
	Category string              `json:"category" example:"cafe"`
	Label    string              `json:"label" example:"Cafe"`
	Places   []domain.SavedPlace `json:"places"`
}

//
// Handlers
//

// ListSaved godoc
// @ID          listSaved
// @Summary     List saved places in a category
// @Description Returns the category's saved places in the order they were saved.
// @Tags        Saved
// @Produce     json
//
// @Param       category  path  string  true  "Place category"  example(cafe)
//
// @Success     200  {object}  handlers.SavedListResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid category"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /saved/{category} [get]
func (h *Handlers) ListSaved(c *gin.Context) {
	category := c.Param("category")
	items, err := h.savedSvc.List(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid category")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list saved places")
		return
	}
	if items == nil {
		items = []domain.SavedPlace{}
	}
	// Echo the normalized slug so clients see what was stored.
	cat := category
	if len(items) > 0 {
		cat = items[0].Category
	}
	ok(c, http.StatusOK, SavedListResponse{
		Category: cat,
		Label:    services.CategoryLabel(cat),
		Places:   items,
	})
}

// SavePlace godoc
// @ID          savePlace
// @Summary     Save a place to a category
// @Description Appends the place to the category list. Saving an already saved place succeeds and reports already_saved.
// @Tags        Saved
// @Accept      json
// @Produce     json
//
// @Param       category  path  string                       true  "Place category"  example(cafe)
// @Param       body      body  handlers.SavePlaceRequest  true  "Place to save"
//
// @Success     200  {object}  handlers.SavePlaceResponse  "Already saved"
// @Success     201  {object}  handlers.SavePlaceResponse  "Newly saved"
// @Failure     400  {object}  handlers.ErrorResponse      "Invalid payload or category"
// @Failure     500  {object}  handlers.ErrorResponse      "Internal error"
// @Router      /saved/{category} [post]
func (h *Handlers) SavePlace(c *gin.Context) {
	var req SavePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "place_id and name required")
		return
	}

	created, err := h.savedSvc.Save(c.Request.Context(), c.Param("category"), services.SaveInput{
		PlaceID:  req.PlaceID,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Rating:   req.Rating,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCategory):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid category")
		case errors.Is(err, services.ErrInvalidPlace):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "place_id and name required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "could not save place")
		}
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	ok(c, status, SavePlaceResponse{Saved: true, AlreadySaved: !created})
}

// RemoveSaved godoc
// @ID          removeSaved
// @Summary     Remove a saved place
// @Description Deletes the place from the category. Removing an id that is not saved is a no-op.
// @Tags        Saved
// @Produce     json
//
// @Param       category  path  string  true  "Place category"        example(cafe)
// @Param       placeID   path  string  true  "Upstream place id"     example(ChIJN1t_tDeuEmsRUsoyG83frY4)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid category"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /saved/{category}/{placeID} [delete]
func (h *Handlers) RemoveSaved(c *gin.Context) {
	err := h.savedSvc.Remove(c.Request.Context(), c.Param("category"), c.Param("placeID"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid category")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not remove place")
		return
	}
	noContent(c)
}
