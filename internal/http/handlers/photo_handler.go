// Photo proxy handler.
//
// GET /photo streams a place photo from the Places API through the server so
// the API key never reaches the browser. Success responses are raw image
// bytes; failures are plain text because the consumer is an <img> tag.
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shambhvi2006/cafe-curator/internal/http/middleware"
	"github.com/shambhvi2006/cafe-curator/internal/places"
	"github.com/shambhvi2006/cafe-curator/internal/utils"
)

const (
	defaultPhotoWidth = 400
	maxPhotoWidth     = 1600
)

// Photo godoc
// @ID          placePhoto
// @Summary     Fetch a place photo
// @Description Streams the photo identified by a photo reference. The upstream credential stays server-side.
// @Tags        Discovery
// @Produce     image/jpeg
//
// @Param       ref  query  string  true   "Photo reference from a nearby search result"
// @Param       max  query  int     false  "Maximum width in pixels"  default(400) maximum(1600)
//
// @Success     200  {file}    file    "Image bytes"
// @Failure     400  {string}  string  "Missing photo reference"
// @Failure     500  {string}  string  "Missing credential or internal error"
// @Failure     502  {string}  string  "Places API failure"
// @Router      /photo [get]
func (h *Handlers) Photo(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("ref"))
	if ref == "" {
		failText(c, http.StatusBadRequest, "photo reference required")
		return
	}

	maxWidth := utils.AtoiDefault(c.Query("max"), defaultPhotoWidth)
	if maxWidth < 1 {
		maxWidth = defaultPhotoWidth
	}
	if maxWidth > maxPhotoWidth {
		maxWidth = maxPhotoWidth
	}

	body, contentType, err := h.photoSvc.Photo(c.Request.Context(), ref, maxWidth)
	if err != nil {
		var upstream *places.UpstreamError
		switch {
		case errors.Is(err, places.ErrNoCredential):
			failText(c, http.StatusInternalServerError, "Places API key not configured")
		case errors.As(err, &upstream):
			failText(c, http.StatusBadGateway, upstream.Error())
		default:
			failText(c, http.StatusInternalServerError, "photo fetch failed")
		}
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "image/jpeg"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		// Headers are already out; all we can do is log the broken stream.
		middleware.LoggerFrom(c).Warn().Err(err).Msg("photo stream interrupted")
	}
}
