// Package places implements the client for the upstream Places provider. The
// server exists largely to stand between browsers and this API: the
// credential never leaves the process, and the wire shapes below never leak
// past this package (handlers and caches deal in domain.Place).
package places

import "strings"

// nearbyResponse is the upstream JSON envelope for a nearby search.
type nearbyResponse struct {
	Results      []placeResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
}

// placeResult is a single upstream place record. Only the fields the service
// keeps are declared; the rest of the payload is ignored.
type placeResult struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Rating   *float64 `json:"rating,omitempty"`
	Vicinity string   `json:"vicinity,omitempty"`
	Photos   []photo  `json:"photos,omitempty"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
	Height         int    `json:"height"`
	Width          int    `json:"width"`
}

// Upstream status values with dedicated handling. Everything else is surfaced
// as an UpstreamError.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// typeAliases maps common user-facing spellings to upstream place types.
var typeAliases = map[string]string{
	"coffee":      "cafe",
	"coffee shop": "cafe",
	"coffee_shop": "cafe",
	"food":        "restaurant",
	"pub":         "bar",
	"gym":         "gym",
	"bookstore":   "book_store",
	"book shop":   "book_store",
}

// NormalizeType canonicalizes a place category string: trims, lowercases,
// resolves known aliases, and converts interior spaces to underscores (the
// upstream type vocabulary uses snake_case). An empty input stays empty so
// callers can apply their own default.
func NormalizeType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if alias, ok := typeAliases[s]; ok {
		return alias
	}
	return strings.ReplaceAll(s, " ", "_")
}
