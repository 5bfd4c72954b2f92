// Package cache implements the request mediation layer of the service: every
// location and nearby-search request flows through a Controller that consults
// the durable caches, enforces a minimum gap between upstream calls, and
// allows at most one search in flight at a time.
package cache

import "strconv"

// bucketDecimals is the fixed-point precision used when deriving result-cache
// keys. Three decimals of a degree is roughly a 110 m bucket, so two nearby
// readings of the same spot collapse to one upstream search.
const bucketDecimals = 3

// Key derives the result-cache key for a place type at a coordinate pair.
// Coordinates are rounded to three decimal places, so all points within the
// same 0.001-degree bucket produce the same key. The collision is intentional:
// it trades a little locality precision for far fewer upstream calls.
//
// The layout is "type:lat,lng", e.g. "cafe:40.000,-74.000".
func Key(placeType string, lat, lng float64) string {
	return placeType + ":" + round3(lat) + "," + round3(lng)
}

// round3 renders a coordinate with exactly three decimals using standard
// fixed-point rounding. No special-casing for negative zero or bucket
// boundaries.
func round3(v float64) string {
	return strconv.FormatFloat(v, 'f', bucketDecimals, 64)
}
