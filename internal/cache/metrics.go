package cache

import "github.com/prometheus/client_golang/prometheus"

var (
	// cacheLookups counts cache lookups by kind ("location" or "results")
	// and outcome ("hit", "miss", "stale").
	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "place_cache_lookups_total",
			Help: "Cache lookups by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	// gateDrops counts requests dropped by the rate gate, by reason
	// ("in_flight" or "gap").
	gateDrops = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "place_gate_dropped_total",
			Help: "Requests dropped by the request gate.",
		},
		[]string{"reason"},
	)

	// watchdogFires counts forced gate releases after a hung upstream call.
	watchdogFires = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "place_gate_watchdog_fires_total",
			Help: "Times the watchdog force-cleared the in-flight flag.",
		},
	)

	// upstreamSearches counts upstream nearby searches by result
	// ("ok" or "error").
	upstreamSearches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "place_upstream_searches_total",
			Help: "Upstream nearby search calls by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(cacheLookups, gateDrops, watchdogFires, upstreamSearches)
}
