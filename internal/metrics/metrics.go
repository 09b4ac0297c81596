// Package metrics exposes prometheus collectors for the threat cache and the
// promhttp handler mounted by the local daemon.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ChecksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "threatcache_checks_total",
		Help: "Total number of check calls",
	})
	PositiveHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "threatcache_positive_hits_total",
		Help: "Total lookups answered by the positive hit cache",
	})
	NegativeHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "threatcache_negative_hits_total",
		Help: "Total lookups answered by the negative hit cache",
	})
	PrefixMatchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "threatcache_prefix_matches_total",
		Help: "Total lookups whose prefix matched a local database",
	})
	VerifyRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "threatcache_verify_requests_total",
		Help: "Total remote full-hash verification calls",
	})
	VerifyFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "threatcache_verify_failures_total",
		Help: "Total verification calls that exhausted all retries",
	})
	SyncTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "threatcache_sync_total",
		Help: "Sync episodes by category and outcome",
	}, []string{"category", "outcome"})
	ChecksumMismatchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "threatcache_checksum_mismatch_total",
		Help: "Diff applications discarded due to checksum mismatch",
	}, []string{"category"})
	DatabaseEntries = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "threatcache_database_entries",
		Help: "Current number of prefixes in each local database",
	}, []string{"category"})
	SyncDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "threatcache_sync_duration_ms",
		Help:    "Sync episode duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 5000},
	})
	VerifyDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "threatcache_verify_duration_ms",
		Help:    "Verification call duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
)

// Register registers every collector with the default prometheus registry.
// Call once at daemon startup; the collectors work unregistered as well, so
// library and client use need no setup.
func Register() {
	prometheus.MustRegister(
		ChecksTotal,
		PositiveHitsTotal,
		NegativeHitsTotal,
		PrefixMatchesTotal,
		VerifyRequestsTotal,
		VerifyFailuresTotal,
		SyncTotal,
		ChecksumMismatchTotal,
		DatabaseEntries,
		SyncDurationMs,
		VerifyDurationMs,
	)
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
