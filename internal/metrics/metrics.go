package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for NormalizeOutcomes.
const (
	OutcomeOK                 = "ok"
	OutcomeEmpty              = "empty"
	OutcomeInvalidIngredients = "invalid_ingredients"
	OutcomeInvalidFormat      = "invalid_format"
)

var (
	// RequestsTotal counts HTTP requests by method, route, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipes_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "route", "status"})

	// CompletionDuration tracks completion service latency per model.
	CompletionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recipes_completion_duration_seconds",
		Help:    "Time spent waiting for the completion service.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"model"})

	// CompletionErrors counts failed completion calls per model.
	CompletionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipes_completion_errors_total",
		Help: "Completion calls that returned an error.",
	}, []string{"model"})

	// NormalizeOutcomes counts how model replies were classified.
	NormalizeOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipes_normalize_outcomes_total",
		Help: "Model replies by normalization outcome.",
	}, []string{"outcome"})

	// CacheLookups counts response cache lookups by result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipes_cache_lookups_total",
		Help: "Response cache lookups by result.",
	}, []string{"result"})
)
