package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Repository operation metrics. Labels: entity (product, order, user),
// operation (create, find_by_id, ...), status (ok, not_found, invalid,
// error).
var (
	RepositoryOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neonshop_repository_operations_total",
			Help: "Total repository operations by entity, operation and status.",
		},
		[]string{"entity", "operation", "status"},
	)

	RepositoryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "neonshop_repository_operation_duration_seconds",
			Help:    "Repository operation latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"entity", "operation"},
	)

	StoreWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neonshop_store_writes_total",
			Help: "Whole-collection store writes by collection and status.",
		},
		[]string{"collection", "status"},
	)
)

// Status label values.
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
	StatusInvalid  = "invalid"
	StatusError    = "error"
)
