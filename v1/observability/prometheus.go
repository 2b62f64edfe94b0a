package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver exports operation metrics to a Prometheus
// registry: a counter per component/operation/status and a duration
// histogram per component/operation.
type PrometheusObserver struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

var _ Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver registers the observer's collectors with reg.
// Each service should pass its own registry to avoid metric name
// collisions between processes sharing a registry.
func NewPrometheusObserver(reg prometheus.Registerer, namespace string) *PrometheusObserver {
	o := &PrometheusObserver{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_operations_total",
			Help:      "Total number of storage operations by component, operation and status.",
		}, []string{"component", "operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "storage_operation_duration_seconds",
			Help:      "Duration of storage operations in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"component", "operation"}),
	}

	reg.MustRegister(o.operations, o.duration)
	return o
}

// ObserveOperation records one operation outcome.
func (o *PrometheusObserver) ObserveOperation(op OperationContext) {
	status := "ok"
	if op.Error != nil {
		status = "error"
	}
	o.operations.WithLabelValues(op.Component, op.Operation, status).Inc()
	o.duration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())
}
