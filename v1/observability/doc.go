// Package observability defines the observer hook storage adapters
// report their operations through, plus a Prometheus-backed
// implementation. Adapters treat a nil observer as disabled, so
// observation is always optional.
package observability
