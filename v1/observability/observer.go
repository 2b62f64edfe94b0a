package observability

import (
	"time"
)

// OperationContext describes one storage operation for observation.
type OperationContext struct {
	// Component is the adapter name, e.g. "qdrant" or "postgres".
	Component string

	// Operation is the logical operation, e.g. "search" or "upsert".
	Operation string

	// Resource is the collection the operation targeted.
	Resource string

	// Duration is the wall time the operation took.
	Duration time.Duration

	// Error is the operation outcome; nil on success.
	Error error

	// Size is an operation-specific magnitude (records written,
	// results returned). Negative when not applicable.
	Size int64

	// Metadata carries additional context, e.g. whether a filter was
	// translated for the request.
	Metadata map[string]interface{}
}

// Observer receives operation notifications from storage adapters.
// Adapters treat a nil observer as "observation disabled", so wiring
// one up is always optional.
type Observer interface {
	ObserveOperation(op OperationContext)
}
