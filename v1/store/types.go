package store

import (
	"context"

	"github.com/harbourml/vectorstore/v1/filter"
	"github.com/harbourml/vectorstore/v1/schema"
)

// Record is one stored entry: an ID, its embedding, and the data
// properties keyed by storage name. Mapping between application structs
// and Fields is the caller's concern.
type Record struct {
	ID     string         `json:"id"`
	Vector []float32      `json:"vector"`
	Fields map[string]any `json:"fields,omitempty"`
}

// SearchRequest is a single similarity query. Filter is optional; when
// set it is translated against Model by the adapter's backend and
// embedded next to the vector clause.
type SearchRequest struct {
	Model  *schema.CollectionModel `json:"-"`
	Vector []float32               `json:"vector"`
	TopK   int                     `json:"maxResults"`
	Filter filter.Expr             `json:"-"`
}

// SearchResult is a single scored match.
type SearchResult struct {
	ID         string         `json:"id"`
	Score      float32        `json:"score"`
	Fields     map[string]any `json:"fields,omitempty"`
	Collection string         `json:"collection,omitempty"`
}

// Collection is adapter-agnostic collection metadata.
type Collection struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	VectorSize int    `json:"vectorSize"`
	Distance   string `json:"distance"`
	Points     uint64 `json:"points"`
}

// Service is the common interface all storage adapters implement.
// Adapters translate SearchRequest.Filter with their own backend and
// execute the resulting artifact verbatim; translation errors surface
// unchanged to the caller.
type Service interface {
	// Search performs similarity search across one or more requests.
	// Returns one result slice per request, in request order.
	Search(ctx context.Context, requests ...SearchRequest) ([][]SearchResult, error)

	// Upsert inserts or replaces records in the model's collection.
	Upsert(ctx context.Context, model *schema.CollectionModel, records []Record) error

	// Delete removes records by ID.
	Delete(ctx context.Context, collection string, ids []string) error

	// Get fetches a single record by ID; nil when absent.
	Get(ctx context.Context, collection string, id string) (*Record, error)

	// EnsureCollection creates the model's collection if missing.
	// Safe to call repeatedly.
	EnsureCollection(ctx context.Context, model *schema.CollectionModel, vectorSize uint64) error

	// GetCollection retrieves collection metadata.
	GetCollection(ctx context.Context, name string) (*Collection, error)

	// ListCollections returns the names of all collections.
	ListCollections(ctx context.Context) ([]string, error)
}
