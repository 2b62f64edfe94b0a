package qdrant

import (
	"context"
	"fmt"
	"slices"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"golang.org/x/sync/errgroup"

	"github.com/harbourml/vectorstore/v1/observability"
	"github.com/harbourml/vectorstore/v1/schema"
	"github.com/harbourml/vectorstore/v1/search"
	"github.com/harbourml/vectorstore/v1/store"
)

// Adapter implements store.Service on top of a Qdrant instance.
// Predicate filters are compiled by the search backend and converted to
// Qdrant's native filter; the artifact is embedded verbatim in the
// query request.
type Adapter struct {
	client   *QdrantClient
	observer observability.Observer
}

var _ store.Service = (*Adapter)(nil)

// NewAdapter wraps a connected client in the store.Service interface.
func NewAdapter(client *QdrantClient) *Adapter {
	return &Adapter{client: client}
}

// WithObserver attaches an operation observer (metrics); nil disables
// observation.
func (a *Adapter) WithObserver(o observability.Observer) *Adapter {
	a.observer = o
	return a
}

// Search executes the requests concurrently, bounded by the client's
// MaxConcurrentSearches. Results come back in request order.
func (a *Adapter) Search(ctx context.Context, requests ...store.SearchRequest) ([][]store.SearchResult, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("qdrant: at least one search request is required")
	}

	results := make([][]store.SearchResult, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	limit := a.client.cfg.MaxConcurrentSearches
	if limit <= 0 {
		limit = 10
	}
	g.SetLimit(limit)

	for i, req := range requests {
		g.Go(func() error {
			res, err := a.searchOne(gctx, req)
			if err != nil {
				return fmt.Errorf("request [%d]: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *Adapter) searchOne(ctx context.Context, req store.SearchRequest) (res []store.SearchResult, err error) {
	collection := ""
	if req.Model != nil {
		collection = req.Model.Name()
	}

	started := time.Now()
	defer func() {
		a.observe("search", collection, time.Since(started), err, int64(len(res)), map[string]interface{}{
			"filtered": req.Filter != nil,
		})
	}()

	if err := validateSearchInput(req); err != nil {
		return nil, err
	}

	var qf *qdrant.Filter
	if req.Filter != nil {
		artifact, err := search.Translate(req.Model, req.Filter)
		if err != nil {
			return nil, err
		}
		if qf, err = ToFilter(artifact); err != nil {
			return nil, err
		}
	}

	topK := uint64(req.TopK)
	resp, err := a.client.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          &topK,
		WithPayload:    qdrant.NewWithPayload(true),
		Filter:         qf,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: search failed: %w", err)
	}

	results := make([]store.SearchResult, 0, len(resp))
	for _, point := range resp {
		id, err := extractPointID(point.Id)
		if err != nil {
			return nil, err
		}
		results = append(results, store.SearchResult{
			ID:         id,
			Score:      point.Score,
			Fields:     convertPayload(point.Payload),
			Collection: collection,
		})
	}
	return results, nil
}

// Upsert writes records in a single blocking request (Wait=true) so
// data is persisted before returning.
func (a *Adapter) Upsert(ctx context.Context, model *schema.CollectionModel, records []store.Record) (err error) {
	started := time.Now()
	defer func() {
		a.observe("upsert", model.Name(), time.Since(started), err, int64(len(records)), nil)
	}()

	if len(records) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(records))
	for _, r := range records {
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(r.ID),
			Vectors: qdrant.NewVectors(r.Vector...),
			Payload: qdrant.NewValueMap(r.Fields),
		})
	}

	wait := true
	if _, err := a.client.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: model.Name(),
		Points:         points,
		Wait:           &wait,
	}); err != nil {
		return fmt.Errorf("qdrant: upsert failed: %w", err)
	}
	return nil
}

// Delete removes records by ID and waits for completion.
func (a *Adapter) Delete(ctx context.Context, collection string, ids []string) (err error) {
	started := time.Now()
	defer func() {
		a.observe("delete", collection, time.Since(started), err, int64(len(ids)), nil)
	}()

	if len(ids) == 0 {
		return nil
	}

	pointIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		pointIDs = append(pointIDs, qdrant.NewID(id))
	}

	wait := true
	if _, err := a.client.api.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Points{
				Points: &qdrant.PointsIdsList{Ids: pointIDs},
			},
		},
		Wait: &wait,
	}); err != nil {
		return fmt.Errorf("qdrant: delete failed: %w", err)
	}
	return nil
}

// Get fetches a single record by ID; nil when the point does not exist.
func (a *Adapter) Get(ctx context.Context, collection string, id string) (rec *store.Record, err error) {
	started := time.Now()
	defer func() {
		a.observe("get", collection, time.Since(started), err, -1, nil)
	}()

	points, err := a.client.api.Get(ctx, &qdrant.GetPoints{
		CollectionName: collection,
		Ids:            []*qdrant.PointId{qdrant.NewID(id)},
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: get failed: %w", err)
	}
	if len(points) == 0 {
		return nil, nil
	}

	pointID, err := extractPointID(points[0].Id)
	if err != nil {
		return nil, err
	}
	return &store.Record{
		ID:     pointID,
		Fields: convertPayload(points[0].Payload),
	}, nil
}

// EnsureCollection creates the model's collection if missing. Safe to
// call repeatedly; exits early when the collection exists.
func (a *Adapter) EnsureCollection(ctx context.Context, model *schema.CollectionModel, vectorSize uint64) (err error) {
	started := time.Now()
	defer func() {
		a.observe("ensure_collection", model.Name(), time.Since(started), err, -1, nil)
	}()

	names, err := a.client.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("qdrant: failed to list collections: %w", err)
	}
	if slices.Contains(names, model.Name()) {
		return nil
	}

	a.client.log.Info("creating collection", nil, map[string]interface{}{
		"collection":  model.Name(),
		"vector_size": vectorSize,
	})
	if err := a.client.api.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: model.Name(),
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	}); err != nil {
		return fmt.Errorf("qdrant: failed to create collection %q: %w", model.Name(), err)
	}
	return nil
}

// GetCollection retrieves collection metadata, decoupled from the SDK's
// nested protobuf shapes.
func (a *Adapter) GetCollection(ctx context.Context, name string) (*store.Collection, error) {
	info, err := a.client.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to get collection %q: %w", name, err)
	}

	size, distance := extractVectorDetails(info)
	return &store.Collection{
		Name:       name,
		Status:     info.Status.String(),
		VectorSize: size,
		Distance:   distance,
		Points:     derefUint64(info.PointsCount),
	}, nil
}

// ListCollections returns the names of all collections.
func (a *Adapter) ListCollections(ctx context.Context) ([]string, error) {
	names, err := a.client.api.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to list collections: %w", err)
	}
	return names, nil
}

func (a *Adapter) observe(operation, resource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if a == nil || a.observer == nil {
		return
	}
	a.observer.ObserveOperation(observability.OperationContext{
		Component: "qdrant",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  metadata,
	})
}
