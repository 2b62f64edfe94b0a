package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harbourml/vectorstore/v1/observability"
	"github.com/harbourml/vectorstore/v1/schema"
	"github.com/harbourml/vectorstore/v1/sqlpp"
	"github.com/harbourml/vectorstore/v1/store"
)

// Adapter implements store.Service on a PostgreSQL instance with the
// pgvector extension. Each collection is a table with one typed column
// per declared property plus an embedding column; predicate filters are
// rendered by the SQL backend in the Postgres dialect and embedded into
// the similarity query.
type Adapter struct {
	client   *PostgresClient
	observer observability.Observer
}

var _ store.Service = (*Adapter)(nil)

// NewAdapter wraps a connected client in the store.Service interface.
func NewAdapter(client *PostgresClient) *Adapter {
	return &Adapter{client: client}
}

// WithObserver attaches an operation observer (metrics); nil disables
// observation.
func (a *Adapter) WithObserver(o observability.Observer) *Adapter {
	a.observer = o
	return a
}

// Search executes the requests sequentially on the shared connection
// pool. Results come back in request order.
func (a *Adapter) Search(ctx context.Context, requests ...store.SearchRequest) ([][]store.SearchResult, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("postgres: at least one search request is required")
	}

	results := make([][]store.SearchResult, len(requests))
	for i, req := range requests {
		res, err := a.searchOne(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("request [%d]: %w", i, err)
		}
		results[i] = res
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

	if req.Model == nil {
		return nil, fmt.Errorf("search request requires a collection model")
	}
	if len(req.Vector) == 0 {
		return nil, fmt.Errorf("vector cannot be empty")
	}
	if req.TopK <= 0 {
		return nil, fmt.Errorf("topK must be greater than 0")
	}

	where := ""
	if req.Filter != nil {
		where, err = sqlpp.TranslateDialect(req.Model, req.Filter, sqlpp.Postgres)
		if err != nil {
			return nil, err
		}
	}

	query := buildSearchSQL(req.Model, where, req.Vector, req.TopK)
	rows, err := a.client.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, fmt.Errorf("postgres: search failed: %w", err)
	}
	defer rows.Close()

	props := req.Model.Properties()
	results := make([]store.SearchResult, 0, req.TopK)
	for rows.Next() {
		var (
			id    string
			score float64
		)
		raw := make([]any, len(props))
		dest := make([]any, 0, 2+len(props))
		dest = append(dest, &id, &score)
		for i := range raw {
			dest = append(dest, &raw[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan result row: %w", err)
		}

		fields := make(map[string]any, len(props))
		for i, p := range props {
			v, err := decodeColumn(p, raw[i])
			if err != nil {
				return nil, err
			}
			fields[p.StorageName] = v
		}
		results = append(results, store.SearchResult{
			ID:         id,
			Score:      float32(score),
			Fields:     fields,
			Collection: collection,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: search failed: %w", err)
	}
	return results, nil
}

// Upsert writes records with INSERT ... ON CONFLICT DO UPDATE, one
// statement per record inside a transaction.
func (a *Adapter) Upsert(ctx context.Context, model *schema.CollectionModel, records []store.Record) (err error) {
	started := time.Now()
	defer func() {
		a.observe("upsert", model.Name(), time.Since(started), err, int64(len(records)), nil)
	}()

	if len(records) == 0 {
		return nil
	}

	stmt := upsertSQL(model)
	props := model.Properties()

	tx := a.client.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", tx.Error)
	}
	for _, r := range records {
		args := make([]any, 0, 2+len(props))
		args = append(args, r.ID, formatVector(r.Vector))
		for _, p := range props {
			v, err := encodeColumn(p, r.Fields[p.StorageName])
			if err != nil {
				tx.Rollback()
				return err
			}
			args = append(args, v)
		}
		if err := tx.Exec(stmt, args...).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("postgres: upsert failed: %w", err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("postgres: failed to commit upsert: %w", err)
	}
	return nil
}

// Delete removes records by ID.
func (a *Adapter) Delete(ctx context.Context, collection string, ids []string) (err error) {
	started := time.Now()
	defer func() {
		a.observe("delete", collection, time.Since(started), err, int64(len(ids)), nil)
	}()

	if len(ids) == 0 {
		return nil
	}

	stmt := fmt.Sprintf(`DELETE FROM %s WHERE "id" IN ?`, quoteIdent(collection))
	if err := a.client.db.WithContext(ctx).Exec(stmt, ids).Error; err != nil {
		return fmt.Errorf("postgres: delete failed: %w", err)
	}
	return nil
}

// Get fetches a single record by ID; nil when the row does not exist.
// The collection name must refer to a table created by this adapter,
// since Get reads all non-embedding columns.
func (a *Adapter) Get(ctx context.Context, collection string, id string) (rec *store.Record, err error) {
	started := time.Now()
	defer func() {
		a.observe("get", collection, time.Since(started), err, -1, nil)
	}()

	stmt := fmt.Sprintf(`SELECT to_jsonb(t) - 'embedding' FROM %s AS t WHERE "id" = ?`, quoteIdent(collection))
	rows, err := a.client.db.WithContext(ctx).Raw(stmt, id).Rows()
	if err != nil {
		return nil, fmt.Errorf("postgres: get failed: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return nil, fmt.Errorf("postgres: failed to scan record: %w", err)
	}

	fields := map[string]any{}
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("postgres: failed to decode record: %w", err)
	}
	delete(fields, "id")

	return &store.Record{ID: id, Fields: fields}, nil
}

// EnsureCollection creates the pgvector extension, the model's table
// and a cosine-distance index. Safe to call repeatedly.
func (a *Adapter) EnsureCollection(ctx context.Context, model *schema.CollectionModel, vectorSize uint64) (err error) {
	started := time.Now()
	defer func() {
		a.observe("ensure_collection", model.Name(), time.Since(started), err, -1, nil)
	}()

	db := a.client.db.WithContext(ctx)
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("postgres: failed to enable pgvector extension: %w", err)
	}

	a.client.log.Info("ensuring collection table", nil, map[string]interface{}{
		"collection":  model.Name(),
		"vector_size": vectorSize,
	})
	if err := db.Exec(createTableSQL(model, vectorSize)).Error; err != nil {
		return fmt.Errorf("postgres: failed to create table %q: %w", model.Name(), err)
	}

	index := fmt.Sprintf(
		`CREATE INDEX IF NOT EXISTS %s ON %s USING ivfflat ("embedding" vector_cosine_ops)`,
		quoteIdent(model.Name()+"_embedding_idx"), quoteIdent(model.Name()))
	if err := db.Exec(index).Error; err != nil {
		return fmt.Errorf("postgres: failed to create vector index for %q: %w", model.Name(), err)
	}
	return nil
}

// GetCollection reports table metadata. The vector size is read from
// the embedding column's declared type.
func (a *Adapter) GetCollection(ctx context.Context, name string) (*store.Collection, error) {
	db := a.client.db.WithContext(ctx)

	var count int64
	countStmt := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdent(name))
	if err := db.Raw(countStmt).Scan(&count).Error; err != nil {
		return nil, fmt.Errorf("postgres: failed to inspect collection %q: %w", name, err)
	}

	var size int
	err := db.Raw(
		`SELECT COALESCE(atttypmod, 0) FROM pg_attribute
		 WHERE attrelid = ?::regclass AND attname = 'embedding'`,
		quoteIdent(name)).Scan(&size).Error
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to inspect collection %q: %w", name, err)
	}

	return &store.Collection{
		Name:       name,
		Status:     "ready",
		VectorSize: size,
		Distance:   "Cosine",
		Points:     uint64(count),
	}, nil
}

// ListCollections returns the names of all tables in the public schema.
func (a *Adapter) ListCollections(ctx context.Context) ([]string, error) {
	var names []string
	err := a.client.db.WithContext(ctx).
		Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").
		Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list collections: %w", err)
	}
	return names, nil
}

func (a *Adapter) observe(operation, resource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if a == nil || a.observer == nil {
		return
	}
	a.observer.ObserveOperation(observability.OperationContext{
		Component: "postgres",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  metadata,
	})
}

// encodeColumn converts a record field to its driver representation.
// Collection-typed properties are stored as jsonb.
func encodeColumn(p schema.Property, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if p.Type.IsCollection() {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to encode field %q: %w", p.StorageName, err)
		}
		return string(data), nil
	}
	return v, nil
}

// decodeColumn converts a scanned value back to its field
// representation: jsonb payloads are unmarshalled, byte slices become
// strings.
func decodeColumn(p schema.Property, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if p.Type.IsCollection() {
		var data []byte
		switch raw := v.(type) {
		case []byte:
			data = raw
		case string:
			data = []byte(raw)
		default:
			return nil, fmt.Errorf("postgres: unexpected jsonb representation for field %q", p.StorageName)
		}
		var decoded any
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("postgres: failed to decode field %q: %w", p.StorageName, err)
		}
		return decoded, nil
	}
	if raw, ok := v.([]byte); ok {
		return string(raw), nil
	}
	return v, nil
}
