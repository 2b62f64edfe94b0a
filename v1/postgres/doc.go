// Package postgres implements the store.Service interface on
// PostgreSQL with the pgvector extension.
//
// Each collection is a table built from its schema.CollectionModel: one
// typed column per declared property (keyed by storage name) plus an id
// primary key and a pgvector embedding column. Predicate filters are
// rendered by the SQL backend in the Postgres dialect and embedded
// verbatim into the similarity SELECT, so the same column names the
// fragments reference are the ones the table declares.
//
//	svc.EnsureCollection(ctx, model, 1536)       // extension + table + ivfflat index
//	svc.Upsert(ctx, model, records)              // INSERT ... ON CONFLICT DO UPDATE
//	svc.Search(ctx, store.SearchRequest{         // cosine distance ordering
//	    Model:  model,
//	    Vector: queryVector,
//	    TopK:   10,
//	    Filter: filter.Ge(filter.Prop("Views"), filter.Const(int64(100))),
//	})
//
// The FX module mirrors the qdrant package, so either backend can
// satisfy the store.Service dependency without application changes.
package postgres
