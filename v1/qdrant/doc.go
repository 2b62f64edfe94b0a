// Package qdrant implements the store.Service interface on top of a
// Qdrant instance.
//
// Predicate filters attached to search requests are compiled by the
// search backend and converted to Qdrant's native filter structure, so
// filtering happens inside the engine, never client-side.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - QdrantClient struct: connection wrapper around the official SDK
//   - Adapter struct: implements store.Service on the client
//   - FX module: provides both concrete types and the store.Service interface
//
// Core Features:
//   - Collection management driven by schema.CollectionModel
//   - Batched similarity search with bounded concurrency
//   - Engine-side predicate filtering via the search backend
//   - Blocking writes (Wait=true) so data is persisted before returning
//   - Optional operation observability through the observability package
//   - Integration with the logger package for structured logging
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "my-service"})
//	client, err := qdrant.NewQdrantClient(qdrant.QdrantParams{
//	    Config: qdrant.FromEndpoint("localhost", 6334),
//	    Log:    log,
//	})
//	if err != nil {
//	    return err
//	}
//	svc := qdrant.NewAdapter(client)
//
//	results, err := svc.Search(ctx, store.SearchRequest{
//	    Model:  model,
//	    Vector: queryVector,
//	    TopK:   10,
//	    Filter: filter.Eq(filter.Prop("Category"), filter.Const("reports")),
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    qdrant.FXModule,
//	    fx.Provide(
//	        func() *qdrant.Config { return qdrant.DefaultConfig() },
//	        func() logger.Config { return logger.Config{Level: logger.Info, ServiceName: "svc"} },
//	    ),
//	    fx.Invoke(func(svc store.Service) {
//	        // svc is backed by the Qdrant adapter
//	    }),
//	)
//
// # Observability (Observer Hook)
//
// Attach an observer to track operations without coupling the package
// to a metrics implementation:
//
//	adapter := qdrant.NewAdapter(client).WithObserver(myObserver)
//
// The observer receives events with Component "qdrant", the operation
// name ("search", "upsert", "delete", "get", "ensure_collection"), the
// collection as Resource, duration, outcome error, and a size where
// applicable.
package qdrant
