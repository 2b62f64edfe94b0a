package qdrant

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/harbourml/vectorstore/v1/logger"
	"github.com/harbourml/vectorstore/v1/store"
)

// FXModule integrates the Qdrant adapter into an Fx-based application.
//
// The module:
//  1. Provides NewQdrantClient and NewAdapter to the dependency
//     injection container.
//  2. Exposes the adapter as store.Service so application code depends
//     only on the DB-agnostic interface.
//  3. Invokes RegisterQdrantLifecycle to close the client on shutdown.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    qdrant.FXModule,
//	    fx.Provide(func() *qdrant.Config { return qdrant.DefaultConfig() }),
//	    // other modules...
//	)
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewQdrantClient,
		NewAdapter,
		func(a *Adapter) store.Service { return a },
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// QdrantParams defines dependencies needed to construct the client.
type QdrantParams struct {
	fx.In

	Config *Config
	Log    *logger.Logger
}

// RegisterQdrantLifecycle closes the client exactly once on shutdown.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *QdrantClient) {
	var once sync.Once

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			once.Do(func() {
				_ = client.Close()
			})
			return nil
		},
	})
}
