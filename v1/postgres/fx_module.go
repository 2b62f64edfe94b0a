package postgres

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/harbourml/vectorstore/v1/logger"
	"github.com/harbourml/vectorstore/v1/store"
)

// FXModule integrates the pgvector adapter into an Fx-based
// application. It mirrors the Qdrant module so either backend can
// satisfy the store.Service dependency.
var FXModule = fx.Module("postgres",
	fx.Provide(
		NewPostgresClient,
		NewAdapter,
		func(a *Adapter) store.Service { return a },
	),
	fx.Invoke(RegisterPostgresLifecycle),
)

// PostgresParams defines dependencies needed to construct the client.
type PostgresParams struct {
	fx.In

	Config *Config
	Log    *logger.Logger
}

// RegisterPostgresLifecycle closes the connection pool exactly once on
// shutdown.
func RegisterPostgresLifecycle(lc fx.Lifecycle, client *PostgresClient) {
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
