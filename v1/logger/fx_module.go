package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule integrates the logger into an Fx-based application: it
// provides the NewLoggerClient factory and registers a shutdown hook
// that flushes buffered entries.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "vectorstore"}
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("logger",
	fx.Provide(NewLoggerClient),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes the Zap logger on application stop so
// no buffered entries are lost during shutdown. Invoked by FXModule;
// applications do not call it directly.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync()
		},
	})
}
