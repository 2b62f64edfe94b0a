// Package logger provides the structured logging surface shared by the
// storage adapters, backed by Uber's Zap.
//
// Create a logger directly:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "vectorstore",
//	})
//	log.Info("adapter ready", nil, map[string]interface{}{"backend": "qdrant"})
//
// or through the FX module, which also flushes buffered entries on
// shutdown:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "vectorstore"}
//	    }),
//	)
package logger
