package postgres

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/harbourml/vectorstore/v1/logger"
)

// PostgresClient wraps a GORM connection to a PostgreSQL instance with
// the pgvector extension. Higher-level operations live in
// operations.go.
type PostgresClient struct {
	db  *gorm.DB
	cfg *Config
	log *logger.Logger
}

// NewPostgresClient opens the connection and verifies it with a ping.
func NewPostgresClient(p PostgresParams) (*PostgresClient, error) {
	cfg := p.Config

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to open connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to access connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("postgres: ping failed: %w", err)
	}

	p.Log.Info("postgres client connected", nil, map[string]interface{}{
		"host":     cfg.Host,
		"port":     cfg.Port,
		"database": cfg.Database,
	})

	return &PostgresClient{db: db, cfg: cfg, log: p.Log}, nil
}

// DB returns the underlying GORM handle for direct access.
func (c *PostgresClient) DB() *gorm.DB {
	return c.db
}

// Close shuts down the connection pool.
func (c *PostgresClient) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
