package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/harbourml/vectorstore/v1/logger"
)

// QdrantClient is a thin wrapper around the official Qdrant Go client.
// It validates connectivity at construction and exposes the SDK client
// to the adapter; all higher-level operations live in operations.go.
type QdrantClient struct {
	api *qdrant.Client
	cfg *Config
	log *logger.Logger
}

// NewQdrantClient constructs the client and verifies connectivity with
// an immediate health check, failing fast when the service is
// unreachable.
func NewQdrantClient(p QdrantParams) (*QdrantClient, error) {
	cfg := p.Config
	port := cfg.Port
	if port == 0 {
		port = 6334
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   port,
		APIKey:                 cfg.ApiKey,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to initialize client: %w", err)
	}

	qc := &QdrantClient{
		api: api,
		cfg: cfg,
		log: p.Log,
	}

	if err := qc.healthCheck(); err != nil {
		return nil, fmt.Errorf("qdrant: health check failed: %w", err)
	}

	qc.log.Info("qdrant client connected", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"port":     port,
	})
	return qc, nil
}

// healthCheck verifies service availability through the SDK. Fast and
// lightweight; also suitable for readiness probes.
func (c *QdrantClient) healthCheck() error {
	if c.api == nil {
		return fmt.Errorf("qdrant: client not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return err
	}

	c.log.Debug("qdrant health check passed", nil, map[string]interface{}{
		"title":   resp.Title,
		"version": resp.Version,
	})
	return nil
}

// Client returns the underlying Qdrant SDK client for direct access to
// low-level operations.
func (c *QdrantClient) Client() *qdrant.Client {
	return c.api
}

// Close gracefully shuts down the client. The SDK keeps no persistent
// connections, so this exists for lifecycle symmetry.
func (c *QdrantClient) Close() error {
	return nil
}
