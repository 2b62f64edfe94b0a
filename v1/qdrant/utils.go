package qdrant

import (
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/harbourml/vectorstore/v1/store"
)

// validateSearchInput validates common search parameters.
func validateSearchInput(req store.SearchRequest) error {
	if req.Model == nil {
		return fmt.Errorf("search request requires a collection model")
	}
	if len(req.Vector) == 0 {
		return fmt.Errorf("vector cannot be empty")
	}
	if req.TopK <= 0 {
		return fmt.Errorf("topK must be greater than 0")
	}
	return nil
}

// extractVectorDetails extracts the vector size and distance metric
// from a Qdrant CollectionInfo. The SDK nests the configuration in
// several "oneof" wrappers; this helper walks them with nil guards and
// returns zero values when any level is missing.
func extractVectorDetails(info *qdrant.CollectionInfo) (int, string) {
	if info == nil ||
		info.Config == nil ||
		info.Config.Params == nil ||
		info.Config.Params.VectorsConfig == nil ||
		info.Config.Params.VectorsConfig.Config == nil {
		return 0, ""
	}

	if cfg, ok := info.Config.Params.VectorsConfig.Config.(*qdrant.VectorsConfig_Params); ok {
		return int(cfg.Params.Size), cfg.Params.Distance.String()
	}

	return 0, ""
}

// derefUint64 safely dereferences a *uint64, returning 0 for nil.
func derefUint64(v *uint64) uint64 {
	if v != nil {
		return *v
	}
	return 0
}
