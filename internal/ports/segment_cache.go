package ports

import (
	"context"
	"fleet-route-service/internal/domain"
)

// Port: a boundary for persisting resolved segments between
// aggregation passes.
//
// Entries are namespaced by a content fingerprint of the deduplicated
// segment key set, so a catalog change invalidates the cache
// implicitly. Only successfully resolved segments are stored; failures
// are always re-attempted on the next pass.
type SegmentCache interface {
	// Fetch cached results for the given segment keys under one fingerprint.
	GetMany(ctx context.Context, fingerprint string, keys []string) (domain.SegmentMap, error)
	// Store resolved segments under one fingerprint.
	PutMany(ctx context.Context, fingerprint string, segments domain.SegmentMap) error
}
