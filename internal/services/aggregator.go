package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/obs"
	"fleet-route-service/internal/ports"
	"log"
	"sort"
	"strings"
	"sync"
)

const defaultMaxConcurrent = 5

// SegmentAggregator deduplicates segments across a route set, drives
// their resolution through the directions provider with a bounded
// number of in-flight calls, and merges results and partial failures
// into one SegmentMap.
//
// A pass settles every unique segment exactly once: a failed
// resolution is recorded under its key and never aborts the others.
// The aggregator is safe for concurrent use.
type SegmentAggregator struct {
	registry      LocationFinder
	provider      ports.DirectionsProvider
	cache         ports.SegmentCache
	maxConcurrent int
}

func NewSegmentAggregator(registry LocationFinder, provider ports.DirectionsProvider, cache ports.SegmentCache) *SegmentAggregator {
	return &SegmentAggregator{
		registry:      registry,
		provider:      provider,
		cache:         cache,
		maxConcurrent: defaultMaxConcurrent,
	}
}

// SetMaxConcurrent overrides the fan-out limit. Values below 1 are ignored.
func (a *SegmentAggregator) SetMaxConcurrent(n int) {
	if n >= 1 {
		a.maxConcurrent = n
	}
}

// Fingerprint derives the content fingerprint of a segment set: the
// SHA-256 of the sorted key list. Cache entries live under this
// fingerprint, so any catalog change invalidates them implicitly.
func Fingerprint(segments []domain.Segment) string {
	keys := make([]string, 0, len(segments))
	for _, seg := range segments {
		keys = append(keys, seg.Key())
	}
	sort.Strings(keys)
	sum := sha256.Sum256([]byte(strings.Join(keys, "\n")))
	return hex.EncodeToString(sum[:])
}

// ResolveAll runs one aggregation pass over the route set.
//
// The unique segment set is fixed before any resolution begins.
// Cached results are used where available; the rest fan out to the
// provider, at most maxConcurrent in flight. The returned map always
// has one entry per unique segment, each either resolved or tagged
// with a failure status.
func (a *SegmentAggregator) ResolveAll(ctx context.Context, routes []domain.OperationalRoute) domain.SegmentMap {
	defer obs.Time(ctx, "aggregator.ResolveAll")(nil)

	segments := UniqueSegments(a.registry, routes)
	return a.ResolveSegments(ctx, segments)
}

// ResolveSegments settles an already-deduplicated segment list.
func (a *SegmentAggregator) ResolveSegments(ctx context.Context, segments []domain.Segment) domain.SegmentMap {
	out := make(domain.SegmentMap, len(segments))
	if len(segments) == 0 {
		return out
	}

	pending := segments
	if a.cache != nil {
		fingerprint := Fingerprint(segments)
		keys := make([]string, 0, len(segments))
		for _, seg := range segments {
			keys = append(keys, seg.Key())
		}

		hits, err := a.cache.GetMany(ctx, fingerprint, keys)
		if err != nil {
			// Cache trouble degrades to resolving fresh.
			log.Printf("segment cache read failed: %v", err)
			hits = nil
		}

		pending = make([]domain.Segment, 0, len(segments))
		for _, seg := range segments {
			if cached, ok := hits[seg.Key()]; ok && !cached.Failed() {
				out[seg.Key()] = cached
				continue
			}
			pending = append(pending, seg)
		}
	}

	if len(pending) > 0 {
		resolved := a.fanOut(ctx, pending)
		for k, v := range resolved {
			out[k] = v
		}
		a.storeResolved(ctx, segments, resolved)
	}

	return out
}

type segmentResult struct {
	key      string
	resolved domain.ResolvedSegment
}

// fanOut resolves each segment through the provider with bounded
// concurrency, waiting for every call to settle before returning.
func (a *SegmentAggregator) fanOut(ctx context.Context, segments []domain.Segment) domain.SegmentMap {
	sem := make(chan struct{}, a.maxConcurrent)
	resultsCh := make(chan segmentResult, len(segments))
	var wg sync.WaitGroup

	for _, seg := range segments {
		wg.Add(1)
		go func(seg domain.Segment) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			resultsCh <- segmentResult{key: seg.Key(), resolved: a.Resolve(ctx, seg)}
		}(seg)
	}

	wg.Wait()
	close(resultsCh)

	out := make(domain.SegmentMap, len(segments))
	for res := range resultsCh {
		out[res.key] = res.resolved
	}
	return out
}

// Resolve settles a single segment: registry lookups first, then one
// provider call. Failures come back as a tagged result, never an error.
func (a *SegmentAggregator) Resolve(ctx context.Context, seg domain.Segment) domain.ResolvedSegment {
	from, fromOK := a.registry.FindByName(seg.From)
	to, toOK := a.registry.FindByName(seg.To)
	if !fromOK || !toOK {
		return domain.ResolvedSegment{Status: domain.StatusLocationNotFound}
	}

	leg, err := a.provider.GetRoute(ctx, from.Coordinates, to.Coordinates)
	if err != nil {
		var se *ports.StatusError
		if errors.As(err, &se) {
			return domain.ResolvedSegment{Status: se.Status}
		}
		// No status from the service means it never answered.
		log.Printf("resolve segment %s: %v", seg.Key(), err)
		return domain.ResolvedSegment{Status: domain.StatusAPINotLoaded}
	}

	if len(leg.Path) == 0 {
		return domain.ResolvedSegment{Status: domain.StatusNoPolyline}
	}

	return domain.ResolvedSegment{
		DistanceKm:      leg.DistanceKm,
		DurationSeconds: leg.DurationSeconds,
		Path:            leg.Path,
	}
}

// storeResolved writes freshly resolved successes back to the cache.
// Failures are not cached so the next pass retries them.
func (a *SegmentAggregator) storeResolved(ctx context.Context, all []domain.Segment, resolved domain.SegmentMap) {
	if a.cache == nil {
		return
	}

	successes := make(domain.SegmentMap, len(resolved))
	for k, v := range resolved {
		if !v.Failed() {
			successes[k] = v
		}
	}
	if len(successes) == 0 {
		return
	}

	if err := a.cache.PutMany(ctx, Fingerprint(all), successes); err != nil {
		log.Printf("segment cache write failed: %v", err)
	}
}
