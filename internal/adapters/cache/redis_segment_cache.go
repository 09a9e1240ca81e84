package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fleet-route-service/internal/domain"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSegmentTTL = 24 * time.Hour

// Redis-backed cache for resolved segments. Entries expire after a
// TTL instead of being invalidated explicitly; the fingerprint
// namespace still fences off stale catalogs.
type RedisSegmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSegmentCache(client *redis.Client, ttl time.Duration) *RedisSegmentCache {
	if ttl <= 0 {
		ttl = defaultSegmentTTL
	}
	return &RedisSegmentCache{client: client, ttl: ttl}
}

type redisSegment struct {
	DistanceKm      float64     `json:"distance_km"`
	DurationSeconds float64     `json:"duration_seconds"`
	Path            [][]float64 `json:"path"`
}

func redisKey(fingerprint, segmentKey string) string {
	return "segment:" + fingerprint + ":" + segmentKey
}

// Fetch cached segments for one fingerprint and multiple keys.
func (r *RedisSegmentCache) GetMany(
	ctx context.Context,
	fingerprint string,
	keys []string,
) (domain.SegmentMap, error) {
	if r.client == nil {
		return nil, errors.New("segment cache: redis client is nil")
	}

	if fingerprint == "" {
		return nil, errors.New("get segment cache: fingerprint must not be empty")
	}

	if len(keys) == 0 {
		return domain.SegmentMap{}, nil
	}

	redisKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		redisKeys = append(redisKeys, redisKey(fingerprint, k))
	}

	values, err := r.client.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get segment cache: mget: %w", err)
	}

	out := make(domain.SegmentMap, len(keys))
	for i, v := range values {
		if v == nil {
			continue
		}

		raw, ok := v.(string)
		if !ok {
			continue
		}

		var entry redisSegment
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("get segment cache: key=%q: %w", keys[i], err)
		}

		path := make([]domain.Coordinates, 0, len(entry.Path))
		for _, p := range entry.Path {
			if len(p) != 2 {
				return nil, fmt.Errorf("get segment cache: key=%q: pair has %d values", keys[i], len(p))
			}
			path = append(path, domain.Coordinates{Lat: p[0], Lon: p[1]})
		}

		out[keys[i]] = domain.ResolvedSegment{
			DistanceKm:      entry.DistanceKm,
			DurationSeconds: entry.DurationSeconds,
			Path:            path,
		}
	}

	return out, nil
}

// Store resolved segments for one fingerprint with TTL expiry.
func (r *RedisSegmentCache) PutMany(
	ctx context.Context,
	fingerprint string,
	segments domain.SegmentMap,
) error {
	if r.client == nil {
		return errors.New("segment cache: redis client is nil")
	}

	if fingerprint == "" {
		return errors.New("insert segment cache: fingerprint must not be empty")
	}

	if len(segments) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for key, seg := range segments {
		if key == "" {
			return errors.New("insert segment cache: empty segment key")
		}
		if seg.Failed() {
			continue
		}

		pairs := make([][]float64, 0, len(seg.Path))
		for _, c := range seg.Path {
			pairs = append(pairs, c.LatLng())
		}

		b, err := json.Marshal(redisSegment{
			DistanceKm:      seg.DistanceKm,
			DurationSeconds: seg.DurationSeconds,
			Path:            pairs,
		})
		if err != nil {
			return fmt.Errorf("insert segment cache key=%q: %w", key, err)
		}

		pipe.Set(ctx, redisKey(fingerprint, key), b, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert segment cache: pipeline exec: %w", err)
	}

	return nil
}
