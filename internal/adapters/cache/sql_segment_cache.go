package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/obs"
	"fmt"
)

// SQLSegmentCache is a Postgres-backed cache for resolved segments,
// namespaced by the route-set content fingerprint.
type SQLSegmentCache struct {
	DB *sql.DB
}

func NewSQLSegmentCache(db *sql.DB) *SQLSegmentCache {
	return &SQLSegmentCache{DB: db}
}

// Fetch cached segments for one fingerprint and multiple keys.
func (s *SQLSegmentCache) GetMany(
	ctx context.Context,
	fingerprint string,
	keys []string,
) (_ domain.SegmentMap, err error) {
	defer obs.Time(ctx, "segment.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("segment cache: db is nil")
	}

	if fingerprint == "" {
		return nil, errors.New("get segment cache: fingerprint must not be empty")
	}

	if len(keys) == 0 {
		return domain.SegmentMap{}, nil
	}

	q := `
	SELECT segment_key, distance_km, duration_seconds, path
	FROM segment_cache
	WHERE fingerprint = $1
		AND segment_key = ANY($2::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, fingerprint, keys)
	if err != nil {
		return nil, fmt.Errorf("get segment cache: query segment_cache table: %w", err)
	}
	defer rows.Close()

	out := make(domain.SegmentMap, len(keys))
	for rows.Next() {
		var key string
		var km, seconds float64
		var pathJSON []byte
		if err := rows.Scan(&key, &km, &seconds, &pathJSON); err != nil {
			return nil, fmt.Errorf("get segment cache: scan rows: %w", err)
		}

		path, err := decodePathJSON(pathJSON)
		if err != nil {
			return nil, fmt.Errorf("get segment cache: key=%q: %w", key, err)
		}

		out[key] = domain.ResolvedSegment{
			DistanceKm:      km,
			DurationSeconds: seconds,
			Path:            path,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get segment cache: row iteration: %w", err)
	}

	return out, nil
}

// Store resolved segments for one fingerprint.
func (s *SQLSegmentCache) PutMany(
	ctx context.Context,
	fingerprint string,
	segments domain.SegmentMap,
) error {
	if s.DB == nil {
		return errors.New("segment cache: db is nil")
	}

	if fingerprint == "" {
		return errors.New("insert segment cache: fingerprint must not be empty")
	}

	if len(segments) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert segment cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO segment_cache (fingerprint, segment_key, distance_km, duration_seconds, path)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (fingerprint, segment_key) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		duration_seconds = EXCLUDED.duration_seconds,
		path = EXCLUDED.path;
	`)
	if err != nil {
		return fmt.Errorf("insert segment cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, seg := range segments {
		if key == "" {
			return fmt.Errorf("insert segment cache: empty segment key")
		}
		if seg.Failed() {
			continue
		}

		pathJSON, err := encodePathJSON(seg.Path)
		if err != nil {
			return fmt.Errorf("insert segment cache key=%q: %w", key, err)
		}

		if _, err := stmt.ExecContext(ctx, fingerprint, key, seg.DistanceKm, seg.DurationSeconds, pathJSON); err != nil {
			return fmt.Errorf("insert segment cache key=%q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert segment cache commit: %w", err)
	}

	return nil
}

// InitSchema creates the segment cache table if missing.
func InitSchema(ctx context.Context, db *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS segment_cache (
		fingerprint      TEXT NOT NULL,
		segment_key      TEXT NOT NULL,
		distance_km      DOUBLE PRECISION NOT NULL,
		duration_seconds DOUBLE PRECISION NOT NULL,
		path             TEXT NOT NULL,
		PRIMARY KEY (fingerprint, segment_key)
	);
	`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init segment cache schema: %w", err)
	}
	return nil
}

// Paths travel as JSON [lat, lon] pairs.
func encodePathJSON(path []domain.Coordinates) ([]byte, error) {
	pairs := make([][]float64, 0, len(path))
	for _, c := range path {
		pairs = append(pairs, c.LatLng())
	}
	b, err := json.Marshal(pairs)
	if err != nil {
		return nil, fmt.Errorf("encode path: %w", err)
	}
	return b, nil
}

func decodePathJSON(b []byte) ([]domain.Coordinates, error) {
	var pairs [][]float64
	if err := json.Unmarshal(b, &pairs); err != nil {
		return nil, fmt.Errorf("decode path: %w", err)
	}

	path := make([]domain.Coordinates, 0, len(pairs))
	for _, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("decode path: pair has %d values", len(p))
		}
		path = append(path, domain.Coordinates{Lat: p[0], Lon: p[1]})
	}
	return path, nil
}
