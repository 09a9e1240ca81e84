package cache

import (
	"context"
	"database/sql"
	"errors"
	"fleet-route-service/internal/domain"
	"fmt"
	"strings"
)

// SQLite-backed cache for resolved segments. Used for local runs
// where a Postgres instance is not available.
type SqliteSegmentCache struct {
	DB *sql.DB
}

func NewSqliteSegmentCache(db *sql.DB) *SqliteSegmentCache {
	return &SqliteSegmentCache{DB: db}
}

// InitSqliteSchema creates the segment cache table if missing.
func InitSqliteSchema(ctx context.Context, db *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS segment_cache (
		fingerprint      TEXT NOT NULL,
		segment_key      TEXT NOT NULL,
		distance_km      REAL NOT NULL,
		duration_seconds REAL NOT NULL,
		path             TEXT NOT NULL,
		PRIMARY KEY (fingerprint, segment_key)
	);
	`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init sqlite segment cache schema: %w", err)
	}
	return nil
}

// Fetch cached segments for one fingerprint and multiple keys.
func (s *SqliteSegmentCache) GetMany(
	ctx context.Context,
	fingerprint string,
	keys []string,
) (domain.SegmentMap, error) {
	if s.DB == nil {
		return nil, errors.New("segment cache: db is nil")
	}

	if fingerprint == "" {
		return nil, errors.New("get segment cache: fingerprint must not be empty")
	}

	if len(keys) == 0 {
		return domain.SegmentMap{}, nil
	}

	seen := map[string]struct{}{}
	args := make([]any, 0, 1+len(keys))
	args = append(args, fingerprint)
	ph := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		args = append(args, k)
		ph = append(ph, "?")
	}

	if len(ph) == 0 {
		return domain.SegmentMap{}, nil
	}

	q := fmt.Sprintf(`
	SELECT segment_key, distance_km, duration_seconds, path
	FROM segment_cache
	WHERE fingerprint = ?
		AND segment_key IN (%s);
	`, strings.Join(ph, ", "))

	rows, err := s.DB.QueryContext(ctx, q, args...)
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
func (s *SqliteSegmentCache) PutMany(
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
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (fingerprint, segment_key) DO UPDATE
	SET distance_km = excluded.distance_km,
		duration_seconds = excluded.duration_seconds,
		path = excluded.path;
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
