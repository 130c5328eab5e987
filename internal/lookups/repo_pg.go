package lookups

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"
)

// PGRepo stores lookups in the lookups table.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a lookup row; items and image urls are stored as JSONB.
func (r *PGRepo) Create(ctx context.Context, lookup Lookup) error {
	items, err := marshalJSONB(lookup.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	images, err := marshalJSONB(lookup.ImageURLs)
	if err != nil {
		return fmt.Errorf("marshal image urls: %w", err)
	}

	const query = `
INSERT INTO lookups (id, temp, wind_speed, bucket, condition, items, image_urls, created_at)
VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8)`
	_, err = r.DB.ExecContext(ctx, query,
		lookup.ID,
		lookup.Temp,
		lookup.WindSpeed,
		lookup.Bucket,
		lookup.Condition,
		items,
		images,
		lookup.CreatedAt,
	)
	return err
}

// ListRecent lists lookups ordered newest-first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Lookup, error) {
	const query = `
SELECT id, temp, wind_speed, bucket, condition, items, image_urls, created_at
FROM lookups
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Lookup{}
	for rows.Next() {
		var l Lookup
		var items, images []byte
		if err := rows.Scan(
			&l.ID,
			&l.Temp,
			&l.WindSpeed,
			&l.Bucket,
			&l.Condition,
			&items,
			&images,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		if l.Items, err = unmarshalList(items); err != nil {
			return nil, fmt.Errorf("decode items for %s: %w", l.ID, err)
		}
		if l.ImageURLs, err = unmarshalList(images); err != nil {
			return nil, fmt.Errorf("decode image urls for %s: %w", l.ID, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func marshalJSONB(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	payload, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func unmarshalList(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

var (
	_ Repo = (*PGRepo)(nil)
	_ Repo = (*MemoryRepo)(nil)
)
