package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Document is one stored content document. Data carries whatever the admin
// panel wrote; readers must treat it as untyped.
type Document struct {
	Collection string         `json:"collection"`
	ID         string         `json:"id"`
	Data       map[string]any `json:"data"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// GetDocument retrieves a document by collection and id. A missing document
// returns (nil, nil): absence is a normal state, not an error.
func (db *DB) GetDocument(ctx context.Context, collection, id string) (*Document, error) {
	doc := Document{Collection: collection, ID: id}
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data, updated_at FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&data, &doc.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document %s/%s: %w", collection, id, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc.Data); err != nil {
			return nil, fmt.Errorf("failed to decode document %s/%s: %w", collection, id, err)
		}
	}
	return &doc, nil
}

// PutDocument upserts a document and bumps its storage-level update time.
func (db *DB) PutDocument(ctx context.Context, collection, id string, data map[string]any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s/%s: %w", collection, id, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id) DO UPDATE SET data = $3, updated_at = NOW()`,
		collection, id, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to put document %s/%s: %w", collection, id, err)
	}
	return nil
}

// DeleteDocument removes a document. Returns false when it did not exist.
func (db *DB) DeleteDocument(ctx context.Context, collection, id string) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}
	return result.RowsAffected() > 0, nil
}

// ListProjects retrieves the full projects collection ordered by the numeric
// "order" field ascending; documents without a usable order sort last, ties
// break on id for stable output.
func (db *DB) ListProjects(ctx context.Context) ([]Document, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, data, updated_at FROM documents
		 WHERE collection = 'projects'
		 ORDER BY (CASE WHEN data->>'order' ~ '^-?[0-9]+(\.[0-9]+)?$'
		                THEN (data->>'order')::numeric END) NULLS LAST,
		          id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc := Document{Collection: "projects"}
		var data []byte
		if err := rows.Scan(&doc.ID, &data, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &doc.Data); err != nil {
				return nil, fmt.Errorf("failed to decode project %s: %w", doc.ID, err)
			}
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return docs, nil
}
