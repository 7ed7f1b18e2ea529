package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/ltree/internal/codec"
)

// ErrNotFound is returned when no value has the requested ID.
var ErrNotFound = errors.New("value not found")

// Record is a stored value in wire form. A nil Body is SQL NULL.
type Record struct {
	Seq  int64
	ID   string
	OID  codec.OID
	Body *string
}

// SaveText stores wire text under oid without interpreting it and returns
// the new value's ID. A nil body stores NULL.
func (s *Store) SaveText(ctx context.Context, oid codec.OID, body *string) (string, error) {
	id := s.ids.Generate()

	var col sql.NullString
	if body != nil {
		col = sql.NullString{String: *body, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vals (id, oid, body) VALUES (?, ?, ?)
	`, id, oid, col)
	if err != nil {
		return "", fmt.Errorf("save text: %w", err)
	}
	return id, nil
}

// LoadText returns the stored record with the given ID.
func (s *Store) LoadText(ctx context.Context, id string) (Record, error) {
	rec := Record{ID: id}
	var col sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT seq, oid, body FROM vals WHERE id = ?
	`, id).Scan(&rec.Seq, &rec.OID, &col)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("load text %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("load text %s: %w", id, err)
	}
	if col.Valid {
		rec.Body = &col.String
	}
	return rec, nil
}

// Save encodes v with the store's registry and stores it.
func (s *Store) Save(ctx context.Context, v any) (string, error) {
	oid, data, err := s.registry.Encode(v)
	if err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	body := string(data)
	return s.SaveText(ctx, oid, &body)
}

// Load returns the decoded value with the given ID. A NULL value decodes
// to nil with no error.
func (s *Store) Load(ctx context.Context, id string) (any, error) {
	rec, err := s.LoadText(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return s.decode(rec)
}

// List returns the decoded values stored under oid in insertion order.
func (s *Store) List(ctx context.Context, oid codec.OID) ([]any, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, id, oid, body FROM vals WHERE oid = ? ORDER BY seq ASC
	`, oid)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	var out []any
	for rows.Next() {
		var rec Record
		var col sql.NullString
		if err := rows.Scan(&rec.Seq, &rec.ID, &rec.OID, &col); err != nil {
			return nil, fmt.Errorf("list: scan: %w", err)
		}
		if col.Valid {
			rec.Body = &col.String
		}
		v, err := s.decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return out, nil
}

func (s *Store) decode(rec Record) (any, error) {
	if rec.Body == nil {
		return nil, nil
	}
	v, err := s.registry.Decode(rec.OID, []byte(*rec.Body))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", rec.ID, err)
	}
	return v, nil
}
