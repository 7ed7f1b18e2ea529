package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/ltree/internal/codec"
)

// ErrTypeNotFound is returned by FetchType for an unknown type name.
var ErrTypeNotFound = errors.New("type not found")

// FetchType resolves a type name to its identifiers.
func (s *Store) FetchType(ctx context.Context, name string) (codec.TypeInfo, error) {
	var info codec.TypeInfo
	err := s.db.QueryRowContext(ctx, `
		SELECT name, oid, array_oid FROM types WHERE name = ?
	`, name).Scan(&info.Name, &info.OID, &info.ArrayOID)
	if errors.Is(err, sql.ErrNoRows) {
		return codec.TypeInfo{}, fmt.Errorf("fetch type %q: %w", name, ErrTypeNotFound)
	}
	if err != nil {
		return codec.TypeInfo{}, fmt.Errorf("fetch type %q: %w", name, err)
	}
	return info, nil
}

// Register resolves the ltree and lquery types in the catalog and binds
// their codec pairs in the store's registry. Calling it again is a no-op.
func (s *Store) Register(ctx context.Context) error {
	binders := []struct {
		name string
		bind func(*codec.Registry, codec.TypeInfo) error
	}{
		{"ltree", codec.RegisterLtree},
		{"lquery", codec.RegisterLquery},
	}

	for _, b := range binders {
		info, err := s.FetchType(ctx, b.name)
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		if err := b.bind(s.registry, info); err != nil {
			return fmt.Errorf("register: %w", err)
		}
		s.logger.Debug("type bound", "type", info.Name, "oid", info.OID, "array_oid", info.ArrayOID)
	}
	return nil
}
