package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ltree/internal/codec"
)

func TestFetchType(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	info, err := s.FetchType(ctx, "ltree")
	require.NoError(t, err)
	assert.Equal(t, codec.TypeInfo{Name: "ltree", OID: 16400, ArrayOID: 16405}, info)

	info, err = s.FetchType(ctx, "lquery")
	require.NoError(t, err)
	assert.Equal(t, codec.OID(16410), info.OID)

	_, err = s.FetchType(ctx, "hstore")
	assert.True(t, errors.Is(err, ErrTypeNotFound))
}

func TestRegisterBindsRegistry(t *testing.T) {
	s := createTestStore(t)

	info, ok := s.Registry().Lookup(16400)
	require.True(t, ok)
	assert.Equal(t, "ltree", info.Name)

	info, ok = s.Registry().Lookup(16415)
	require.True(t, ok)
	assert.Equal(t, "lquery", info.Name)

	require.NoError(t, s.Register(context.Background()), "second Register is a no-op")
}

func TestRegisterSharedRegistryConflict(t *testing.T) {
	reg := codec.NewRegistry()
	require.NoError(t, codec.RegisterLtree(reg, codec.TypeInfo{Name: "ltree", OID: 1}))

	s, err := Open(t.TempDir()+"/test.db", WithRegistry(reg))
	require.NoError(t, err)
	defer s.Close()

	err = s.Register(context.Background())
	require.Error(t, err)

	var be *codec.BindError
	assert.ErrorAs(t, err, &be)
}
