package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ltree/internal/codec"
	"github.com/roach88/ltree/internal/ltree"
	"github.com/roach88/ltree/internal/testutil"
)

func TestLoadServerText(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	nullID, err := s.SaveText(ctx, 16400, nil)
	require.NoError(t, err)
	emptyID, err := s.SaveText(ctx, 16400, strPtr(""))
	require.NoError(t, err)
	pathID, err := s.SaveText(ctx, 16400, strPtr("a.b"))
	require.NoError(t, err)

	v, err := s.Load(ctx, nullID)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = s.Load(ctx, emptyID)
	require.NoError(t, err)
	assert.Equal(t, ltree.Path{}, v)

	v, err = s.Load(ctx, pathID)
	require.NoError(t, err)
	assert.True(t, v.(ltree.Path).Equal(ltree.Text("a.b")))
}

func TestLoadServerQueryText(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.SaveText(ctx, 16410, strPtr("a.*.b"))
	require.NoError(t, err)

	v, err := s.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ltree.MustParseQuery("a.*.b"), v)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	values := []any{
		ltree.MustParsePath(""),
		ltree.MustParsePath("a.b.c.d"),
		ltree.MustParseQuery("a"),
		ltree.MustParseQuery("a.*{,3}.c.*.d"),
		[]ltree.Path{ltree.MustParsePath(""), ltree.MustParsePath("a.b.c.d")},
		[]ltree.Query{ltree.MustParseQuery("a"), ltree.MustParseQuery("a.*{,3}.c.*.d")},
	}

	for _, want := range values {
		id, err := s.Save(ctx, want)
		require.NoError(t, err)

		got, err := s.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLoadInvalidText(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.SaveText(ctx, 16400, strPtr("a.*.b"))
	require.NoError(t, err)

	_, err = s.Load(ctx, id)
	require.Error(t, err)
	assert.True(t, codec.IsParseError(err))
	assert.True(t, ltree.IsValidationError(err))
}

func TestLoadMissing(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Load(context.Background(), "no-such-id")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadUnboundOID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.SaveText(ctx, 42, strPtr("a"))
	require.NoError(t, err)

	_, err = s.Load(ctx, id)
	assert.True(t, errors.Is(err, codec.ErrUnknownOID))
}

func TestSaveUnregisteredType(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Save(context.Background(), "a.b")
	assert.Error(t, err)
}

func TestListOrdersBySeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, text := range []string{"c", "a.b", "b"} {
		_, err := s.Save(ctx, ltree.MustParsePath(text))
		require.NoError(t, err)
	}
	_, err := s.Save(ctx, ltree.MustParseQuery("x.*"))
	require.NoError(t, err)

	got, err := s.List(ctx, 16400)
	require.NoError(t, err)
	require.Len(t, got, 3)

	var texts []string
	for _, v := range got {
		texts = append(texts, v.(ltree.Path).String())
	}
	assert.Equal(t, []string{"c", "a.b", "b"}, texts)
}

func TestLoadTextRecord(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, ltree.MustParseQuery("a.*{1}.*{1}"))
	require.NoError(t, err)

	rec, err := s.LoadText(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, codec.OID(16410), rec.OID)
	require.NotNil(t, rec.Body)
	assert.Equal(t, "a.*{2}", *rec.Body)
	assert.Positive(t, rec.Seq)
}

func TestSaveUsesIDGenerator(t *testing.T) {
	s, err := Open(":memory:", WithIDGenerator(testutil.NewSequentialIDs("val")))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()
	require.NoError(t, s.Register(ctx))

	first, err := s.Save(ctx, ltree.MustParsePath("a"))
	require.NoError(t, err)
	second, err := s.SaveText(ctx, 16410, strPtr("b.*"))
	require.NoError(t, err)

	assert.Equal(t, "val-0001", first)
	assert.Equal(t, "val-0002", second)

	rec, err := s.LoadText(ctx, "val-0002")
	require.NoError(t, err)
	assert.Equal(t, codec.OID(16410), rec.OID)
}

func TestDefaultIDsAreUUIDv7(t *testing.T) {
	s := createTestStore(t)

	id, err := s.Save(context.Background(), ltree.MustParsePath("a"))
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
