package harness

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestRun_Golden(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "failures: %v", result.Errors)
		})
	}
}

func TestRun_ReportsMismatch(t *testing.T) {
	s := &Scenario{
		Name: "mismatch",
		Cases: []Case{
			{Name: "wrong_want", Type: TypeLtree, Input: []string{"a.b"}, Want: strPtr("a.c")},
			{Name: "wrong_len", Type: TypeLquery, Input: []string{"a.*.*"}, Len: intPtr(3)},
			{Name: "missing_error", Type: TypeLtree, Input: []string{"a"}, Error: ErrorValidation},
			{Name: "missing_parse_error", Type: TypeLquery, Input: []string{"a.*"}, Error: ErrorParse},
			{Name: "ok", Type: TypeLtree, Input: []string{"a"}, Want: strPtr("a")},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Cases, 5)

	assert.Equal(t, []string{`want "a.c", got "a.b"`}, result.Cases[0].Errors)
	assert.Equal(t, []string{"want len 3, got 2"}, result.Cases[1].Errors)
	assert.Equal(t, []string{`expected validation error, got "a"`}, result.Cases[2].Errors)
	assert.Equal(t, []string{`expected parse error for "a.*"`}, result.Cases[3].Errors)
	assert.True(t, result.Cases[4].Pass)

	assert.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "wrong_want: ")
}

func TestRun_UnexpectedError(t *testing.T) {
	s := &Scenario{
		Name: "unexpected",
		Cases: []Case{
			{Name: "bad", Type: TypeLtree, Input: []string{"a", "b-c"}, Want: strPtr("a.b-c")},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Equal(t, "ltree label not valid: b-c", result.Cases[0].Error)
	assert.Contains(t, result.Cases[0].Errors[0], "unexpected error")
}

func TestRun_ConcatFailureKeepsStates(t *testing.T) {
	s := &Scenario{
		Name: "concat_failure",
		Cases: []Case{
			{Name: "c", Type: TypeLquery, Input: []string{"a"}, Concat: []string{"*", "b c"}, Error: ErrorValidation},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "failures: %v", result.Errors)
	assert.Equal(t, []string{"a", "a.*"}, result.Cases[0].States)
	assert.Equal(t, "lquery label not valid: b c", result.Cases[0].Error)
}

func TestHarness_FreshStorePerRun(t *testing.T) {
	h := New()
	s := &Scenario{
		Name:  "fresh",
		Cases: []Case{{Name: "a", Type: TypeLtree, Input: []string{"a"}}},
	}

	for i := 0; i < 2; i++ {
		result, err := h.Run(context.Background(), s)
		require.NoError(t, err)
		assert.True(t, result.Pass)
	}
}

func TestMarshalSnapshot_OmitsEmpty(t *testing.T) {
	data, err := MarshalSnapshot(&Result{
		Scenario: "s",
		Cases:    []CaseResult{{Name: "a", Pass: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"scenario\": \"s\",\n  \"cases\": [\n    {\n      \"name\": \"a\"\n    }\n  ]\n}", string(data))
}
