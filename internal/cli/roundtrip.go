package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ltree/internal/codec"
	"github.com/roach88/ltree/internal/harness"
	"github.com/roach88/ltree/internal/ltree"
	"github.com/roach88/ltree/internal/store"
)

// RoundtripOptions holds flags for the roundtrip command.
type RoundtripOptions struct {
	*RootOptions
	Database string
	Type     string // "ltree" | "lquery"
	Array    bool   // store all arguments as one array value
	List     bool   // list stored values of the type afterwards
}

// StoredValue describes one value written and read back.
type StoredValue struct {
	ID     string `json:"id"`
	OID    uint32 `json:"oid"`
	Sent   string `json:"sent"`
	Loaded string `json:"loaded"`
}

// RoundtripResult is the output of the roundtrip command.
type RoundtripResult struct {
	Type   string        `json:"type"`
	Values []StoredValue `json:"values"`
	Stored []string      `json:"stored,omitempty"`
}

func (r RoundtripResult) String() string {
	var b strings.Builder
	for _, v := range r.Values {
		fmt.Fprintf(&b, "%s %s -> %s\n", v.ID, v.Sent, v.Loaded)
	}
	if r.Stored != nil {
		fmt.Fprintf(&b, "stored %s values: %d\n", r.Type, len(r.Stored))
		for _, s := range r.Stored {
			fmt.Fprintf(&b, "  %s\n", s)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// NewRoundtripCommand creates the roundtrip command.
func NewRoundtripCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RoundtripOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "roundtrip <text>...",
		Short: "Store values through their text codec and read them back",
		Long: `Parse each argument, encode it with the codec bound to its type,
store it in a SQLite database and decode it again. The database is created
if it does not exist.

Examples:
  ltree roundtrip --db ./ltree.db a.b.c top.science
  ltree roundtrip --db ./ltree.db --type lquery --array 'a.*{1}' 'b|c'
  ltree roundtrip --db ./ltree.db --list x`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundtrip(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Type, "type", harness.TypeLtree, "value type (ltree|lquery)")
	cmd.Flags().BoolVar(&opts.Array, "array", false, "store all arguments as one array value")
	cmd.Flags().BoolVar(&opts.List, "list", false, "list all stored values of the type")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRoundtrip(opts *RoundtripOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())
	ctx := cmd.Context()

	values, err := parseValues(opts.Type, args, opts.Array)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		return formatter.Fail(ExitFailure, "invalid input", err)
	}

	logger.Debug("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database, store.WithLogger(logger))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()
	if err := st.Register(ctx); err != nil {
		return WrapExitError(ExitCommandError, "failed to bind codecs", err)
	}

	result := RoundtripResult{Type: opts.Type, Values: []StoredValue{}}
	for _, v := range values {
		sv, err := roundtripValue(ctx, st, v)
		if err != nil {
			return formatter.Fail(ExitCommandError, "roundtrip failed", err)
		}
		result.Values = append(result.Values, sv)
	}

	if opts.List {
		info, err := st.FetchType(ctx, opts.Type)
		if err != nil {
			return formatter.Fail(ExitCommandError, "list failed", err)
		}
		stored, err := st.List(ctx, info.OID)
		if err != nil {
			return formatter.Fail(ExitCommandError, "list failed", err)
		}
		result.Stored = make([]string, len(stored))
		for i, v := range stored {
			result.Stored[i] = render(v)
		}
	}

	return formatter.Success(result)
}

// parseValues builds the values to store: one per argument, or a single
// slice when asArray is set.
func parseValues(typ string, args []string, asArray bool) ([]any, error) {
	switch typ {
	case harness.TypeLtree:
		return collect(args, asArray, ltree.ParsePath)
	case harness.TypeLquery:
		return collect(args, asArray, ltree.ParseQuery)
	default:
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid type %q: must be ltree or lquery", typ))
	}
}

func collect[T any](args []string, asArray bool, parse func(string) (T, error)) ([]any, error) {
	parsed := make([]T, len(args))
	for i, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return nil, err
		}
		parsed[i] = v
	}
	if asArray {
		return []any{parsed}, nil
	}
	out := make([]any, len(parsed))
	for i, v := range parsed {
		out[i] = v
	}
	return out, nil
}

func roundtripValue(ctx context.Context, st *store.Store, v any) (StoredValue, error) {
	id, err := st.Save(ctx, v)
	if err != nil {
		return StoredValue{}, err
	}
	rec, err := st.LoadText(ctx, id)
	if err != nil {
		return StoredValue{}, err
	}
	loaded, err := st.Load(ctx, id)
	if err != nil {
		return StoredValue{}, err
	}
	return StoredValue{
		ID:     id,
		OID:    uint32(rec.OID),
		Sent:   render(v),
		Loaded: render(loaded),
	}, nil
}

// render returns the wire text of a stored value.
func render(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case []ltree.Path:
		return string(codec.LtreePair.DumpArray(v))
	case []ltree.Query:
		return string(codec.LqueryPair.DumpArray(v))
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
