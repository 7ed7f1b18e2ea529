package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ltree/internal/harness"
	"github.com/roach88/ltree/internal/ltree"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	Type string // "ltree" | "lquery"
}

// CompareResult is the output of the compare command.
type CompareResult struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Order int    `json:"order"` // -1, 0 or 1
	Equal bool   `json:"equal"`

	// Ancestor reports whether left is a prefix of right. Paths only.
	Ancestor *bool `json:"ancestor,omitempty"`
}

func (r CompareResult) String() string {
	op := map[int]string{-1: "<", 0: "==", 1: ">"}[r.Order]
	s := fmt.Sprintf("%s %s %s", r.Left, op, r.Right)
	if r.Ancestor != nil && *r.Ancestor {
		s += fmt.Sprintf("\n%s is an ancestor of %s", r.Left, r.Right)
	}
	return s
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Order two paths or query patterns",
		Long: `Parse both arguments and compare them element by element. A strict
prefix orders before the longer value. For paths, also report whether
left is an ancestor of right.

Examples:
  ltree compare a.b a.b.c
  ltree compare --type lquery 'a.*{1}' 'a.b'`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", harness.TypeLtree, "value type (ltree|lquery)")
	return cmd
}

func runCompare(opts *CompareOptions, left, right string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	var (
		result CompareResult
		err    error
	)
	switch opts.Type {
	case harness.TypeLtree:
		result, err = comparePaths(left, right)
	case harness.TypeLquery:
		result, err = compareQueries(left, right)
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid type %q: must be ltree or lquery", opts.Type))
	}
	if err != nil {
		return formatter.Fail(ExitFailure, "invalid input", err)
	}
	return formatter.Success(result)
}

func comparePaths(left, right string) (CompareResult, error) {
	a, err := ltree.ParsePath(left)
	if err != nil {
		return CompareResult{}, err
	}
	b, err := ltree.ParsePath(right)
	if err != nil {
		return CompareResult{}, err
	}
	ancestor := b.HasPrefix(a)
	return CompareResult{
		Left:     a.String(),
		Right:    b.String(),
		Order:    ltree.ComparePaths(a, b),
		Equal:    a.Equal(b),
		Ancestor: &ancestor,
	}, nil
}

func compareQueries(left, right string) (CompareResult, error) {
	a, err := ltree.ParseQuery(left)
	if err != nil {
		return CompareResult{}, err
	}
	b, err := ltree.ParseQuery(right)
	if err != nil {
		return CompareResult{}, err
	}
	return CompareResult{
		Left:  a.String(),
		Right: b.String(),
		Order: ltree.CompareQueries(a, b),
		Equal: a.Equal(b),
	}, nil
}
