package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ltree/internal/ltree"
)

// Term describes one query label.
type Term struct {
	Kind string `json:"kind"` // "word" | "star"
	Text string `json:"text"`
	Min  int    `json:"min,omitempty"`
	Max  int    `json:"max,omitempty"`
}

// QueryResult is the output of the query command.
type QueryResult struct {
	Text  string  `json:"text"`
	Len   int     `json:"len"`
	Terms []Term  `json:"terms"`
	Repr  string  `json:"repr"`
	At    *Term   `json:"at,omitempty"`
	Slice *string `json:"slice,omitempty"`
}

func (r QueryResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Repr)
	fmt.Fprintf(&b, "len: %d\n", r.Len)
	for i, t := range r.Terms {
		fmt.Fprintf(&b, "  [%d] %s %s\n", i, t.Kind, t.Text)
	}
	if r.At != nil {
		fmt.Fprintf(&b, "at: %s %s\n", r.At.Kind, r.At.Text)
	}
	if r.Slice != nil {
		fmt.Fprintf(&b, "slice: %q\n", *r.Slice)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func newTerm(label ltree.QueryLabel) Term {
	if star, ok := label.(ltree.Star); ok {
		return Term{Kind: "star", Text: star.String(), Min: star.Min, Max: star.Max}
	}
	return Term{Kind: "word", Text: label.String()}
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query <input>...",
		Short: "Parse and normalize a query pattern",
		Long: `Parse one or more inputs into a single query pattern and print its
canonical text. Adjacent wildcard terms are fused, including across
argument boundaries.

Examples:
  ltree query 'foo.bar.*{1}' '*{2}.x'
  ltree query 'top.a|b.*{,3}'
  ltree query --format json 'a.*.*{2}'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, args, cmd)
		},
	}

	addParseFlags(cmd, opts)
	return cmd
}

func runQuery(opts *ParseOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	q, err := ltree.NewQuery(opts.inputs(args)...)
	if err != nil {
		return formatter.Fail(ExitFailure, "invalid query", err)
	}

	labels := q.Labels()
	result := QueryResult{
		Text:  q.String(),
		Len:   q.Len(),
		Terms: make([]Term, len(labels)),
		Repr:  q.GoString(),
	}
	for i, label := range labels {
		result.Terms[i] = newTerm(label)
	}

	if cmd.Flags().Changed("at") {
		label, err := q.At(opts.At)
		if err != nil {
			return formatter.Fail(ExitFailure, "invalid index", err)
		}
		term := newTerm(label)
		result.At = &term
	}
	if opts.Slice != "" {
		lo, hi, err := parseSlice(opts.Slice, q.Len())
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --slice", err)
		}
		s := q.Slice(lo, hi).String()
		result.Slice = &s
	}

	return formatter.Success(result)
}
