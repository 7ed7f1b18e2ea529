package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ltree/internal/ltree"
)

// ParseOptions holds flags shared by the parse and query commands.
type ParseOptions struct {
	*RootOptions
	Labels bool   // treat each argument as one whole label
	At     int    // element index, used when the flag is set
	Slice  string // "lo:hi" slice bounds
}

// PathResult is the output of the parse command.
type PathResult struct {
	Text   string   `json:"text"`
	Len    int      `json:"len"`
	Labels []string `json:"labels"`
	Repr   string   `json:"repr"`
	At     *string  `json:"at,omitempty"`
	Slice  *string  `json:"slice,omitempty"`
}

func (r PathResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Repr)
	fmt.Fprintf(&b, "len: %d\n", r.Len)
	if r.At != nil {
		fmt.Fprintf(&b, "at: %s\n", *r.At)
	}
	if r.Slice != nil {
		fmt.Fprintf(&b, "slice: %q\n", *r.Slice)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "parse <input>...",
		Short: "Parse and normalize a label path",
		Long: `Parse one or more inputs into a single label path and print its
canonical text. Inputs are split on "." and concatenated; empty labels are
dropped.

Examples:
  ltree parse a.b.c
  ltree parse top..science astronomy
  ltree parse --labels foo bar_1
  ltree parse a.b.c --at -1 --slice 1:`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(opts, args, cmd)
		},
	}

	addParseFlags(cmd, opts)
	return cmd
}

func addParseFlags(cmd *cobra.Command, opts *ParseOptions) {
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "treat each argument as one label (no splitting on '.')")
	cmd.Flags().IntVar(&opts.At, "at", 0, "print the element at this index (negative counts from the end)")
	cmd.Flags().StringVar(&opts.Slice, "slice", "", "print the slice lo:hi (bounds may be negative or omitted)")
}

// inputs converts command arguments to constructor inputs.
func (o *ParseOptions) inputs(args []string) []ltree.Input {
	if o.Labels {
		return []ltree.Input{ltree.Labels(args)}
	}
	inputs := make([]ltree.Input, len(args))
	for i, arg := range args {
		inputs[i] = ltree.Text(arg)
	}
	return inputs
}

func runParse(opts *ParseOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	p, err := ltree.NewPath(opts.inputs(args)...)
	if err != nil {
		return formatter.Fail(ExitFailure, "invalid path", err)
	}
	formatter.VerboseLog("parsed %d label(s)", p.Len())

	result := PathResult{
		Text:   p.String(),
		Len:    p.Len(),
		Labels: p.Labels(),
		Repr:   p.GoString(),
	}
	if result.Labels == nil {
		result.Labels = []string{}
	}

	if cmd.Flags().Changed("at") {
		label, err := p.At(opts.At)
		if err != nil {
			return formatter.Fail(ExitFailure, "invalid index", err)
		}
		result.At = &label
	}
	if opts.Slice != "" {
		lo, hi, err := parseSlice(opts.Slice, p.Len())
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --slice", err)
		}
		s := p.Slice(lo, hi).String()
		result.Slice = &s
	}

	return formatter.Success(result)
}

// parseSlice parses "lo:hi". An omitted lo is 0 and an omitted hi is n.
func parseSlice(bounds string, n int) (int, int, error) {
	loText, hiText, ok := strings.Cut(bounds, ":")
	if !ok {
		return 0, 0, fmt.Errorf("slice %q: expected lo:hi", bounds)
	}
	lo, hi := 0, n
	var err error
	if loText != "" {
		if lo, err = strconv.Atoi(loText); err != nil {
			return 0, 0, fmt.Errorf("slice %q: %w", bounds, err)
		}
	}
	if hiText != "" {
		if hi, err = strconv.Atoi(hiText); err != nil {
			return 0, 0, fmt.Errorf("slice %q: %w", bounds, err)
		}
	}
	return lo, hi, nil
}
