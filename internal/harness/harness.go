package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/ltree/internal/codec"
	"github.com/roach88/ltree/internal/ltree"
	"github.com/roach88/ltree/internal/store"
	"github.com/roach88/ltree/internal/testutil"
)

// Harness runs scenarios. Each Run uses a fresh in-memory store with
// sequential value IDs, so runs are reproducible.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger passed to the scenario store.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// New creates a Harness. Logging is discarded unless WithLogger is given.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default Harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(context.Background(), scenario)
}

// Run executes every case of the scenario.
//
// The returned error covers infrastructure failures only (store setup).
// Case failures are reported in the Result.
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:",
		store.WithLogger(h.logger),
		store.WithIDGenerator(testutil.NewSequentialIDs(scenario.Name)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	if err := st.Register(ctx); err != nil {
		return nil, fmt.Errorf("failed to bind codecs: %w", err)
	}

	result := &Result{
		Scenario: scenario.Name,
		Pass:     true,
	}
	for _, c := range scenario.Cases {
		cr := h.runCase(ctx, st, c)
		if !cr.Pass {
			result.Pass = false
			for _, e := range cr.Errors {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", c.Name, e))
			}
		}
		result.Cases = append(result.Cases, cr)
	}

	h.logger.Debug("scenario finished",
		"scenario", scenario.Name,
		"cases", len(result.Cases),
		"pass", result.Pass)
	return result, nil
}

func (h *Harness) runCase(ctx context.Context, st *store.Store, c Case) CaseResult {
	cr := CaseResult{Name: c.Name}

	if c.Error == ErrorParse {
		checkParse(&cr, c)
		cr.Pass = len(cr.Errors) == 0
		return cr
	}

	var (
		final value
		err   error
	)
	switch c.Type {
	case TypeLtree:
		cr.States, final, err = build(c, ltree.NewPath, ltree.Path.Concat)
	case TypeLquery:
		cr.States, final, err = build(c, ltree.NewQuery, ltree.Query.Concat)
	}

	switch {
	case err != nil:
		cr.Error = err.Error()
		if c.Error != ErrorValidation || !ltree.IsValidationError(err) {
			cr.fail("unexpected error: %v", err)
		}
	case c.Error != "":
		cr.fail("expected %s error, got %q", c.Error, final.String())
	default:
		if c.Want != nil && final.String() != *c.Want {
			cr.fail("want %q, got %q", *c.Want, final.String())
		}
		if c.Len != nil && final.Len() != *c.Len {
			cr.fail("want len %d, got %d", *c.Len, final.Len())
		}
		if err := roundTrip(ctx, st, final); err != nil {
			cr.fail("round trip: %v", err)
		}
	}

	cr.Pass = len(cr.Errors) == 0
	return cr
}

// value is the part of Path and Query the harness inspects.
type value interface {
	String() string
	Len() int
}

// build constructs the initial value from the case inputs, then applies
// each concat step, recording the rendering after every step.
func build[T value](
	c Case,
	construct func(...ltree.Input) (T, error),
	concat func(T, ltree.Input) (T, error),
) ([]string, value, error) {
	inputs := make([]ltree.Input, 0, len(c.Input)+1)
	for _, s := range c.Input {
		inputs = append(inputs, ltree.Text(s))
	}
	if c.Labels != nil {
		inputs = append(inputs, ltree.Labels(c.Labels))
	}

	v, err := construct(inputs...)
	if err != nil {
		return nil, nil, err
	}
	states := []string{v.String()}

	for _, step := range c.Concat {
		v, err = concat(v, ltree.Text(step))
		if err != nil {
			return states, nil, err
		}
		states = append(states, v.String())
	}
	return states, v, nil
}

// checkParse decodes the joined input as wire text and expects a
// *codec.ParseError.
func checkParse(cr *CaseResult, c Case) {
	data := []byte(strings.Join(c.Input, "."))

	var err error
	switch c.Type {
	case TypeLtree:
		_, err = codec.LtreePair.Loader.Load(data)
	case TypeLquery:
		_, err = codec.LqueryPair.Loader.Load(data)
	}

	if err == nil {
		cr.fail("expected parse error for %q", data)
		return
	}
	cr.Error = err.Error()
	if !codec.IsParseError(err) {
		cr.fail("expected parse error, got %v", err)
	}
}

// roundTrip saves v to the store and checks that it loads back unchanged.
func roundTrip(ctx context.Context, st *store.Store, v value) error {
	id, err := st.Save(ctx, v)
	if err != nil {
		return err
	}
	got, err := st.Load(ctx, id)
	if err != nil {
		return err
	}
	loaded, ok := got.(value)
	if !ok {
		return fmt.Errorf("loaded %T, want %T", got, v)
	}
	if loaded.String() != v.String() || loaded.Len() != v.Len() {
		return fmt.Errorf("loaded %q, want %q", loaded.String(), v.String())
	}
	return nil
}
