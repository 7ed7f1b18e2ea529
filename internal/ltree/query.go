package ltree

import (
	"fmt"
	"slices"
	"strings"
)

// Query is an immutable pattern over paths, such as "top.*{1,2}.a|b".
//
// No two adjacent elements of a Query are Stars: adjacent wildcard terms
// are fused on construction and across concatenation.
type Query struct {
	labels []QueryLabel
}

// ParseQuery parses dotted text into a Query.
func ParseQuery(text string) (Query, error) {
	return NewQuery(Text(text))
}

// MustParseQuery is like ParseQuery but panics on error.
func MustParseQuery(text string) Query {
	q, err := ParseQuery(text)
	if err != nil {
		panic(err)
	}
	return q
}

// QueryFromLabels builds a Query from individual query labels.
func QueryFromLabels(labels ...string) (Query, error) {
	return NewQuery(Labels(labels))
}

// NewQuery concatenates inputs, in order, into a Query and fuses adjacent
// wildcard terms.
func NewQuery(inputs ...Input) (Query, error) {
	var labels []QueryLabel
	for _, in := range inputs {
		switch v := in.(type) {
		case nil:
			continue
		case Query:
			labels = append(labels, v.labels...)
			continue
		case Star:
			labels = append(labels, v)
			continue
		}
		for _, raw := range in.atoms() {
			label, ok, err := ValidateQueryLabel(raw)
			if err != nil {
				return Query{}, err
			}
			if ok {
				labels = append(labels, label)
			}
		}
	}
	fused, err := fuse(labels)
	if err != nil {
		return Query{}, err
	}
	return Query{labels: fused}, nil
}

// fuse merges runs of adjacent Stars. The input slice is not modified.
func fuse(labels []QueryLabel) ([]QueryLabel, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	out := make([]QueryLabel, 0, len(labels))
	for _, label := range labels {
		if n := len(out); n > 0 {
			prev, prevStar := out[n-1].(Star)
			cur, curStar := label.(Star)
			if prevStar && curStar {
				merged, err := prev.Merge(cur)
				if err != nil {
					return nil, err
				}
				out[n-1] = merged
				continue
			}
		}
		out = append(out, label)
	}
	return out, nil
}

func (q Query) atoms() []string {
	atoms := make([]string, len(q.labels))
	for i, label := range q.labels {
		atoms[i] = label.String()
	}
	return atoms
}

// Len returns the number of query labels.
func (q Query) Len() int {
	return len(q.labels)
}

// Labels returns a copy of the query labels.
func (q Query) Labels() []QueryLabel {
	return slices.Clone(q.labels)
}

// String returns the labels joined with ".".
func (q Query) String() string {
	return strings.Join(q.atoms(), ".")
}

// GoString implements fmt.GoStringer.
func (q Query) GoString() string {
	return fmt.Sprintf("ltree.Query(%q)", q.String())
}

// At returns the label at index i. Negative indices count from the end.
func (q Query) At(i int) (QueryLabel, error) {
	j, err := resolveIndex(i, len(q.labels))
	if err != nil {
		return nil, err
	}
	return q.labels[j], nil
}

// Slice returns the sub-query [lo, hi) with the same clipping rules as
// Path.Slice.
func (q Query) Slice(lo, hi int) Query {
	lo, hi = sliceBounds(lo, hi, len(q.labels))
	if lo == hi {
		return Query{}
	}
	return Query{labels: slices.Clone(q.labels[lo:hi])}
}

// Concat returns q followed by other. A trailing Star of q fuses with a
// leading Star of other.
func (q Query) Concat(other Input) (Query, error) {
	return NewQuery(q, other)
}

// RConcat returns other followed by q.
func (q Query) RConcat(other Input) (Query, error) {
	return NewQuery(other, q)
}

// Equal reports whether q equals other, coercing other the same way as
// Path.Equal.
func (q Query) Equal(other Input) bool {
	switch o := other.(type) {
	case Query:
		return slices.Equal(q.labels, o.labels)
	case Text:
		return q.String() == string(o)
	}
	r, err := NewQuery(other)
	if err != nil {
		return false
	}
	return slices.Equal(q.labels, r.labels)
}

// Compare returns -1, 0 or 1 as q sorts before, equal to or after other.
// Coercion follows Path.Compare.
func (q Query) Compare(other Input) (int, error) {
	switch o := other.(type) {
	case Query:
		return CompareQueries(q, o), nil
	case Text:
		return strings.Compare(q.String(), string(o)), nil
	}
	r, err := NewQuery(other)
	if err != nil {
		return 0, err
	}
	return CompareQueries(q, r), nil
}

// CompareQueries orders queries element by element. Words sort by text,
// Stars by bounds, and a Word sorts before a Star.
func CompareQueries(a, b Query) int {
	return slices.CompareFunc(a.labels, b.labels, compareQueryLabels)
}

// MarshalText implements encoding.TextMarshaler.
func (q Query) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Query) UnmarshalText(data []byte) error {
	parsed, err := ParseQuery(string(data))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
