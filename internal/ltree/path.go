package ltree

import (
	"fmt"
	"slices"
	"strings"
)

// Path is an immutable sequence of labels, such as "top.science.astronomy".
//
// The zero value is the empty path.
type Path struct {
	labels []string
}

// ParsePath parses dotted text into a Path. Empty segments are elided, so
// "" and "a..b" are accepted.
func ParsePath(text string) (Path, error) {
	return NewPath(Text(text))
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(text string) Path {
	p, err := ParsePath(text)
	if err != nil {
		panic(err)
	}
	return p
}

// PathFromLabels builds a Path from individual labels.
func PathFromLabels(labels ...string) (Path, error) {
	return NewPath(Labels(labels))
}

// NewPath concatenates inputs, in order, into a Path.
//
// Each input expands into raw labels which are validated with
// ValidateLabel. On error no partial value is returned.
func NewPath(inputs ...Input) (Path, error) {
	var labels []string
	for _, in := range inputs {
		if in == nil {
			continue
		}
		if p, ok := in.(Path); ok {
			labels = append(labels, p.labels...)
			continue
		}
		for _, raw := range in.atoms() {
			label, ok, err := ValidateLabel(raw)
			if err != nil {
				return Path{}, err
			}
			if ok {
				labels = append(labels, label)
			}
		}
	}
	return Path{labels: labels}, nil
}

func (p Path) atoms() []string {
	return p.labels
}

// Len returns the number of labels.
func (p Path) Len() int {
	return len(p.labels)
}

// Labels returns a copy of the labels.
func (p Path) Labels() []string {
	return slices.Clone(p.labels)
}

// String returns the labels joined with ".".
func (p Path) String() string {
	return strings.Join(p.labels, ".")
}

// GoString implements fmt.GoStringer.
func (p Path) GoString() string {
	return fmt.Sprintf("ltree.Path(%q)", p.String())
}

// At returns the label at index i. Negative indices count from the end.
func (p Path) At(i int) (string, error) {
	j, err := resolveIndex(i, len(p.labels))
	if err != nil {
		return "", err
	}
	return p.labels[j], nil
}

// Slice returns the sub-path [lo, hi). Negative bounds count from the end
// and out-of-range bounds are clipped; Slice never fails.
func (p Path) Slice(lo, hi int) Path {
	lo, hi = sliceBounds(lo, hi, len(p.labels))
	if lo == hi {
		return Path{}
	}
	return Path{labels: slices.Clone(p.labels[lo:hi])}
}

// Concat returns p followed by other.
func (p Path) Concat(other Input) (Path, error) {
	return NewPath(p, other)
}

// RConcat returns other followed by p.
func (p Path) RConcat(other Input) (Path, error) {
	return NewPath(other, p)
}

// HasPrefix reports whether prefix is an ancestor of (or equal to) p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.labels) > len(p.labels) {
		return false
	}
	return slices.Equal(p.labels[:len(prefix.labels)], prefix.labels)
}

// Equal reports whether p equals other.
//
// Text is compared against the rendering of p without being parsed. Any
// other input is first coerced into a Path; an input that cannot be
// coerced is not equal to any path.
func (p Path) Equal(other Input) bool {
	switch o := other.(type) {
	case Path:
		return slices.Equal(p.labels, o.labels)
	case Text:
		return p.String() == string(o)
	}
	q, err := NewPath(other)
	if err != nil {
		return false
	}
	return slices.Equal(p.labels, q.labels)
}

// Compare returns -1, 0 or 1 as p sorts before, equal to or after other.
//
// Paths are ordered label by label, a strict prefix sorting first. Text
// is compared against the rendering of p. Other inputs are coerced into a
// Path; the coercion error is returned if that fails.
func (p Path) Compare(other Input) (int, error) {
	switch o := other.(type) {
	case Path:
		return ComparePaths(p, o), nil
	case Text:
		return strings.Compare(p.String(), string(o)), nil
	}
	q, err := NewPath(other)
	if err != nil {
		return 0, err
	}
	return ComparePaths(p, q), nil
}

// ComparePaths orders paths label by label. It is suitable for
// slices.SortFunc.
func ComparePaths(a, b Path) int {
	return slices.Compare(a.labels, b.labels)
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(data []byte) error {
	parsed, err := ParsePath(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
