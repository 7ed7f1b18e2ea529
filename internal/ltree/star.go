package ltree

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// reStar matches the three wildcard forms: "*", "*{n}" and "*{n?,m?}".
var reStar = regexp.MustCompile(`^(?:(\*)|\*\{(\d+)\}|\*\{(\d*),(\d*)\})$`)

// Star is a wildcard term matching a run of labels.
//
// Min and Max bound the run length; 0 means the bound is unset. A Star with
// both bounds unset matches any number of labels. Negative bounds are not
// produced by ParseStar and should not be constructed.
type Star struct {
	Min int
	Max int
}

func (Star) queryLabel() {}

// ParseStar parses a wildcard term.
//
// ok is false when s is not a wildcard, including near-misses such as
// "*{}", "*{,2,}" or "*{-1}" and bounds too large for int. It never fails
// with an error, so callers can fall through to label validation.
func ParseStar(s string) (star Star, ok bool) {
	m := reStar.FindStringSubmatch(s)
	if m == nil {
		return Star{}, false
	}
	switch {
	case m[1] != "":
		return Star{}, true
	case m[2] != "":
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Star{}, false
		}
		return Star{Min: n, Max: n}, true
	}
	lo, err := parseBound(m[3])
	if err != nil {
		return Star{}, false
	}
	hi, err := parseBound(m[4])
	if err != nil {
		return Star{}, false
	}
	return Star{Min: lo, Max: hi}, true
}

func parseBound(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// Merge combines two adjacent wildcard terms into one.
//
// The minimum is the sum of both minimums. The maximum is the sum of both
// maximums, or unset when either side is unbounded above. A sum that does
// not fit in an int returns a *ValidationError naming both terms.
func (s Star) Merge(other Star) (Star, error) {
	lo, ok := addBounds(s.Min, other.Min)
	if !ok {
		return Star{}, s.overflow(other)
	}
	merged := Star{Min: lo}
	if s.Max != 0 && other.Max != 0 {
		hi, ok := addBounds(s.Max, other.Max)
		if !ok {
			return Star{}, s.overflow(other)
		}
		merged.Max = hi
	}
	return merged, nil
}

func (s Star) overflow(other Star) error {
	return &ValidationError{Grammar: GrammarQuery, Label: s.String() + "." + other.String()}
}

// addBounds adds two non-negative bounds, reporting false on overflow.
func addBounds(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// String renders the canonical form of the term.
func (s Star) String() string {
	switch {
	case s.Min == 0 && s.Max == 0:
		return "*"
	case s.Min == s.Max:
		return fmt.Sprintf("*{%d}", s.Min)
	case s.Max == 0:
		return fmt.Sprintf("*{%d,}", s.Min)
	case s.Min == 0:
		return fmt.Sprintf("*{,%d}", s.Max)
	default:
		return fmt.Sprintf("*{%d,%d}", s.Min, s.Max)
	}
}

// Compare orders stars by (Min, Max).
func (s Star) Compare(other Star) int {
	if c := compareInts(s.Min, other.Min); c != 0 {
		return c
	}
	return compareInts(s.Max, other.Max)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
