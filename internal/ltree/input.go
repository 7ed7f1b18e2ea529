package ltree

import (
	"strconv"
	"strings"
)

// Input is one argument to NewPath or NewQuery.
//
// This is a sealed interface; the implementations are:
//   - Text: dotted text, split on "."
//   - Labels: a sequence of labels, each validated whole
//   - Int: a scalar rendered in decimal
//   - Path and Query: existing values, flattened element by element
//   - Star: a single wildcard term
//
// A nil Input is elided.
type Input interface {
	atoms() []string
}

// Text is dotted text such as "a.b.c".
type Text string

// Labels is a sequence of individual labels. Elements are not split on
// ".", so Labels{"a.b"} is invalid. Empty elements are elided.
type Labels []string

// Int is a scalar label such as 42.
type Int int64

func (t Text) atoms() []string {
	return strings.Split(string(t), ".")
}

func (l Labels) atoms() []string {
	return l
}

func (i Int) atoms() []string {
	return []string{strconv.FormatInt(int64(i), 10)}
}

func (s Star) atoms() []string {
	return []string{s.String()}
}

// QueryLabel is an element of a Query: either a Word or a Star.
type QueryLabel interface {
	String() string
	queryLabel()
}

// Word is a non-wildcard query label. It may hold "|"-separated
// alternatives such as "foo|bar".
type Word string

func (Word) queryLabel() {}

// String returns the label text.
func (w Word) String() string {
	return string(w)
}

// compareQueryLabels orders Words by text, Stars by bounds, and places
// every Word before every Star.
func compareQueryLabels(a, b QueryLabel) int {
	sa, aStar := a.(Star)
	sb, bStar := b.(Star)
	switch {
	case aStar && bStar:
		return sa.Compare(sb)
	case aStar:
		return 1
	case bStar:
		return -1
	}
	return strings.Compare(a.String(), b.String())
}
