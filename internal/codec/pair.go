package codec

import (
	"fmt"
	"reflect"

	"golang.org/x/text/encoding/unicode"

	"github.com/roach88/ltree/internal/ltree"
)

// OID is an opaque type identifier supplied by the type registry of the
// transport collaborator.
type OID uint32

// TypeInfo is a resolved type: its name, identifier, and the identifier of
// its array type (0 if it has none).
type TypeInfo struct {
	Name     string `json:"name"`
	OID      OID    `json:"oid"`
	ArrayOID OID    `json:"array_oid,omitempty"`
}

// Dumper renders values of type T as UTF-8 text.
type Dumper[T fmt.Stringer] struct{}

// Dump returns the canonical text of v. It never fails.
func (Dumper[T]) Dump(v T) []byte {
	return []byte(v.String())
}

// Loader parses UTF-8 text into values of type T.
type Loader[T any] struct {
	typeName string
	parse    func(string) (T, error)
}

// Load decodes data as UTF-8 and parses it. Ill-formed UTF-8 is replaced
// with U+FFFD, which no label grammar accepts, so it surfaces as a
// *ParseError rather than being silently dropped.
func (l Loader[T]) Load(data []byte) (T, error) {
	var zero T
	text, err := decodeUTF8(data)
	if err != nil {
		return zero, &ParseError{Type: l.typeName, Text: string(data), Err: err}
	}
	v, err := l.parse(text)
	if err != nil {
		return zero, &ParseError{Type: l.typeName, Text: text, Err: err}
	}
	return v, nil
}

func decodeUTF8(data []byte) (string, error) {
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Pair is the text codec pair of one value type. A Pair is immutable.
type Pair[T fmt.Stringer] struct {
	Name   string
	Dumper Dumper[T]
	Loader Loader[T]
}

// NewPair returns the codec pair for a type named name.
func NewPair[T fmt.Stringer](name string, parse func(string) (T, error)) Pair[T] {
	return Pair[T]{
		Name:   name,
		Loader: Loader[T]{typeName: name, parse: parse},
	}
}

var (
	// LtreePair is the codec pair of ltree.Path.
	LtreePair = NewPair("ltree", ltree.ParsePath)

	// LqueryPair is the codec pair of ltree.Query.
	LqueryPair = NewPair("lquery", ltree.ParseQuery)
)

// DumpArray renders vs as an array literal such as {a.b,"x.*{1,2}"}.
func (p Pair[T]) DumpArray(vs []T) []byte {
	elems := make([]string, len(vs))
	for i, v := range vs {
		elems[i] = v.String()
	}
	return formatArray(elems)
}

// LoadArray parses an array literal. NULL elements are rejected.
func (p Pair[T]) LoadArray(data []byte) ([]T, error) {
	text, err := decodeUTF8(data)
	if err != nil {
		return nil, &ParseError{Type: p.Name + "[]", Text: string(data), Err: err}
	}
	elems, err := parseArray(text)
	if err != nil {
		return nil, &ParseError{Type: p.Name + "[]", Text: text, Err: err}
	}
	out := make([]T, 0, len(elems))
	for _, elem := range elems {
		if elem == nil {
			return nil, &ParseError{Type: p.Name + "[]", Text: text, Err: errNullElement}
		}
		v, err := p.Loader.parse(*elem)
		if err != nil {
			return nil, &ParseError{Type: p.Name + "[]", Text: text, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// Binding is a type-erased Pair, as stored in a Registry.
type Binding interface {
	TypeName() string
	valueType() reflect.Type
	encode(v any) ([]byte, bool)
	decode(data []byte) (any, error)
	encodeArray(v any) ([]byte, bool)
	decodeArray(data []byte) (any, error)
}

// TypeName returns the name of the bound type.
func (p Pair[T]) TypeName() string {
	return p.Name
}

func (p Pair[T]) valueType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (p Pair[T]) encode(v any) ([]byte, bool) {
	t, ok := v.(T)
	if !ok {
		return nil, false
	}
	return p.Dumper.Dump(t), true
}

func (p Pair[T]) decode(data []byte) (any, error) {
	v, err := p.Loader.Load(data)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (p Pair[T]) encodeArray(v any) ([]byte, bool) {
	ts, ok := v.([]T)
	if !ok {
		return nil, false
	}
	return p.DumpArray(ts), true
}

func (p Pair[T]) decodeArray(data []byte) (any, error) {
	vs, err := p.LoadArray(data)
	if err != nil {
		return nil, err
	}
	return vs, nil
}
