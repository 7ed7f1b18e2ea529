package codec

import (
	"errors"
	"fmt"
	"strings"
)

var errNullElement = errors.New("null array element")

// formatArray renders a one-dimensional array literal, quoting elements
// that are empty, spell NULL, or contain delimiters, quotes, backslashes
// or whitespace.
func formatArray(elems []string) []byte {
	var b strings.Builder
	b.WriteByte('{')
	for i, elem := range elems {
		if i > 0 {
			b.WriteByte(',')
		}
		if !needsQuote(elem) {
			b.WriteString(elem)
			continue
		}
		b.WriteByte('"')
		for _, r := range elem {
			if r == '"' || r == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return []byte(b.String())
}

func needsQuote(s string) bool {
	if s == "" || strings.EqualFold(s, "null") {
		return true
	}
	return strings.ContainsAny(s, "{},\"\\"+arraySpace)
}

// parseArray parses a one-dimensional array literal. A nil element is an
// unquoted NULL.
func parseArray(s string) ([]*string, error) {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, fmt.Errorf("array literal must be enclosed in braces")
	}
	body := s[1 : len(s)-1]
	if strings.TrimLeft(body, arraySpace) == "" {
		return nil, nil
	}

	var elems []*string
	i := 0
	for {
		i = skipSpace(body, i)
		var elem *string
		var err error
		if i < len(body) && body[i] == '"' {
			elem, i, err = parseQuotedElement(body, i)
			i = skipSpace(body, i)
		} else {
			elem, i, err = parseBareElement(body, i)
		}
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		if i == len(body) {
			return elems, nil
		}
		if body[i] != ',' {
			return nil, fmt.Errorf("unexpected %q at offset %d", body[i], i+1)
		}
		i++
	}
}

// arraySpace is the whitespace allowed around array elements.
const arraySpace = " \t\n\r\v\f"

func skipSpace(body string, i int) int {
	for i < len(body) && strings.IndexByte(arraySpace, body[i]) >= 0 {
		i++
	}
	return i
}

func parseQuotedElement(body string, i int) (*string, int, error) {
	var b strings.Builder
	for i++; i < len(body); i++ {
		switch c := body[i]; c {
		case '\\':
			i++
			if i == len(body) {
				return nil, i, fmt.Errorf("unterminated escape")
			}
			b.WriteByte(body[i])
		case '"':
			elem := b.String()
			return &elem, i + 1, nil
		default:
			b.WriteByte(c)
		}
	}
	return nil, i, fmt.Errorf("unterminated quoted element")
}

func parseBareElement(body string, i int) (*string, int, error) {
	end := strings.IndexByte(body[i:], ',')
	if end == -1 {
		end = len(body)
	} else {
		end += i
	}
	elem := strings.TrimSpace(body[i:end])
	switch {
	case elem == "":
		return nil, end, fmt.Errorf("empty unquoted element at offset %d", i+1)
	case strings.ContainsAny(elem, "{}\"\\"):
		return nil, end, fmt.Errorf("nested or malformed element %q", elem)
	case strings.EqualFold(elem, "null"):
		return nil, end, nil
	}
	return &elem, end, nil
}
