package ltree

import "regexp"

var (
	rePathLabel  = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	reQueryLabel = regexp.MustCompile(`^[a-zA-Z0-9_|]+$`)
)

// ValidateLabel checks raw against the path label grammar.
//
// An empty raw label is elided: ok is false and err is nil. A non-empty
// label outside [A-Za-z0-9_] returns a *ValidationError. Labels are never
// truncated or escaped.
func ValidateLabel(raw string) (label string, ok bool, err error) {
	if raw == "" {
		return "", false, nil
	}
	if !rePathLabel.MatchString(raw) {
		return "", false, &ValidationError{Grammar: GrammarPath, Label: raw}
	}
	return raw, true, nil
}

// ValidateQueryLabel resolves raw to a query label.
//
// Wildcard terms are tried first; anything ParseStar declines is checked
// against the query label grammar [A-Za-z0-9_|]. Empty input is elided.
func ValidateQueryLabel(raw string) (label QueryLabel, ok bool, err error) {
	if raw == "" {
		return nil, false, nil
	}
	if star, isStar := ParseStar(raw); isStar {
		return star, true, nil
	}
	if !reQueryLabel.MatchString(raw) {
		return nil, false, &ValidationError{Grammar: GrammarQuery, Label: raw}
	}
	return Word(raw), true, nil
}
