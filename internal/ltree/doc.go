// Package ltree provides value types for hierarchical label paths and the
// patterns used to match them.
//
// Two mini-languages are supported:
//
//	path   := label ("." label)*
//	label  := [A-Za-z0-9_]+
//	query  := qlabel ("." qlabel)*
//	qlabel := [A-Za-z0-9_|]+ | star
//	star   := "*" | "*{" INT "}" | "*{" INT? "," INT? "}"
//
// Path and Query are immutable. Every operation that looks like mutation
// (Concat, RConcat, Slice) returns a new value, so values can be shared
// between goroutines without locking.
//
// # Construction
//
// Values are built from an explicit Input union instead of runtime type
// inspection:
//
//	ParsePath("a.b.c")                  // text, split on "."
//	PathFromLabels("a", "b")            // labels, validated whole
//	NewPath(Text("a.b"), Int(42), nil)  // concatenation of inputs
//
// Empty labels and nil inputs are elided, never stored.
//
// # Fusion
//
// Adjacent wildcard terms in a Query are merged into one equivalent term,
// both at construction and across concatenation:
//
//	MustParseQuery("foo.*.*.bar").String() == "foo.*.bar"
//	MustParseQuery("a.*{1}").Concat(Text("*{2,}")) // a.*{3,}
//
// # Zero bounds
//
// A Star bound of 0 means "unset". "*{0}" therefore parses to the same
// value as "*", and "*{0,3}" to "*{,3}".
package ltree
