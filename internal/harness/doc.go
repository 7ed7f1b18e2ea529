// Package harness runs conformance scenarios against the ltree value types
// and their codecs.
//
// # Scenario Format
//
// Scenarios are YAML (or CUE) files with the following structure:
//
//	name: fusion
//	description: "Adjacent wildcard terms merge"
//	cases:
//	  - name: concat_steps
//	    type: lquery          # ltree | lquery
//	    input: ["foo.bar"]    # text inputs, concatenated
//	    labels: ["*{1}"]      # optional labels input, appended whole
//	    concat: ["*{2}", "x"] # optional follow-up Concat steps
//	    want: "foo.bar.*{3}.x"
//	    len: 4
//	  - name: rejects_dash
//	    type: ltree
//	    input: ["a-b"]
//	    error: validation     # validation | parse
//
// Every value a case produces is also saved to and loaded back from an
// in-memory store, so a passing case proves the codec round trip too.
//
// # Golden Files
//
// RunWithGolden compares the per-case text states against
// testdata/golden/<scenario>.golden. To regenerate:
//
//	go test ./internal/harness -update
package harness
