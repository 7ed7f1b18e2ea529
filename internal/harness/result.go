package harness

import "fmt"

// Result is the outcome of running a scenario.
type Result struct {
	// Scenario is the scenario name.
	Scenario string

	// Pass is true if every case passed.
	Pass bool

	// Cases holds per-case outcomes in scenario order.
	Cases []CaseResult

	// Errors collects failure messages prefixed with the case name.
	Errors []string
}

// CaseResult is the outcome of a single case.
type CaseResult struct {
	Name string `json:"name"`

	// States are the renderings after construction and after each concat
	// step.
	States []string `json:"states,omitempty"`

	// Error is the message of the error the case produced, if any.
	Error string `json:"error,omitempty"`

	Pass   bool     `json:"-"`
	Errors []string `json:"-"`
}

func (c *CaseResult) fail(format string, args ...any) {
	c.Errors = append(c.Errors, fmt.Sprintf(format, args...))
}
