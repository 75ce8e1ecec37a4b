package checks

import "github.com/erraggy/oaslint/issue"

// Rule describes a check and how its issues are reported.
type Rule struct {
	// Key uniquely identifies the rule, e.g. "DefaultResponse".
	Key string
	// Title is a one-line summary shown in rule listings.
	Title string
	// Description explains what the rule looks for.
	Description string
	// Severity is attached to every issue the rule raises.
	Severity issue.Severity
	// Cost is the estimated remediation effort per issue in minutes, if known.
	Cost *float64
	// Tags group rules in listings, e.g. "convention".
	Tags []string
	// New creates the check for one file.
	New func() Check
}

// WithSeverity returns a copy of r with a different severity.
func (r Rule) WithSeverity(s issue.Severity) Rule {
	r.Severity = s
	return r
}

func minutes(m float64) *float64 {
	return &m
}
