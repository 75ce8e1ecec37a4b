package issue

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/erraggy/oaslint/internal/severity"
)

// Severity indicates how urgently an issue should be addressed.
type Severity = severity.Severity

// Severity levels, from least to most severe.
const (
	SeverityInfo     = severity.SeverityInfo
	SeverityMinor    = severity.SeverityMinor
	SeverityMajor    = severity.SeverityMajor
	SeverityCritical = severity.SeverityCritical
	SeverityBlocker  = severity.SeverityBlocker
)

// ParseSeverity converts a severity name (case-insensitive) into a Severity.
func ParseSeverity(name string) (Severity, error) {
	return severity.Parse(name)
}

// Issue is a single rule violation found in a document.
type Issue struct {
	// RuleKey identifies the rule that raised the issue.
	RuleKey string
	// Severity is the rule's severity, possibly overridden by configuration.
	Severity Severity
	// Primary is where the issue is reported; its message is the issue message.
	Primary Location
	// Secondary lists related locations, such as an earlier definition.
	Secondary []Location
	// Cost is the estimated remediation effort in minutes, if known.
	Cost *float64
}

// New creates an issue for rule key at the given location.
func New(key string, sev Severity, primary Location) Issue {
	return Issue{RuleKey: key, Severity: sev, Primary: primary}
}

// WithCost returns a copy of i with the remediation cost set.
func (i Issue) WithCost(cost float64) Issue {
	i.Cost = &cost
	return i
}

// WithSecondary returns a copy of i with locs appended to its secondary
// locations.
func (i Issue) WithSecondary(locs ...Location) Issue {
	i.Secondary = append(slices.Clip(i.Secondary), locs...)
	return i
}

// Message returns the primary message.
func (i Issue) Message() string {
	return i.Primary.Message
}

// Line returns the primary line, or UndefinedLine for file-level issues.
func (i Issue) Line() int {
	return i.Primary.StartLine
}

// HasLocation reports whether the issue points at a line.
func (i Issue) HasLocation() bool {
	return i.Primary.HasLine()
}

// String returns a one-line description of the issue.
// Uses different symbols based on severity level:
// - "✗" for Blocker or Critical
// - "⚠" for Major or Minor
// - "ℹ" for Info
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case SeverityBlocker, SeverityCritical:
		symbol = "✗"
	case SeverityMajor, SeverityMinor:
		symbol = "⚠"
	case SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}
	return fmt.Sprintf("%s %s [%s]: %s", symbol, i.Primary, i.RuleKey, i.Primary.Message)
}

// Sort orders issues by line, offset and rule key. File-level issues come
// first. The order is only meant for stable output.
func Sort(issues []Issue) {
	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Or(
			cmp.Compare(a.Primary.StartLine, b.Primary.StartLine),
			cmp.Compare(a.Primary.StartLineOffset, b.Primary.StartLineOffset),
			cmp.Compare(a.RuleKey, b.RuleKey),
		)
	})
}
