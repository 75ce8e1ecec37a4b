package analyzer

import (
	"github.com/erraggy/oaslint/issue"
)

// Summary aggregates the reports of a run.
type Summary struct {
	Files      int
	Fatal      int
	Issues     int
	Suppressed int
	Failures   int
	// BySeverity counts reported issues per severity name.
	BySeverity map[string]int
	// ByRule counts reported issues per rule key.
	ByRule map[string]int

	LinesOfCode    int
	Complexity     int
	SchemaCount    int
	OperationCount int
	PathCount      int
}

// Summarize aggregates reports. Nil reports (files skipped on
// cancellation) are ignored.
func Summarize(reports []*FileReport) Summary {
	s := Summary{BySeverity: map[string]int{}, ByRule: map[string]int{}}
	for _, r := range reports {
		if r == nil {
			continue
		}
		s.Files++
		if r.Fatal {
			s.Fatal++
		}
		s.Issues += len(r.Issues)
		s.Suppressed += len(r.Suppressed)
		s.Failures += len(r.Failures)
		for _, is := range r.Issues {
			s.BySeverity[is.Severity.String()]++
			s.ByRule[is.RuleKey]++
		}
		if m := r.Metrics; m != nil {
			s.LinesOfCode += m.LinesOfCode.Len()
			s.Complexity += m.Complexity
			s.SchemaCount += m.SchemaCount
			s.OperationCount += m.OperationCount
			s.PathCount += m.PathCount
		}
	}
	return s
}

// AtLeast reports whether any reported issue has a severity of at least
// min.
func AtLeast(reports []*FileReport, min issue.Severity) bool {
	for _, r := range reports {
		if r == nil {
			continue
		}
		for _, is := range r.Issues {
			if is.Severity >= min {
				return true
			}
		}
	}
	return false
}
