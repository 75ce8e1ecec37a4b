// Package severity provides the severity levels attached to rules and the
// issues they raise.
//
// The levels are ordered from least to most severe:
// Info < Minor < Major < Critical < Blocker
//
// Every rule declares a default severity. Users can override it per rule
// through the configuration profile, which is why [Parse] accepts the
// lowercase names returned by [Severity.String].
package severity

import (
	"fmt"
	"strings"
)

// Severity indicates how urgently an issue should be addressed.
type Severity int

const (
	// SeverityInfo is a non-actionable observation.
	SeverityInfo Severity = iota

	// SeverityMinor is a quality flaw with little impact on API consumers.
	SeverityMinor

	// SeverityMajor is a quality flaw that affects how consumers use the API.
	// This is the default for most rules.
	SeverityMajor

	// SeverityCritical is a contract defect that will likely break consumers.
	SeverityCritical

	// SeverityBlocker means the document could not be analyzed properly.
	// Used by the parsing error rule.
	SeverityBlocker
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityMinor:
		return "minor"
	case SeverityMajor:
		return "major"
	case SeverityCritical:
		return "critical"
	case SeverityBlocker:
		return "blocker"
	default:
		return "unknown"
	}
}

// IsValid returns true if s is one of the defined levels.
func (s Severity) IsValid() bool {
	return s >= SeverityInfo && s <= SeverityBlocker
}

// SarifLevel maps the severity onto the SARIF result levels.
func (s Severity) SarifLevel() string {
	switch s {
	case SeverityBlocker, SeverityCritical:
		return "error"
	case SeverityMajor, SeverityMinor:
		return "warning"
	case SeverityInfo:
		return "note"
	default:
		return "none"
	}
}

// Parse converts a severity name (case-insensitive) into a Severity.
func Parse(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return SeverityInfo, nil
	case "minor":
		return SeverityMinor, nil
	case "major":
		return SeverityMajor, nil
	case "critical":
		return SeverityCritical, nil
	case "blocker":
		return SeverityBlocker, nil
	default:
		return SeverityInfo, fmt.Errorf("severity: unknown level %q", name)
	}
}
