// Package report renders analysis results as colored text, JSON, YAML or
// SARIF 2.1.0.
package report
