// Package oaserrors provides structured error types for the oaslint library.
//
// Import path: github.com/erraggy/oaslint/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between a document that could not be read at all,
// a document that violates the OpenAPI structure, and a rule that failed while
// it was inspecting a document.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON syntax failures (no tree could be built)
//   - [ReferenceError]: $ref values that cannot be resolved, or that loop onto themselves
//   - [ValidationError]: OpenAPI structural violations found by the parser
//   - [CheckError]: a rule check that returned an error or panicked while visiting a file
//   - [ResourceLimitError]: traversal limits (nesting depth) that were exceeded
//   - [ConfigError]: invalid configuration, options or rule registrations
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrCheck]: Matches any [CheckError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	report := a.AnalyzeFile(ctx, "api.yaml")
//	for _, err := range report.Failures {
//	    var checkErr *oaserrors.CheckError
//	    if errors.As(err, &checkErr) {
//	        log.Printf("rule %s failed on %s: %v", checkErr.Rule, checkErr.Path, checkErr.Cause)
//	    }
//	}
package oaserrors
