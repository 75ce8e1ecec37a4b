// Package metrics derives source metrics from a parsed document: lines of
// code and comment, lines carrying a suppression marker, structural
// complexity and entity counts.
//
// [Extract] computes everything in a single walk of the tree. The visitors
// it composes are exported so hosts can run them alongside rule checks:
//
//	var m metrics.FileMetrics
//	errs := walker.Walk(file,
//	    metrics.ComplexityVisitor(&m),
//	    metrics.CountVisitor(&m),
//	    metrics.LineVisitor(&m),
//	)
//
// # Suppression Markers
//
// A comment containing one of [CommentMarkers] (for example "# NOSONAR"),
// or a property key equal to one of [ExtensionMarkers] (for example
// "x-nosonar: true"), marks its line as suppressed. Suppressed lines count
// as code, never as comment, and issues reported on them are dropped by the
// analyzer.
package metrics
