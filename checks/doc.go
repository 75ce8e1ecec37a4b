// Package checks provides the rule catalog and the runner that evaluates
// rules against parsed documents.
//
// A rule is a [Rule] record: metadata (key, title, severity, remediation
// cost) plus a constructor for its [Check]. A fresh check is created for
// every file, so checks may keep per-file state in their fields.
//
// # Writing a Check
//
// A check subscribes to node kinds and is handed every node of those kinds:
//
//	type summaryCheck struct{}
//
//	func (summaryCheck) SubscribedKinds() []tree.Kind {
//	    return grammar.OperationKinds.Kinds()
//	}
//
//	func (summaryCheck) VisitNode(ctx *checks.Context, n tree.Node) error {
//	    if n.Get("summary").IsMissing() {
//	        ctx.AddIssue("Provide a summary for each operation.", n)
//	    }
//	    return nil
//	}
//
// Checks may also implement [FileStarter], [FileEnder] and [FileScanner].
// [Funcs] adapts plain functions when a type is not worth declaring.
//
// # Running Checks
//
// [Run] walks the file once for all checks. A check that returns an error
// or panics is dropped for that file: its issues are discarded and the
// failure is returned in [Result.Failures].
//
//	result := checks.Run(file, checks.DefaultRegistry().Rules())
//	for _, is := range result.Issues {
//	    fmt.Println(is)
//	}
package checks
