// Package analyzer runs the full analysis pipeline over OpenAPI documents:
// parsing, rule checks, metrics, duplicate-detection tokens and issue
// suppression.
//
// # Quick Start
//
//	a := analyzer.New(analyzer.WithConcurrency(4))
//	reports, err := a.AnalyzeFiles(ctx, []string{"petstore.yaml", "users.json"})
//	if err != nil {
//		return err // cancelled
//	}
//	for _, r := range reports {
//		for _, is := range r.Issues {
//			fmt.Printf("%s:%d %s\n", r.Path, is.Line(), is.Message())
//		}
//	}
//
// Every file yields a report. A file that cannot be parsed is reported by
// the ParsingError rule and has no metrics; a rule that fails on a file is
// logged and contributes no issues for that file.
//
// # Suppression
//
// Issues whose primary line carries a suppression marker (see package
// metrics) are moved from Issues to Suppressed. The filter applies to every
// rule.
package analyzer
