// Package oaslint is a static-analysis core for OpenAPI documents.
//
// oaslint reads Swagger 2.0 and OpenAPI 3.x documents in YAML or JSON,
// builds a kind-tagged tree linked to the source tokens, and runs rule
// checks, metrics and duplicate-detection token extraction over it.
//
// # Overview
//
// The library consists of these packages:
//
//   - tree: the document tree, tokens, JSON pointers and parse outcomes
//   - grammar: node kinds for Swagger 2.0 and OpenAPI 3.x
//   - parser: builds trees from YAML or JSON
//   - walker: dispatches tree nodes to visitors by kind
//   - checks: the rule registry, the runner and the built-in rules
//   - metrics: lines of code, comment lines, suppressed lines, complexity
//     and entity counts
//   - cpd: tokens for copy-paste detection
//   - issue: issues and their locations
//   - analyzer: the pipeline tying the above together for one or many files
//
// # Installation
//
//	go get github.com/erraggy/oaslint
//
// # Quick Start
//
// Analyze a document:
//
//	import "github.com/erraggy/oaslint/analyzer"
//
//	a := analyzer.New()
//	report, err := a.AnalyzeFile(ctx, "openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, is := range report.Issues {
//		fmt.Println(is)
//	}
//	fmt.Printf("complexity: %d\n", report.Metrics.Complexity)
//
// Write a rule:
//
//	import "github.com/erraggy/oaslint/checks"
//
//	rule := checks.Rule{
//		Key:      "OperationDescription",
//		Severity: issue.SeverityMinor,
//		New: func() checks.Check {
//			return &checks.Funcs{
//				Kinds: []tree.Kind{grammar.OAS3Operation},
//				Node: func(ctx *checks.Context, n tree.Node) error {
//					if n.At("/description").IsMissing() {
//						ctx.AddIssue("Describe this operation.", n)
//					}
//					return nil
//				},
//			}
//		},
//	}
//	reg := checks.DefaultRegistry()
//	if err := reg.Register(rule); err != nil {
//		log.Fatal(err)
//	}
//	a := analyzer.New(analyzer.WithRegistry(reg))
//
// # Command line
//
// The oaslint command analyzes files and prints issues as text, JSON,
// YAML or SARIF:
//
//	oaslint analyze --format sarif api/*.yaml
//
// See cmd/oaslint for the full list of commands.
package oaslint
