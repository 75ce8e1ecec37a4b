package analyzer

import (
	"github.com/erraggy/oaslint/checks"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/walker"
)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRegistry sets the registry whose rules are run. Default: the built-in
// rules.
func WithRegistry(r *checks.Registry) Option {
	return func(a *Analyzer) {
		a.registry = r
	}
}

// WithRules sets the exact rules to run, taking precedence over the
// registry, even when empty. Use it to run a configured selection with
// severity overrides.
func WithRules(rules []checks.Rule) Option {
	return func(a *Analyzer) {
		a.rules = append([]checks.Rule{}, rules...)
	}
}

// WithParserOptions adds options used for every parse.
func WithParserOptions(opts ...parser.Option) Option {
	return func(a *Analyzer) {
		a.parserOpts = append(a.parserOpts, opts...)
	}
}

// WithWalkerOptions adds options used for every traversal.
func WithWalkerOptions(opts ...walker.Option) Option {
	return func(a *Analyzer) {
		a.walkerOpts = append(a.walkerOpts, opts...)
	}
}

// WithLogger sets a structured logger. If nil, logging is disabled.
func WithLogger(l parser.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// WithConcurrency sets the number of files analyzed in parallel by
// AnalyzeFiles. Non-positive values keep the default (1).
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}
