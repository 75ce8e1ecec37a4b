package checks

import (
	"errors"
	"fmt"

	"github.com/erraggy/oaslint/issue"
	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/tree"
	"github.com/erraggy/oaslint/walker"
)

// Result holds the outcome of running rules against one file.
type Result struct {
	// Issues raised by the checks that completed. No deduplication is done.
	Issues []issue.Issue
	// Failures holds one *oaserrors.CheckError per check that failed, plus
	// the context error if the run was cancelled.
	Failures []error
}

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	walker *walker.Walker
}

// WithWalker sets the walker used for the shared traversal.
func WithWalker(w *walker.Walker) RunOption {
	return func(c *runConfig) {
		c.walker = w
	}
}

// run is one check instance bound to its rule.
type run struct {
	rule   Rule
	check  Check
	ctx    *Context
	failed bool
}

// Run evaluates rules against f in a single traversal. Each rule gets a
// fresh check. A check that fails contributes no issues; the others are
// unaffected. FileScanner hooks run after the traversal, also for files
// without a tree.
func Run(f *walker.File, rules []Rule, opts ...RunOption) Result {
	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.walker == nil {
		cfg.walker = walker.New()
	}

	runs := make([]*run, 0, len(rules))
	visitors := make([]*walker.Visitor, 0, len(rules))
	byKey := make(map[string]*run, len(rules))
	for _, rule := range rules {
		r := &run{rule: rule, check: rule.New(), ctx: NewContext(f, rule)}
		runs = append(runs, r)
		byKey[rule.Key] = r
		visitors = append(visitors, r.visitor())
	}

	var res Result
	for _, err := range cfg.walker.Walk(f, visitors...) {
		var checkErr *oaserrors.CheckError
		if errors.As(err, &checkErr) {
			if r, ok := byKey[checkErr.Rule]; ok {
				r.failed = true
			}
		}
		res.Failures = append(res.Failures, err)
	}

	for _, r := range runs {
		scanner, ok := r.check.(FileScanner)
		if !ok || r.failed {
			continue
		}
		if err := r.scan(scanner); err != nil {
			r.failed = true
			res.Failures = append(res.Failures, err)
		}
	}

	for _, r := range runs {
		if !r.failed {
			res.Issues = append(res.Issues, r.ctx.Issues()...)
		}
	}
	return res
}

func (r *run) visitor() *walker.Visitor {
	v := &walker.Visitor{
		Name:  r.rule.Key,
		Kinds: r.check.SubscribedKinds(),
		OnNode: func(_ *walker.File, n tree.Node) error {
			return r.check.VisitNode(r.ctx, n)
		},
	}
	if s, ok := r.check.(FileStarter); ok {
		v.OnFileStart = func(*walker.File) error { return s.VisitFile(r.ctx) }
	}
	if e, ok := r.check.(FileEnder); ok {
		v.OnFileEnd = func(*walker.File) error { return e.LeaveFile(r.ctx) }
	}
	return v
}

// scan runs a FileScanner hook, converting a failure into a CheckError.
func (r *run) scan(s FileScanner) (err error) {
	path := r.ctx.File().Path
	defer func() {
		if p := recover(); p != nil {
			err = &oaserrors.CheckError{Rule: r.rule.Key, Path: path, Panicked: true, Cause: fmt.Errorf("%v", p)}
		}
	}()
	if scanErr := s.ScanFile(r.ctx); scanErr != nil {
		return &oaserrors.CheckError{Rule: r.rule.Key, Path: path, Cause: scanErr}
	}
	return nil
}
