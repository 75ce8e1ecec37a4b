package checks

import (
	"github.com/erraggy/oaslint/issue"
	"github.com/erraggy/oaslint/tree"
	"github.com/erraggy/oaslint/walker"
)

// Context is handed to a check while it inspects one file. It collects the
// issues the check raises.
type Context struct {
	file   *walker.File
	rule   Rule
	issues []issue.Issue
}

// NewContext creates a Context for running rule against f outside of Run,
// typically in tests.
func NewContext(f *walker.File, rule Rule) *Context {
	return &Context{file: f, rule: rule}
}

// File returns the file being checked.
func (c *Context) File() *walker.File { return c.file }

// Outcome returns the parse outcome of the file being checked.
func (c *Context) Outcome() tree.Outcome { return c.file.Outcome }

// Rule returns the rule the check belongs to.
func (c *Context) Rule() Rule { return c.rule }

// NewIssue returns an issue of the current rule at loc without adding it.
// Use it to attach secondary locations before AddPreciseIssue.
func (c *Context) NewIssue(loc issue.Location) issue.Issue {
	is := issue.New(c.rule.Key, c.rule.Severity, loc)
	if c.rule.Cost != nil {
		is = is.WithCost(*c.rule.Cost)
	}
	return is
}

// AddIssue reports msg on n: on its property key when it has one, on its
// span otherwise. A nil or missing node reports on the whole file.
func (c *Context) AddIssue(msg string, n tree.Node) {
	c.AddPreciseIssue(c.NewIssue(issue.AtNode(msg, n)))
}

// AddTokenIssue reports msg on a single token.
func (c *Context) AddTokenIssue(msg string, tok tree.Token) {
	c.AddPreciseIssue(c.NewIssue(issue.AtToken(msg, tok)))
}

// AddLineIssue reports msg on a whole line.
func (c *Context) AddLineIssue(msg string, line int) {
	c.AddPreciseIssue(c.NewIssue(issue.AtLine(msg, line)))
}

// AddFileIssue reports msg on the whole file.
func (c *Context) AddFileIssue(msg string) {
	c.AddPreciseIssue(c.NewIssue(issue.AtFile(msg)))
}

// AddPreciseIssue adds a fully built issue. A missing rule key is filled in
// with the current rule.
func (c *Context) AddPreciseIssue(is issue.Issue) {
	if is.RuleKey == "" {
		is.RuleKey = c.rule.Key
		is.Severity = c.rule.Severity
	}
	c.issues = append(c.issues, is)
}

// Issues returns the issues raised so far.
func (c *Context) Issues() []issue.Issue { return c.issues }
