package checks

import "github.com/erraggy/oaslint/tree"

// Check inspects the nodes of the kinds it subscribes to.
type Check interface {
	// SubscribedKinds lists the node kinds passed to VisitNode. A check
	// with no kinds is never handed a node.
	SubscribedKinds() []tree.Kind
	// VisitNode inspects one node.
	VisitNode(ctx *Context, n tree.Node) error
}

// FileStarter is implemented by checks that need to run before the first
// node of a file.
type FileStarter interface {
	VisitFile(ctx *Context) error
}

// FileEnder is implemented by checks that need to run after the last node
// of a file.
type FileEnder interface {
	LeaveFile(ctx *Context) error
}

// FileScanner is implemented by checks that inspect the file as a whole.
// ScanFile runs after the traversal and is the only hook invoked on files
// that could not be parsed.
type FileScanner interface {
	ScanFile(ctx *Context) error
}

// Funcs adapts plain functions into a Check. Nil functions are skipped.
type Funcs struct {
	Kinds []tree.Kind
	Start func(ctx *Context) error
	Node  func(ctx *Context, n tree.Node) error
	End   func(ctx *Context) error
	Scan  func(ctx *Context) error
}

var (
	_ Check       = (*Funcs)(nil)
	_ FileStarter = (*Funcs)(nil)
	_ FileEnder   = (*Funcs)(nil)
	_ FileScanner = (*Funcs)(nil)
)

// SubscribedKinds implements Check.
func (f *Funcs) SubscribedKinds() []tree.Kind { return f.Kinds }

// VisitNode implements Check.
func (f *Funcs) VisitNode(ctx *Context, n tree.Node) error {
	if f.Node == nil {
		return nil
	}
	return f.Node(ctx, n)
}

// VisitFile implements FileStarter.
func (f *Funcs) VisitFile(ctx *Context) error {
	if f.Start == nil {
		return nil
	}
	return f.Start(ctx)
}

// LeaveFile implements FileEnder.
func (f *Funcs) LeaveFile(ctx *Context) error {
	if f.End == nil {
		return nil
	}
	return f.End(ctx)
}

// ScanFile implements FileScanner.
func (f *Funcs) ScanFile(ctx *Context) error {
	if f.Scan == nil {
		return nil
	}
	return f.Scan(ctx)
}
