package tree

// Outcome is the result of parsing one file. It is one of [Success],
// [ValidationFailed] or [Fatal].
type Outcome interface {
	outcome()
}

// ValidationIssue is a structural problem the parser found at a node.
type ValidationIssue struct {
	Message string
	Node    Node
}

// Success means the document was parsed. Issues holds non-fatal validation
// problems collected in lenient mode.
type Success struct {
	Root   Node
	Tokens []Token
	Issues []ValidationIssue
}

// ValidationFailed means the document was parsed but violated the schema in
// strict mode. The partial tree is still available.
type ValidationFailed struct {
	Root   Node
	Tokens []Token
	Causes []ValidationIssue
}

// Fatal means no tree could be built.
type Fatal struct {
	Message string
	// Line is the 1-based line of the failure (0 if unknown).
	Line int
	// Column is the 1-based column of the failure (0 if unknown).
	Column int
}

func (Success) outcome()          {}
func (ValidationFailed) outcome() {}
func (Fatal) outcome()            {}

// Normalize returns the value form of an outcome given by pointer, such
// as *Fatal, so callers only need to match Success, ValidationFailed and
// Fatal. A nil pointer yields nil.
func Normalize(o Outcome) Outcome {
	switch v := o.(type) {
	case *Success:
		if v == nil {
			return nil
		}
		return *v
	case *ValidationFailed:
		if v == nil {
			return nil
		}
		return *v
	case *Fatal:
		if v == nil {
			return nil
		}
		return *v
	default:
		return o
	}
}

// RootOf returns the tree of an outcome, or nil for Fatal and nil outcomes.
func RootOf(o Outcome) Node {
	switch v := Normalize(o).(type) {
	case Success:
		return v.Root
	case ValidationFailed:
		return v.Root
	default:
		return nil
	}
}

// TokensOf returns the raw token stream of an outcome, or nil for Fatal.
func TokensOf(o Outcome) []Token {
	switch v := Normalize(o).(type) {
	case Success:
		return v.Tokens
	case ValidationFailed:
		return v.Tokens
	default:
		return nil
	}
}
