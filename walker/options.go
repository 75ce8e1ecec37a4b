package walker

// DefaultMaxDepth is the deepest nesting level visited by default.
const DefaultMaxDepth = 1000

// Option configures a Walker.
type Option func(*Walker)

// WithMaxDepth sets the maximum nesting depth visited.
// If depth is not positive, it is silently ignored and the default (1000) is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithSkippedHandler sets a handler called when a node is not visited.
func WithSkippedHandler(fn SkippedHandler) Option {
	return func(w *Walker) {
		w.onSkipped = fn
	}
}
