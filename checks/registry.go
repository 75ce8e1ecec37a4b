package checks

import (
	"slices"
	"strings"
	"sync"

	"github.com/erraggy/oaslint/oaserrors"
)

// Registry holds the rules available to an analysis. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// DefaultRegistry creates a registry holding the built-in rules.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	if err := r.Register(BuiltinRules()...); err != nil {
		panic(err) // built-in keys are unique
	}
	return r
}

// Register adds rules to the registry. It fails without registering
// anything if a rule has no key or constructor, or if a key is already
// taken.
func (r *Registry) Register(rules ...Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make(map[string]bool, len(rules))
	for _, rule := range rules {
		switch {
		case rule.Key == "":
			return &oaserrors.ConfigError{Option: "rule", Message: "rule key must not be empty"}
		case rule.New == nil:
			return &oaserrors.ConfigError{Option: "rule", Value: rule.Key, Message: "rule has no check constructor"}
		case pending[rule.Key]:
			return &oaserrors.ConfigError{Option: "rule", Value: rule.Key, Message: "rule registered twice"}
		}
		if _, dup := r.rules[rule.Key]; dup {
			return &oaserrors.ConfigError{Option: "rule", Value: rule.Key, Message: "rule already registered"}
		}
		pending[rule.Key] = true
	}
	for _, rule := range rules {
		r.rules[rule.Key] = rule
	}
	return nil
}

// Rules returns every registered rule sorted by key.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, rule)
	}
	slices.SortFunc(out, func(a, b Rule) int { return strings.Compare(a.Key, b.Key) })
	return out
}

// Lookup returns the rule registered under key.
func (r *Registry) Lookup(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[key]
	return rule, ok
}

// Select returns the rules to run: the enabled keys (every rule when enable
// is empty) minus the disabled keys, sorted by key. Unknown keys are a
// configuration error.
func (r *Registry) Select(enable, disable []string) ([]Rule, error) {
	for _, key := range slices.Concat(enable, disable) {
		if _, ok := r.Lookup(key); !ok {
			return nil, &oaserrors.ConfigError{Option: "rules", Value: key, Message: "unknown rule"}
		}
	}

	var out []Rule
	for _, rule := range r.Rules() {
		if len(enable) > 0 && !slices.Contains(enable, rule.Key) {
			continue
		}
		if slices.Contains(disable, rule.Key) {
			continue
		}
		out = append(out, rule)
	}
	return out, nil
}
