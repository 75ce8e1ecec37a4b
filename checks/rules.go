package checks

// Built-in rule keys.
const (
	ParsingErrorKey         = "ParsingError"
	DefaultResponseKey      = "DefaultResponse"
	ProvideOpSummaryKey     = "ProvideOpSummary"
	DocumentedTagKey        = "DocumentedTag"
	PathSpinalCaseKey       = "PathSpinalCase"
	DuplicateOperationIDKey = "DuplicateOperationId"
)

// BuiltinRules returns the rules shipped with oaslint.
func BuiltinRules() []Rule {
	return []Rule{
		ParsingErrorRule,
		DefaultResponseRule,
		ProvideOpSummaryRule,
		DocumentedTagRule,
		PathSpinalCaseRule,
		DuplicateOperationIDRule,
	}
}
