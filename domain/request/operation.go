// Package request defines the request and result model for the AI
// orchestration core.
package request

// Operation identifies the kind of AI request. It doubles as the
// namespace for shared-cache keys so the four kinds never collide.
type Operation string

const (
	// OpAnalysis analyzes a project description and derives defaults.
	OpAnalysis Operation = "analysis"
	// OpSuggestions produces design-compatibility suggestions.
	OpSuggestions Operation = "suggestions"
	// OpEnhancement rewrites a prompt into an optimized variant.
	OpEnhancement Operation = "enhancement"
	// OpChat answers a free-form conversational message.
	OpChat Operation = "chat"
)

// Operations lists all valid operations.
func Operations() []Operation {
	return []Operation{OpAnalysis, OpSuggestions, OpEnhancement, OpChat}
}

// Valid reports whether the operation is one of the known kinds.
func (o Operation) Valid() bool {
	switch o {
	case OpAnalysis, OpSuggestions, OpEnhancement, OpChat:
		return true
	default:
		return false
	}
}

// String returns the operation as a string.
func (o Operation) String() string {
	return string(o)
}
