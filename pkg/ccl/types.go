// Package ccl implements the Covenant Constraint Language: a small
// domain-specific language for expressing permits, denies, obligations, and
// rate limits inside a covenant. It provides a lexer/parser producing a
// structured Document, a matcher and evaluator with deny-wins,
// specificity-ranked semantics, and an algebra for narrowing validation and
// policy merge.
package ccl

// StatementKind enumerates the four CCL statement types.
type StatementKind int

const (
	Permit StatementKind = iota
	Deny
	Require
	Limit
)

func (k StatementKind) String() string {
	switch k {
	case Permit:
		return "Permit"
	case Deny:
		return "Deny"
	case Require:
		return "Require"
	case Limit:
		return "Limit"
	default:
		return "Unknown"
	}
}

// Condition compares a context field to a value using a fixed operator set.
type Condition struct {
	Field    string
	Operator string
	Value    string
}

// Statement is one parsed CCL rule.
type Statement struct {
	Kind     StatementKind
	Action   string
	Resource string
	Cond     *Condition

	// Severity is parsed from an optional "severity <ident>" clause and
	// carried on the statement but never consulted by Evaluate — reserved
	// per the language's own design notes.
	Severity string

	// Limit-only fields.
	Metric     string
	Count      float64
	PeriodSecs float64
	TimeUnit   string
}

// Document is a parsed CCL policy: the original statement order plus four
// partitioned views.
type Document struct {
	Statements []Statement
	Permits    []Statement
	Denies     []Statement
	Obligations []Statement
	Limits     []Statement
}

// buildDocument partitions statements into the four typed views, preserving
// original order within each view.
func buildDocument(statements []Statement) Document {
	doc := Document{Statements: statements}
	for _, stmt := range statements {
		switch stmt.Kind {
		case Permit:
			doc.Permits = append(doc.Permits, stmt)
		case Deny:
			doc.Denies = append(doc.Denies, stmt)
		case Require:
			doc.Obligations = append(doc.Obligations, stmt)
		case Limit:
			doc.Limits = append(doc.Limits, stmt)
		}
	}
	return doc
}

// EvaluationResult is the outcome of Evaluate.
type EvaluationResult struct {
	Permitted   bool
	MatchedRule *Statement
	AllMatches  []Statement
	Reason      string
}

// RateLimitResult is the outcome of CheckRateLimit.
type RateLimitResult struct {
	Exceeded  bool
	Remaining int64
	Limit     int64
}

// NarrowingViolation describes one way a child policy fails to narrow its parent.
type NarrowingViolation struct {
	Message string
}

// NarrowingResult is the outcome of ValidateNarrowing.
type NarrowingResult struct {
	Valid      bool
	Violations []NarrowingViolation
}
