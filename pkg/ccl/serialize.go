package ccl

import (
	"fmt"
	"strings"
)

// Serialize renders a Document back to CCL source text, one statement per
// line, in original statement order.
func Serialize(doc *Document) string {
	lines := make([]string, 0, len(doc.Statements))
	for _, stmt := range doc.Statements {
		lines = append(lines, serializeStatement(&stmt))
	}
	return strings.Join(lines, "\n")
}

func serializeStatement(stmt *Statement) string {
	switch stmt.Kind {
	case Permit:
		return serializeRule("permit", stmt)
	case Deny:
		return serializeRule("deny", stmt)
	case Require:
		return serializeRule("require", stmt)
	case Limit:
		count := int64(stmt.Count)
		periodVal, unit := bestTimeUnit(stmt.PeriodSecs)
		return fmt.Sprintf("limit %s %d per %d %s", stmt.Action, count, periodVal, unit)
	default:
		return ""
	}
}

func serializeRule(keyword string, stmt *Statement) string {
	line := fmt.Sprintf("%s %s on '%s'", keyword, stmt.Action, stmt.Resource)
	if stmt.Cond != nil {
		line += fmt.Sprintf(" when %s %s '%s'", stmt.Cond.Field, stmt.Cond.Operator, stmt.Cond.Value)
	}
	return line
}

func bestTimeUnit(seconds float64) (int64, string) {
	s := int64(seconds)
	switch {
	case s > 0 && s%86400 == 0:
		return s / 86400, "days"
	case s > 0 && s%3600 == 0:
		return s / 3600, "hours"
	case s > 0 && s%60 == 0:
		return s / 60, "minutes"
	default:
		return s, "seconds"
	}
}
