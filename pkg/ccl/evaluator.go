package ccl

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

func evaluateCondition(cond *Condition, context map[string]string) bool {
	fieldValue, ok := context[cond.Field]
	if !ok {
		return false
	}

	switch cond.Operator {
	case "=":
		return fieldValue == cond.Value
	case "!=":
		return fieldValue != cond.Value
	case "<", ">", "<=", ">=":
		a, errA := strconv.ParseFloat(fieldValue, 64)
		b, errB := strconv.ParseFloat(cond.Value, 64)
		if errA != nil || errB != nil {
			return false
		}
		switch cond.Operator {
		case "<":
			return a < b
		case ">":
			return a > b
		case "<=":
			return a <= b
		case ">=":
			return a >= b
		}
		return false
	case "contains":
		return strings.Contains(fieldValue, cond.Value)
	case "not_contains":
		return !strings.Contains(fieldValue, cond.Value)
	case "starts_with":
		return strings.HasPrefix(fieldValue, cond.Value)
	case "ends_with":
		return strings.HasSuffix(fieldValue, cond.Value)
	case "matches":
		// Treated as string equality, not a regular expression, per the
		// language's own design notes.
		return fieldValue == cond.Value
	default:
		return false
	}
}

func statementMatches(stmt *Statement, action, resource string, context map[string]string) bool {
	if !MatchAction(stmt.Action, action) || !MatchResource(stmt.Resource, resource) {
		return false
	}
	if stmt.Cond == nil {
		return true
	}
	return evaluateCondition(stmt.Cond, context)
}

// Evaluate resolves an action/resource/context tuple against a Document.
// Resolution order: collect all matching permits/denies, collect matching
// obligations (non-decisive), default-deny if nothing matched, else rank by
// specificity descending with deny winning ties.
func Evaluate(doc *Document, action, resource string, context map[string]string) EvaluationResult {
	var allMatches []Statement
	var matchedPermitDeny []Statement

	for _, stmt := range doc.Permits {
		s := stmt
		if statementMatches(&s, action, resource, context) {
			matchedPermitDeny = append(matchedPermitDeny, s)
			allMatches = append(allMatches, s)
		}
	}
	for _, stmt := range doc.Denies {
		s := stmt
		if statementMatches(&s, action, resource, context) {
			matchedPermitDeny = append(matchedPermitDeny, s)
			allMatches = append(allMatches, s)
		}
	}
	for _, stmt := range doc.Obligations {
		s := stmt
		if statementMatches(&s, action, resource, context) {
			allMatches = append(allMatches, s)
		}
	}

	if len(matchedPermitDeny) == 0 {
		return EvaluationResult{
			Permitted:  false,
			AllMatches: allMatches,
			Reason:     "No matching rules found; default deny",
		}
	}

	sort.SliceStable(matchedPermitDeny, func(i, j int) bool {
		a, b := matchedPermitDeny[i], matchedPermitDeny[j]
		specA := specificity(a.Action, a.Resource)
		specB := specificity(b.Action, b.Resource)
		if specA != specB {
			return specA > specB
		}
		aIsDeny := a.Kind == Deny
		bIsDeny := b.Kind == Deny
		if aIsDeny == bIsDeny {
			return false
		}
		return aIsDeny
	})

	winner := matchedPermitDeny[0]
	return EvaluationResult{
		Permitted:   winner.Kind == Permit,
		MatchedRule: &winner,
		AllMatches:  allMatches,
		Reason:      fmt.Sprintf("Matched %s rule for %s on %s", winner.Kind, winner.Action, winner.Resource),
	}
}

// CheckRateLimit is a pure function: the caller owns counters and window
// timestamps. It picks the most specific matching limit statement, then
// reports whether current_count has exceeded it within the current window.
func CheckRateLimit(doc *Document, metric string, currentCount, windowStartMs, nowMs int64) RateLimitResult {
	var matched *Statement
	bestSpecificity := -1

	for i := range doc.Limits {
		stmt := &doc.Limits[i]
		if MatchAction(stmt.Action, metric) {
			spec := specificity(stmt.Action, "")
			if spec > bestSpecificity {
				bestSpecificity = spec
				matched = stmt
			}
		}
	}

	if matched == nil {
		return RateLimitResult{Exceeded: false, Remaining: math.MaxInt64, Limit: 0}
	}

	countLimit := int64(matched.Count)
	periodMs := int64(matched.PeriodSecs * 1000)
	elapsed := nowMs - windowStartMs

	if elapsed > periodMs {
		return RateLimitResult{Exceeded: false, Remaining: countLimit, Limit: countLimit}
	}

	remaining := countLimit - currentCount
	if remaining < 0 {
		remaining = 0
	}
	return RateLimitResult{
		Exceeded:  currentCount >= countLimit,
		Remaining: remaining,
		Limit:     countLimit,
	}
}
