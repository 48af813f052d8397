package ccl

import (
	"fmt"
	"strings"
)

// PatternsOverlap reports whether any concrete string could match both
// patterns.
func PatternsOverlap(pattern1, pattern2 string) bool {
	if pattern1 == "**" || pattern2 == "**" {
		return true
	}
	if pattern1 == "*" || pattern2 == "*" {
		return true
	}
	if pattern1 == pattern2 {
		return true
	}

	concrete1 := patternToConcrete(pattern1)
	concrete2 := patternToConcrete(pattern2)

	if strings.Contains(pattern1, "/") || strings.Contains(pattern2, "/") {
		return MatchResource(pattern1, concrete2) || MatchResource(pattern2, concrete1)
	}
	return MatchAction(pattern1, concrete2) || MatchAction(pattern2, concrete1)
}

func patternToConcrete(pattern string) string {
	return strings.ReplaceAll(strings.ReplaceAll(pattern, "**", "x"), "*", "x")
}

// IsSubsetPattern reports whether every concrete string matching child also
// matches parent, when both are split on separator.
func IsSubsetPattern(child, parent, separator string) bool {
	if parent == "**" {
		return true
	}
	if child == "**" && parent != "**" {
		return false
	}

	childParts := splitNonEmpty(child, separator)
	parentParts := splitNonEmpty(parent, separator)
	return isSubsetSegments(childParts, 0, parentParts, 0)
}

func splitNonEmpty(s, sep string) []string {
	raw := strings.Split(s, sep)
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isSubsetSegments(child []string, ci int, parent []string, pi int) bool {
	if ci == len(child) && pi == len(parent) {
		return true
	}
	if pi == len(parent) {
		return false
	}
	if ci == len(child) {
		for i := pi; i < len(parent); i++ {
			if parent[i] != "**" {
				return false
			}
		}
		return true
	}

	pSeg := parent[pi]
	cSeg := child[ci]

	if pSeg == "**" {
		if isSubsetSegments(child, ci, parent, pi+1) {
			return true
		}
		return isSubsetSegments(child, ci+1, parent, pi)
	}

	if cSeg == "**" {
		if pSeg != "**" {
			return false
		}
		return isSubsetSegments(child, ci+1, parent, pi+1)
	}

	if pSeg == "*" {
		return isSubsetSegments(child, ci+1, parent, pi+1)
	}

	if cSeg == "*" {
		if pSeg != "*" && pSeg != "**" {
			return false
		}
		return isSubsetSegments(child, ci+1, parent, pi+1)
	}

	if cSeg != pSeg {
		return false
	}
	return isSubsetSegments(child, ci+1, parent, pi+1)
}

// ValidateNarrowing checks that every child permit both overlaps no parent
// deny and is itself a subset of some parent permit, on both the action (".")
// and resource ("/") axes.
func ValidateNarrowing(parent, child *Document) NarrowingResult {
	var violations []NarrowingViolation

	for _, childPermit := range child.Permits {
		for _, parentDeny := range parent.Denies {
			if PatternsOverlap(childPermit.Action, parentDeny.Action) &&
				PatternsOverlap(childPermit.Resource, parentDeny.Resource) {
				violations = append(violations, NarrowingViolation{
					Message: fmt.Sprintf("Child permits %q on %q which parent denies", childPermit.Action, childPermit.Resource),
				})
			}
		}

		hasMatchingParent := false
		for _, parentPermit := range parent.Permits {
			if IsSubsetPattern(childPermit.Action, parentPermit.Action, ".") &&
				IsSubsetPattern(childPermit.Resource, parentPermit.Resource, "/") {
				hasMatchingParent = true
				break
			}
		}
		if !hasMatchingParent {
			violations = append(violations, NarrowingViolation{
				Message: fmt.Sprintf("Child permit %q on %q is not a subset of any parent permit", childPermit.Action, childPermit.Resource),
			})
		}
	}

	return NarrowingResult{Valid: len(violations) == 0, Violations: violations}
}

// Merge combines a parent and child document with deny-wins semantics: all
// denies, permits, and obligations from both sides are included; for limits
// on the same action, the more restrictive (lower count) statement wins.
func Merge(parent, child *Document) Document {
	var statements []Statement

	statements = append(statements, parent.Denies...)
	statements = append(statements, child.Denies...)
	statements = append(statements, child.Permits...)
	statements = append(statements, parent.Permits...)
	statements = append(statements, parent.Obligations...)
	statements = append(statements, child.Obligations...)

	limitsByAction := make(map[string]Statement)
	order := make([]string, 0)
	for _, limit := range append(append([]Statement{}, parent.Limits...), child.Limits...) {
		existing, ok := limitsByAction[limit.Action]
		if !ok {
			limitsByAction[limit.Action] = limit
			order = append(order, limit.Action)
			continue
		}
		if limit.Count < existing.Count {
			limitsByAction[limit.Action] = limit
		}
	}
	for _, action := range order {
		statements = append(statements, limitsByAction[action])
	}

	return buildDocument(statements)
}
