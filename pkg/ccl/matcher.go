package ccl

import "strings"

// MatchAction matches a dot-separated action string against an action
// pattern. "*" consumes exactly one segment; "**" consumes zero or more.
func MatchAction(pattern, action string) bool {
	patternParts := strings.Split(pattern, ".")
	actionParts := strings.Split(action, ".")
	return matchSegments(patternParts, 0, actionParts, 0)
}

// MatchResource matches a slash-separated resource path against a resource
// pattern. Leading/trailing slashes are trimmed before splitting.
func MatchResource(pattern, resource string) bool {
	normPattern := strings.Trim(pattern, "/")
	normResource := strings.Trim(resource, "/")

	if normPattern == "" && normResource == "" {
		return true
	}
	if normPattern == "**" {
		return true
	}
	if normPattern == "*" && !strings.Contains(normResource, "/") {
		return true
	}

	patternParts := strings.Split(normPattern, "/")
	resourceParts := strings.Split(normResource, "/")
	return matchSegments(patternParts, 0, resourceParts, 0)
}

// matchSegments is the generic recursive segment matcher shared by
// MatchAction and MatchResource.
func matchSegments(pattern []string, pi int, target []string, ti int) bool {
	for pi < len(pattern) && ti < len(target) {
		p := pattern[pi]

		if p == "**" {
			if matchSegments(pattern, pi+1, target, ti) {
				return true
			}
			return matchSegments(pattern, pi, target, ti+1)
		}

		if p == "*" {
			pi++
			ti++
			continue
		}

		if p != target[ti] {
			return false
		}
		pi++
		ti++
	}

	for pi < len(pattern) && pattern[pi] == "**" {
		pi++
	}

	return pi == len(pattern) && ti == len(target)
}

// specificity scores an (action pattern, resource pattern) pair: literal
// segments score 2, "*" scores 1, "**" scores 0.
func specificity(actionPattern, resourcePattern string) int {
	score := 0

	for _, part := range strings.Split(actionPattern, ".") {
		switch part {
		case "**":
		case "*":
			score++
		default:
			score += 2
		}
	}

	normResource := strings.Trim(resourcePattern, "/")
	if normResource != "" {
		for _, part := range strings.Split(normResource, "/") {
			switch part {
			case "**":
			case "*":
				score++
			default:
				score += 2
			}
		}
	}

	return score
}

// Specificity exposes the specificity score for external callers (e.g.
// rule-inspection tooling) that want to rank rules themselves.
func Specificity(actionPattern, resourcePattern string) int {
	return specificity(actionPattern, resourcePattern)
}
