package ccl

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func segmentGen() gopter.Gen {
	return gen.OneConstOf("read", "write", "exec", "*", "**")
}

func patternGen() gopter.Gen {
	return gen.SliceOfN(3, segmentGen()).Map(func(segs []interface{}) string {
		out := ""
		for i, s := range segs {
			if i > 0 {
				out += "."
			}
			out += s.(string)
		}
		return out
	})
}

func TestCCLProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("IsSubsetPattern is reflexive for any action pattern", prop.ForAll(
		func(p string) bool {
			return IsSubsetPattern(p, p, ".")
		},
		patternGen(),
	))

	properties.Property("PatternsOverlap is symmetric", prop.ForAll(
		func(a, b string) bool {
			return PatternsOverlap(a, b) == PatternsOverlap(b, a)
		},
		patternGen(),
		patternGen(),
	))

	properties.Property("evaluating against an empty policy is always default deny", prop.ForAll(
		func(action, resource string) bool {
			doc, err := Parse("")
			if err != nil {
				return false
			}
			result := Evaluate(&doc, action, resource, map[string]string{})
			return !result.Permitted
		},
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.Property("a permit statement always permits its own literal action and resource", prop.ForAll(
		func(action, resource string) bool {
			source := fmt.Sprintf("permit %s on '%s'", action, resource)
			doc, err := Parse(source)
			if err != nil {
				return false
			}
			result := Evaluate(&doc, action, resource, map[string]string{})
			return result.Permitted
		},
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
