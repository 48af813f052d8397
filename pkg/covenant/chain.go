package covenant

import "github.com/covenantlabs/covenant-core/pkg/ccl"

// ValidateChainNarrowing parses both documents' constraints and checks that
// child only narrows parent, delegating to the CCL narrowing algebra.
func ValidateChainNarrowing(child, parent *Document) (ccl.NarrowingResult, error) {
	parentCCL, err := ccl.Parse(parent.Constraints)
	if err != nil {
		return ccl.NarrowingResult{}, err
	}
	childCCL, err := ccl.Parse(child.Constraints)
	if err != nil {
		return ccl.NarrowingResult{}, err
	}
	return ccl.ValidateNarrowing(&parentCCL, &childCCL), nil
}
