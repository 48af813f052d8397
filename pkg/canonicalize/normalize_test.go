package canonicalize

import "testing"

func TestNormalizeNFC_ComposesDecomposedForm(t *testing.T) {
	decomposed := "é" // "e" + combining acute accent (NFD)
	composed := "é"   // precomposed e-acute (NFC)

	if NormalizeNFC(decomposed) != composed {
		t.Errorf("expected decomposed form to normalize to composed form")
	}
	if NormalizeNFC(composed) != composed {
		t.Errorf("expected already-composed form to be left unchanged")
	}
}
