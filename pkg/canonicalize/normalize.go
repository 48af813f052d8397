package canonicalize

import "golang.org/x/text/unicode/norm"

// NormalizeNFC returns s in Unicode Normalization Form C. CCL source text and
// string-literal content are normalized before lexing so visually-identical
// constraint text compares and hashes identically regardless of the input's
// original normal form.
func NormalizeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
