package crypto

// ConstantTimeEqual compares a and b in constant time with respect to their
// contents. It short-circuits on length only (lengths are not secret), then
// XOR-accumulates every byte so no early return leaks which byte differed.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var accum byte
	for i := 0; i < n; i++ {
		accum |= a[i] ^ b[i]
	}
	return accum == 0 && len(a) == len(b)
}
