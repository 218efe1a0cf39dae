package common

// WipeByteArray zeroes a sensitive byte slice in place. Call it as soon as
// a password is no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
