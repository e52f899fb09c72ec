// Package memzero provides best-effort wiping of key material.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way. This is
// best-effort: it reduces the lifetime of seeds and digests in memory
// but makes no guarantee against copies the runtime has already made.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
