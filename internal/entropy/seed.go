package entropy

import (
	"crypto/rand"
	"encoding/binary"
)

// CryptoSeed draws a run seed from the operating system entropy pool, for
// runs that did not pick one. The caller logs the value, so any mosaic can
// still be regenerated afterwards.
func CryptoSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Should never happen but 1 is a safe default.
		return 1
	}
	// Keep it positive so command lines can pass it back verbatim.
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
}
