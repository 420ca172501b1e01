package otp

import (
	"encoding/binary"
	"fmt"
)

// calculateOTP is the RFC 4226 computation shared by HOTP and TOTP:
// HMAC over the 8-byte big-endian counter, then dynamic truncation.
// Deterministic: the same (key, counter, mode) always yields the same value.
func calculateOTP(key KeyProvider, counter int64, mode HashMode) int64 {
	var message [8]byte
	binary.BigEndian.PutUint64(message[:], uint64(counter))

	digest := key.HMAC(mode, message[:])

	// Truncation offset comes from the low nibble of the last digest
	// byte, whatever the digest length.
	offset := digest[len(digest)-1] & 0x0f

	// The modulo is applied to the final byte before combining, not to
	// the combined value. The two are indistinguishable here (the byte
	// is always below 1e6) but the per-byte form is what deployed
	// verifiers compute, so it stays byte-for-byte.
	return (int64(digest[offset]&0x7f) << 24) |
		(int64(digest[offset+1]&0xff) << 16) |
		(int64(digest[offset+2]&0xff) << 8) |
		(int64(digest[offset+3]&0xff) % 1_000_000)
}

// digits renders the low count decimal digits of value, left-padded
// with zeros to exactly count characters.
func digits(value int64, count int) string {
	return fmt.Sprintf("%0*d", count, value%pow10(count))
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// verify walks the window's candidate counters in order, starting from
// initial, and returns the first counter whose code matches exactly.
// Comparison is full string equality, leading zeros included.
func verify(compute func(int64) string, initial int64, code string, window Window) (int64, bool) {
	for candidate := range window.Candidates(initial) {
		if compute(candidate) == code {
			return candidate, true
		}
	}
	return 0, false
}
