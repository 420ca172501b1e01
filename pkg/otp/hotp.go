package otp

import "fmt"

// hotpDigits is fixed by the HOTP profile; use TOTP for other widths.
const hotpDigits = 6

// HOTP generates counter-based one-time passwords (RFC 4226).
//
// HOTP holds no counter state: the caller owns counter persistence and
// must increment it exactly once per accepted authentication.
type HOTP struct {
	key  KeyProvider
	mode HashMode
}

// NewHOTP creates an HOTP generator for the given key and hash mode.
func NewHOTP(key KeyProvider, mode HashMode) (*HOTP, error) {
	if key == nil {
		return nil, ErrEmptyKey
	}
	if !mode.valid() {
		return nil, fmt.Errorf("%w: unknown hash mode %d", ErrInvalidConfig, mode)
	}
	return &HOTP{key: key, mode: mode}, nil
}

// Compute returns the 6-digit code for the given counter value.
func (h *HOTP) Compute(counter int64) string {
	return digits(calculateOTP(h.key, counter, h.mode), hotpDigits)
}

// Verify checks code against the counters the window derives from the
// caller's counter hint and returns the matched counter. The hint is
// tried first; no match is reported as ok == false, never an error.
func (h *HOTP) Verify(code string, counter int64, window Window) (matched int64, ok bool) {
	return verify(h.Compute, counter, code, window)
}
