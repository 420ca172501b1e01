package otp

import (
	"fmt"
	"time"
)

const (
	defaultStep   = 30
	defaultDigits = 6
	maxDigits     = 10
)

// TOTPConfig holds the optional TOTP parameters. Zero fields take the
// RFC defaults applied by NewTOTP.
type TOTPConfig struct {
	// Mode is the HMAC hash algorithm.
	// Default: SHA1
	Mode HashMode
	// Step is the time window length in seconds.
	// Default: 30
	Step uint
	// Digits is the code width, 1 through 10.
	// Default: 6
	Digits uint
	// Correction adjusts local time for measured clock drift.
	// Default: no correction
	Correction TimeCorrection
}

func (c TOTPConfig) validate() error {
	if !c.Mode.valid() {
		return fmt.Errorf("%w: unknown hash mode %d", ErrInvalidConfig, c.Mode)
	}
	if c.Digits > maxDigits {
		return fmt.Errorf("%w: digits must be between 1 and %d", ErrInvalidConfig, maxDigits)
	}
	return nil
}

// TOTP generates time-based one-time passwords (RFC 6238).
// It is safe for concurrent use.
type TOTP struct {
	key        KeyProvider
	mode       HashMode
	step       int64
	digitCount int
	correction TimeCorrection
}

// NewTOTP creates a TOTP generator. The configuration is validated and
// defaults are applied; an invalid configuration fails construction.
func NewTOTP(key KeyProvider, cfg TOTPConfig) (*TOTP, error) {
	if key == nil {
		return nil, ErrEmptyKey
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Step == 0 {
		cfg.Step = defaultStep
	}
	if cfg.Digits == 0 {
		cfg.Digits = defaultDigits
	}

	return &TOTP{
		key:        key,
		mode:       cfg.Mode,
		step:       int64(cfg.Step),
		digitCount: int(cfg.Digits),
		correction: cfg.Correction,
	}, nil
}

// Step returns the time window length in seconds.
func (t *TOTP) Step() int64 { return t.step }

// Digits returns the code width.
func (t *TOTP) Digits() int { return t.digitCount }

// Mode returns the HMAC hash algorithm.
func (t *TOTP) Mode() HashMode { return t.mode }

// counterAt maps a timestamp to its time-step counter, routing through
// the clock correction first.
func (t *TOTP) counterAt(at time.Time) int64 {
	return t.correction.Apply(at).Unix() / t.step
}

// ComputeAt returns the code for the time window containing the given
// timestamp.
func (t *TOTP) ComputeAt(at time.Time) string {
	return digits(calculateOTP(t.key, t.counterAt(at), t.mode), t.digitCount)
}

// Compute returns the code for the current (corrected) time.
func (t *TOTP) Compute() string {
	return t.ComputeAt(time.Now())
}

// RemainingSecondsAt reports how long the code at the given timestamp
// stays valid. The result is always in 1 through Step inclusive; it is
// exactly Step at a window boundary.
func (t *TOTP) RemainingSecondsAt(at time.Time) int64 {
	return t.step - t.correction.Apply(at).Unix()%t.step
}

// RemainingSeconds reports how long the current code stays valid.
func (t *TOTP) RemainingSeconds() int64 {
	return t.RemainingSecondsAt(time.Now())
}

// VerifyAt checks code against the time steps the window derives from
// the given timestamp and returns the matched step counter. The exact
// step is tried first; no match is ok == false, never an error.
func (t *TOTP) VerifyAt(code string, at time.Time, window Window) (matchedStep int64, ok bool) {
	compute := func(counter int64) string {
		return digits(calculateOTP(t.key, counter, t.mode), t.digitCount)
	}
	return verify(compute, t.counterAt(at), code, window)
}

// Verify checks code against the current (corrected) time.
func (t *TOTP) Verify(code string, window Window) (matchedStep int64, ok bool) {
	return t.VerifyAt(code, time.Now(), window)
}
