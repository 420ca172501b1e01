package otp

import "time"

// TimeCorrection is an additive offset applied to local wall-clock time
// to compensate for measured clock drift against a trusted time source.
// The zero value applies no correction at all.
//
// A correction is sampled once and never refreshes itself; its useful
// lifetime is however long the caller trusts the drift estimate.
type TimeCorrection struct {
	offset time.Duration
}

// NoCorrection is the zero-offset correction used when a caller
// supplies none.
var NoCorrection = TimeCorrection{}

// NewTimeCorrection creates a correction from a trusted "true now"
// sampled at the moment of the call, measured against the local clock.
func NewTimeCorrection(trueNow time.Time) TimeCorrection {
	return TimeCorrection{offset: time.Until(trueNow)}
}

// NewTimeCorrectionBetween creates a correction for callers that
// captured both the trusted timestamp and the local timestamp at the
// same instant themselves.
func NewTimeCorrectionBetween(trueTime, localTime time.Time) TimeCorrection {
	return TimeCorrection{offset: trueTime.Sub(localTime)}
}

// Apply returns the corrected timestamp.
func (c TimeCorrection) Apply(t time.Time) time.Time {
	return t.Add(c.offset)
}

// Now returns the corrected current time.
func (c TimeCorrection) Now() time.Time {
	return c.Apply(time.Now())
}

// Offset returns the raw correction offset.
func (c TimeCorrection) Offset() time.Duration {
	return c.offset
}
