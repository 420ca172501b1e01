// Package otp computes and verifies one-time passwords per RFC 4226
// (HOTP) and RFC 6238 (TOTP).
//
// HOTP (HMAC-based One-Time Password) generates codes from a counter
// the caller owns, used by hardware tokens and some mobile apps.
//
// TOTP (Time-based One-Time Password) derives the counter from the
// wall clock, generating codes that change every 30 seconds as used by
// authenticator apps like Google Authenticator and Authy.
//
// # TOTP Example
//
// Time-based OTP for use with authenticator apps:
//
//	key, err := otp.ParseBase32Key("JBSWY3DPEHPK3PXP")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	totp, err := otp.NewTOTP(key, otp.TOTPConfig{
//	    Mode:   otp.SHA1,
//	    Step:   30,
//	    Digits: 6,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code := totp.Compute()
//	fmt.Printf("code %s, valid for %ds\n", code, totp.RemainingSeconds())
//
//	// Verify a code from the user, tolerating one step of delay
//	if _, ok := totp.Verify(userCode, otp.NetworkDelayWindow); !ok {
//	    log.Println("invalid code")
//	}
//
// # HOTP Example
//
// Counter-based OTP; the caller persists the counter and increments it
// exactly once per accepted authentication:
//
//	hotp, err := otp.NewHOTP(key, otp.SHA1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code := hotp.Compute(counter)
//
//	// Verify with look-ahead for counters the token burned
//	matched, ok := hotp.Verify(userCode, counter, otp.Window{Future: 5})
//	if ok {
//	    counter = matched + 1 // store for the next authentication
//	}
//
// # Verification Windows
//
// A Window widens verification around the expected counter to tolerate
// clock skew or counter drift. Candidates are tried in a fixed order:
// the expected counter first, then earlier counters, then later ones;
// the first match wins. NetworkDelayWindow (one step either side) is
// the RFC-recommended tolerance for network delay.
//
// # Time Correction
//
// TOTP accepts a TimeCorrection measured against a trusted time
// source, for hosts whose local clock drifts:
//
//	correction := otp.NewTimeCorrection(trustedNow)
//	totp, err := otp.NewTOTP(key, otp.TOTPConfig{Correction: correction})
//
// How the trusted timestamp is obtained (NTP, an HTTPS Date header) is
// up to the caller; the package only consumes the measured value.
//
// # Keys
//
// Secret keys are supplied through the KeyProvider capability. Key is
// a plain byte key; ProtectedKey keeps the secret masked in memory
// between computations. Both produce identical digests.
//
// Generate keys with RandomKeyForMode, or derive per-device keys from
// a master key with DeriveKey (RFC 4226 section 7.5):
//
//	master, _ := otp.RandomKeyForMode(otp.SHA256)
//	deviceKey := otp.DeriveKeyFromSerial(master, deviceSerial, otp.SHA256)
//
// # Thread Safety
//
// All types are safe for concurrent use. Computation is pure and
// CPU-bound; nothing blocks or performs I/O.
package otp
