// Package otpauth encodes and decodes the otpauth:// provisioning URL
// format consumed by authenticator apps.
//
// A provisioning URL carries the shared secret and OTP parameters:
//
//	otpauth://totp/Example:user@example.com?secret=JBSWY3DPEHPK3PXP
//
// Optional parameters are omitted when they hold their defaults, the
// convention authenticator apps expect: algorithm only when not SHA1,
// digits only when 8, period only when not 30. Parsing is strict:
// unknown query parameters, malformed values, and non-otpauth schemes
// are rejected rather than coerced.
package otpauth

import (
	"encoding/base32"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Coinigy/PureOtp/pkg/otp"
)

// Type selects the OTP flavor a URL provisions.
type Type string

const (
	// TypeTOTP provisions a time-based OTP.
	TypeTOTP Type = "totp"
	// TypeHOTP provisions a counter-based OTP.
	TypeHOTP Type = "hotp"
)

// Errors returned by the URL codec.
var (
	// ErrInvalidURL indicates a malformed or non-otpauth provisioning URL.
	ErrInvalidURL = errors.New("otpauth: invalid provisioning url")
	// ErrHOTPNotSupported indicates an otpauth://hotp URL was given to
	// the decoder, which only supports totp URLs.
	ErrHOTPNotSupported = errors.New("otpauth: hotp url decoding is not supported")
)

const (
	defaultPeriod = 30
	defaultDigits = 6
)

// URL is a decoded otpauth:// provisioning URL.
type URL struct {
	// Type is the OTP flavor (totp or hotp).
	Type Type
	// Label identifies the account, conventionally "Issuer:account".
	Label string
	// Secret is the raw (not base32) shared secret.
	Secret []byte
	// Algorithm is the HMAC hash algorithm.
	Algorithm otp.HashMode
	// Digits is the code width, 6 or 8.
	Digits uint
	// Period is the TOTP time step in seconds.
	Period uint
	// Counter is the initial HOTP counter.
	Counter uint64
}

// ForTOTP builds a provisioning URL for a TOTP generator with the
// given parameters. Zero config fields take the RFC defaults.
func ForTOTP(label string, secret []byte, cfg otp.TOTPConfig) *URL {
	u := &URL{
		Type:      TypeTOTP,
		Label:     label,
		Secret:    secret,
		Algorithm: cfg.Mode,
		Digits:    cfg.Digits,
		Period:    cfg.Step,
	}
	if u.Digits == 0 {
		u.Digits = defaultDigits
	}
	if u.Period == 0 {
		u.Period = defaultPeriod
	}
	return u
}

// ForHOTP builds a provisioning URL for an HOTP generator seeded at
// the given counter.
func ForHOTP(label string, secret []byte, counter uint64) *URL {
	return &URL{
		Type:    TypeHOTP,
		Label:   label,
		Secret:  secret,
		Digits:  defaultDigits,
		Counter: counter,
	}
}

// String renders the otpauth:// URL. The secret is unpadded base32;
// parameters at their defaults are omitted.
func (u *URL) String() string {
	v := url.Values{}
	v.Set("secret", base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(u.Secret))
	if u.Algorithm != otp.SHA1 {
		v.Set("algorithm", u.Algorithm.String())
	}
	if u.Digits == 8 {
		v.Set("digits", "8")
	}
	if u.Type == TypeTOTP && u.Period != defaultPeriod {
		v.Set("period", strconv.FormatUint(uint64(u.Period), 10))
	}
	if u.Type == TypeHOTP {
		v.Set("counter", strconv.FormatUint(u.Counter, 10))
	}
	return fmt.Sprintf("otpauth://%s/%s?%s", u.Type, url.PathEscape(u.Label), v.Encode())
}

// Parse decodes a provisioning URL. The scheme must be exactly
// "otpauth"; the authority selects totp or hotp case-insensitively.
// Unknown query parameters and malformed values are rejected. HOTP
// URLs are recognized but not decoded.
func Parse(raw string) (*URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsed.Scheme != "otpauth" {
		return nil, fmt.Errorf("%w: scheme must be otpauth, got %q", ErrInvalidURL, parsed.Scheme)
	}
	switch strings.ToLower(parsed.Host) {
	case "totp":
	case "hotp":
		return nil, ErrHOTPNotSupported
	default:
		return nil, fmt.Errorf("%w: unknown otp type %q", ErrInvalidURL, parsed.Host)
	}

	query, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	u := &URL{
		Type:      TypeTOTP,
		Label:     strings.TrimPrefix(parsed.Path, "/"),
		Algorithm: otp.SHA1,
		Digits:    defaultDigits,
		Period:    defaultPeriod,
	}
	for name, values := range query {
		if len(values) != 1 {
			return nil, fmt.Errorf("%w: duplicate parameter %q", ErrInvalidURL, name)
		}
		value := values[0]
		switch name {
		case "secret":
			key, err := otp.ParseBase32Key(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
			}
			u.Secret = key
		case "algorithm":
			mode, err := otp.ParseHashMode(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
			}
			u.Algorithm = mode
		case "digits":
			if value != "6" && value != "8" {
				return nil, fmt.Errorf("%w: digits must be 6 or 8, got %q", ErrInvalidURL, value)
			}
			d, _ := strconv.Atoi(value)
			u.Digits = uint(d)
		case "period":
			p, err := strconv.Atoi(value)
			if err != nil || p <= 0 {
				return nil, fmt.Errorf("%w: period must be a positive integer, got %q", ErrInvalidURL, value)
			}
			u.Period = uint(p)
		default:
			return nil, fmt.Errorf("%w: unknown parameter %q", ErrInvalidURL, name)
		}
	}
	if len(u.Secret) == 0 {
		return nil, fmt.Errorf("%w: missing secret", ErrInvalidURL)
	}
	return u, nil
}

// TOTP builds a working generator from a decoded totp URL. The
// generator produces the same codes as the one the URL was built from.
func (u *URL) TOTP() (*otp.TOTP, error) {
	if u.Type != TypeTOTP {
		return nil, fmt.Errorf("%w: not a totp url", ErrInvalidURL)
	}
	key, err := otp.NewKey(u.Secret)
	if err != nil {
		return nil, err
	}
	return otp.NewTOTP(key, otp.TOTPConfig{
		Mode:   u.Algorithm,
		Step:   u.Period,
		Digits: u.Digits,
	})
}
