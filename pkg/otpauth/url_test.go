package otpauth

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Coinigy/PureOtp/pkg/otp"
)

var testSecret = []byte("12345678901234567890")

// TestURLDefaults tests that default parameters are omitted
func TestURLDefaults(t *testing.T) {
	u := ForTOTP("Example:user@example.com", testSecret, otp.TOTPConfig{})
	s := u.String()

	if !strings.HasPrefix(s, "otpauth://totp/") {
		t.Errorf("unexpected prefix: %q", s)
	}
	for _, param := range []string{"algorithm=", "digits=", "period=", "counter="} {
		if strings.Contains(s, param) {
			t.Errorf("default url %q should omit %q", s, param)
		}
	}
	if !strings.Contains(s, "secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ") {
		t.Errorf("url %q missing base32 secret", s)
	}
}

// TestURLNonDefaults tests that non-default parameters are emitted
func TestURLNonDefaults(t *testing.T) {
	u := ForTOTP("Example:user@example.com", testSecret, otp.TOTPConfig{
		Mode:   otp.SHA256,
		Step:   60,
		Digits: 8,
	})
	s := u.String()

	for _, param := range []string{"algorithm=SHA256", "digits=8", "period=60"} {
		if !strings.Contains(s, param) {
			t.Errorf("url %q missing %q", s, param)
		}
	}
}

// TestURLHOTP tests counter emission for HOTP provisioning
func TestURLHOTP(t *testing.T) {
	u := ForHOTP("Example:user@example.com", testSecret, 42)
	s := u.String()

	if !strings.HasPrefix(s, "otpauth://hotp/") {
		t.Errorf("unexpected prefix: %q", s)
	}
	if !strings.Contains(s, "counter=42") {
		t.Errorf("url %q missing counter", s)
	}
	if strings.Contains(s, "period=") {
		t.Errorf("hotp url %q should not carry a period", s)
	}
}

// TestParseRoundTrip tests that a built URL parses back to an
// equivalent generator
func TestParseRoundTrip(t *testing.T) {
	built := ForTOTP("Example:user@example.com", testSecret, otp.TOTPConfig{
		Mode:   otp.SHA512,
		Step:   60,
		Digits: 8,
	})

	parsed, err := Parse(built.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Label != "Example:user@example.com" {
		t.Errorf("label = %q", parsed.Label)
	}
	if !bytes.Equal(parsed.Secret, testSecret) {
		t.Errorf("secret = %v, want %v", parsed.Secret, testSecret)
	}
	if parsed.Algorithm != otp.SHA512 || parsed.Digits != 8 || parsed.Period != 60 {
		t.Errorf("parameters = %v/%d/%d, want SHA512/8/60",
			parsed.Algorithm, parsed.Digits, parsed.Period)
	}

	// Both ends produce identical codes.
	original, err := built.TOTP()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := parsed.TOTP()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, unix := range []int64{59, 1111111109, 1234567890, 2000000000} {
		at := time.Unix(unix, 0)
		if got, want := decoded.ComputeAt(at), original.ComputeAt(at); got != want {
			t.Errorf("code at %d = %q, want %q", unix, got, want)
		}
	}
}

// TestParseDefaults tests that omitted parameters take their defaults
func TestParseDefaults(t *testing.T) {
	u, err := Parse("otpauth://totp/Example:user@example.com?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Algorithm != otp.SHA1 || u.Digits != 6 || u.Period != 30 {
		t.Errorf("defaults = %v/%d/%d, want SHA1/6/30", u.Algorithm, u.Digits, u.Period)
	}
}

// TestParseHostCase tests case-insensitive type selection
func TestParseHostCase(t *testing.T) {
	u, err := Parse("otpauth://TOTP/Example?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Type != TypeTOTP {
		t.Errorf("type = %q, want totp", u.Type)
	}
}

// TestParseRejections tests strict rejection of malformed URLs
func TestParseRejections(t *testing.T) {
	const secret = "secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name:    "wrong scheme",
			raw:     "totpauth://totp/Example?" + secret,
			wantErr: ErrInvalidURL,
		},
		{
			name:    "http scheme",
			raw:     "http://totp/Example?" + secret,
			wantErr: ErrInvalidURL,
		},
		{
			name:    "unknown type",
			raw:     "otpauth://steam/Example?" + secret,
			wantErr: ErrInvalidURL,
		},
		{
			name:    "hotp decoding unsupported",
			raw:     "otpauth://hotp/Example?" + secret + "&counter=0",
			wantErr: ErrHOTPNotSupported,
		},
		{
			name:    "unknown parameter",
			raw:     "otpauth://totp/Example?" + secret + "&issuer=Example",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "duplicate parameter",
			raw:     "otpauth://totp/Example?" + secret + "&period=30&period=60",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "seven digits",
			raw:     "otpauth://totp/Example?" + secret + "&digits=7",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "non-numeric digits",
			raw:     "otpauth://totp/Example?" + secret + "&digits=six",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "non-numeric period",
			raw:     "otpauth://totp/Example?" + secret + "&period=soon",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "zero period",
			raw:     "otpauth://totp/Example?" + secret + "&period=0",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "invalid base32 secret",
			raw:     "otpauth://totp/Example?secret=notbase32!",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "missing secret",
			raw:     "otpauth://totp/Example",
			wantErr: ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Parse(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if u != nil {
				t.Errorf("Parse(%q) returned %+v alongside error", tt.raw, u)
			}
		})
	}
}

// TestQR tests QR image rendering
func TestQR(t *testing.T) {
	u := ForTOTP("Example:user@example.com", testSecret, otp.TOTPConfig{})

	img, err := u.QR(200, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 200 {
		t.Errorf("image bounds = %v, want 200x200", bounds)
	}
}
