package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// HashMode selects the hash algorithm used inside the HMAC computation.
// The zero value is SHA1, the RFC 4226 default.
type HashMode int

const (
	// SHA1 uses HMAC-SHA1 (default, widely supported).
	SHA1 HashMode = iota
	// SHA256 uses HMAC-SHA256.
	SHA256
	// SHA512 uses HMAC-SHA512.
	SHA512
)

// factory returns the constructor for the underlying digest.
func (m HashMode) factory() func() hash.Hash {
	switch m {
	case SHA256:
		return sha256.New
	case SHA512:
		return sha512.New
	default:
		return sha1.New
	}
}

// Size returns the digest length in bytes, which is also the
// RFC-recommended secret key length for the mode.
func (m HashMode) Size() int {
	switch m {
	case SHA256:
		return sha256.Size
	case SHA512:
		return sha512.Size
	default:
		return sha1.Size
	}
}

func (m HashMode) valid() bool {
	return m == SHA1 || m == SHA256 || m == SHA512
}

// String returns the canonical algorithm name as used in provisioning URLs.
func (m HashMode) String() string {
	switch m {
	case SHA256:
		return "SHA256"
	case SHA512:
		return "SHA512"
	default:
		return "SHA1"
	}
}

// ParseHashMode converts an algorithm name to a HashMode.
// Case is normalized; unknown names are rejected.
func ParseHashMode(name string) (HashMode, error) {
	switch strings.ToUpper(name) {
	case "SHA1":
		return SHA1, nil
	case "SHA256":
		return SHA256, nil
	case "SHA512":
		return SHA512, nil
	default:
		return 0, fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512", ErrInvalidConfig)
	}
}
