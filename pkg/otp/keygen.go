package otp

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// RandomKey returns a cryptographically random key of the given length.
func RandomKey(length int) (Key, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: key length must be positive", ErrInvalidConfig)
	}
	secret := make([]byte, length)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("otp: failed to generate random key: %w", err)
	}
	return Key(secret), nil
}

// RandomKeyForMode returns a random key of the RFC-recommended length
// for the mode: the mode's digest size (20, 32, or 64 bytes).
func RandomKeyForMode(mode HashMode) (Key, error) {
	return RandomKey(mode.Size())
}

// DeriveKey derives a device-specific key from a master key and a
// public identifier, per RFC 4226 section 7.5. The result is itself a
// valid key for the given mode's OTP computation.
func DeriveKey(master KeyProvider, publicIdentifier []byte, mode HashMode) Key {
	return Key(master.HMAC(mode, publicIdentifier))
}

// DeriveKeyFromSerial derives a device-specific key using a serial
// number, encoded big-endian, as the public identifier.
func DeriveKeyFromSerial(master KeyProvider, serial uint64, mode HashMode) Key {
	var identifier [8]byte
	binary.BigEndian.PutUint64(identifier[:], serial)
	return DeriveKey(master, identifier[:], mode)
}
