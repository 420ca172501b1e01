package otp

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"sync"
)

// KeyProvider is the secret-key capability consumed by the OTP
// computation. Implementations own the secret bytes and expose only the
// ability to produce an HMAC digest over a message.
//
// Implementations must be safe for concurrent use.
type KeyProvider interface {
	HMAC(mode HashMode, message []byte) []byte
}

// Key is a plain in-memory secret key.
type Key []byte

// NewKey copies the given bytes into a new Key.
// An empty key is rejected.
func NewKey(secret []byte) (Key, error) {
	if len(secret) == 0 {
		return nil, ErrEmptyKey
	}
	k := make(Key, len(secret))
	copy(k, secret)
	return k, nil
}

// ParseBase32Key decodes a base32-encoded secret, the typical format used
// by two-factor enrollment tools. Whitespace is ignored, case is
// normalized, and padding is added if required.
func ParseBase32Key(encoded string) (Key, error) {
	clean := strings.ToUpper(strings.Join(strings.Fields(encoded), ""))
	if n := len(clean) % 8; n != 0 {
		clean += strings.Repeat("=", 8-n)
	}
	decoded, err := base32.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: secret must be valid base32: %v", ErrInvalidConfig, err)
	}
	return NewKey(decoded)
}

// Base32 returns the unpadded base32 encoding of the key, the form used
// in provisioning URLs.
func (k Key) Base32() string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(k)
}

// HMAC computes the keyed digest of message for the given hash mode.
func (k Key) HMAC(mode HashMode, message []byte) []byte {
	mac := hmac.New(mode.factory(), k)
	mac.Write(message)
	return mac.Sum(nil)
}

// ProtectedKey keeps the secret XOR-masked with a random pad while idle,
// so the plaintext key is not resident in memory between computations.
// Its HMAC output is identical to that of a plain Key over the same
// bytes.
type ProtectedKey struct {
	mu     sync.Mutex
	masked []byte
	pad    []byte
}

// NewProtectedKey builds a ProtectedKey from the given secret bytes.
// The caller may zero its copy of the secret after construction.
func NewProtectedKey(secret []byte) (*ProtectedKey, error) {
	if len(secret) == 0 {
		return nil, ErrEmptyKey
	}
	pad := make([]byte, len(secret))
	if _, err := rand.Read(pad); err != nil {
		return nil, fmt.Errorf("otp: failed to generate masking pad: %w", err)
	}
	masked := make([]byte, len(secret))
	for i := range secret {
		masked[i] = secret[i] ^ pad[i]
	}
	return &ProtectedKey{masked: masked, pad: pad}, nil
}

// HMAC computes the keyed digest of message for the given hash mode.
// The key is unmasked only for the duration of the call; an internal
// lock guarantees concurrent callers each observe a consistent
// unmask-use-zero cycle.
func (p *ProtectedKey) HMAC(mode HashMode, message []byte) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	plain := make([]byte, len(p.masked))
	for i := range p.masked {
		plain[i] = p.masked[i] ^ p.pad[i]
	}
	mac := hmac.New(mode.factory(), plain)
	mac.Write(message)
	for i := range plain {
		plain[i] = 0
	}
	return mac.Sum(nil)
}
