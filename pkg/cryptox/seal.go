package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

var ErrSealedTooShort = errors.New("cryptox: sealed value too short")

// Sealer encrypts small secrets at rest (invite tokens) with XChaCha20-Poly1305.
// The key is derived from a master secret with HKDF-SHA256 so one secret can
// serve several purposes without key reuse.
type Sealer struct {
	key []byte
}

// NewSealer derives a purpose-bound key from secret. The purpose string is
// mixed into HKDF as the info parameter.
func NewSealer(secret []byte, purpose string) (*Sealer, error) {
	if len(secret) == 0 {
		return nil, errors.New("cryptox: empty sealing secret")
	}

	key := make([]byte, chacha20poly1305.KeySize)
	kdf := hkdf.New(sha256.New, secret, nil, []byte(purpose))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("cryptox: derive sealing key: %w", err)
	}

	return &Sealer{key: key}, nil
}

// NewEphemeralSealer returns a Sealer keyed by random bytes. Values sealed by
// it do not survive a restart, so it is only suitable for development.
func NewEphemeralSealer(purpose string) (*Sealer, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("cryptox: generate ephemeral secret: %w", err)
	}
	return NewSealer(secret, purpose)
}

// Seal encrypts plaintext. Output format: [24-byte nonce][ciphertext][16-byte tag].
// additional is authenticated but not encrypted; pass the record id so a
// sealed value cannot be moved between rows.
func (s *Sealer) Seal(plaintext, additional []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: create aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("cryptox: generate nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, plaintext, additional), nil
}

// Open reverses Seal. It fails if the value or the additional data was tampered with.
func (s *Sealer) Open(sealed, additional []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: create aead: %w", err)
	}

	if len(sealed) < aead.NonceSize()+aead.Overhead() {
		return nil, ErrSealedTooShort
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, additional)
	if err != nil {
		return nil, fmt.Errorf("cryptox: open sealed value: %w", err)
	}

	return plaintext, nil
}
