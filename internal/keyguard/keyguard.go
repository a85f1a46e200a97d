package keyguard

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"keymarket/config"
	"keymarket/pkg/errors"
)

// Guard owns the two key-material secrets: the fingerprint secret keys the
// one-way xpub digest, the encryption key protects xpubs at rest. Plaintext
// xpubs only ever exist in memory between Reveal and delivery.
type Guard struct {
	secret []byte
	aead   cipher.AEAD
}

func New(fingerprintSecret, encryptionKey []byte) (*Guard, error) {
	if len(encryptionKey) != 32 {
		return nil, errors.ErrEncryptionKeyBad
	}

	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "init cipher", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "init gcm", err)
	}

	return &Guard{secret: fingerprintSecret, aead: aead}, nil
}

// FromConfig builds a Guard from the hex-encoded market secrets.
func FromConfig(cfg *config.Config) (*Guard, error) {
	key, err := hex.DecodeString(cfg.Market.EncryptionKey)
	if err != nil {
		return nil, errors.ErrEncryptionKeyBad
	}
	return New([]byte(cfg.Market.FingerprintSecret), key)
}

// Fingerprint returns the keyed one-way digest used for existence and
// duplicate checks without exposing the key. Fails closed when the secret
// is not configured: an unkeyed digest would be open to collision probing.
func (g *Guard) Fingerprint(rawKey string) (string, error) {
	if len(g.secret) == 0 {
		return "", errors.ErrSecretMissing
	}
	if rawKey == "" {
		return "", errors.ErrInvalidXpub
	}

	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(rawKey))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// VerifyFingerprint recomputes the digest and compares. Fingerprints are
// not secrets, plain comparison is fine.
func (g *Guard) VerifyFingerprint(rawKey, fingerprint string) (bool, error) {
	computed, err := g.Fingerprint(rawKey)
	if err != nil {
		return false, err
	}
	return computed == fingerprint, nil
}

// EncryptAtRest seals the xpub with AES-256-GCM. Output is nonce || ciphertext.
func (g *Guard) EncryptAtRest(rawKey string) ([]byte, error) {
	if rawKey == "" {
		return nil, errors.ErrInvalidXpub
	}

	nonce := make([]byte, g.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "generate nonce", err)
	}

	return g.aead.Seal(nonce, nonce, []byte(rawKey), nil), nil
}

// Reveal opens a ciphertext produced by EncryptAtRest. Authentication
// failure means tampering or key loss and is never retried.
func (g *Guard) Reveal(ciphertext []byte) (string, error) {
	if len(ciphertext) <= g.aead.NonceSize() {
		return "", errors.ErrCiphertextTampered
	}

	nonce := ciphertext[:g.aead.NonceSize()]
	plaintext, err := g.aead.Open(nil, nonce, ciphertext[g.aead.NonceSize():], nil)
	if err != nil {
		return "", errors.ErrCiphertextTampered
	}
	return string(plaintext), nil
}
