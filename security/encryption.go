package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

var encryptionKey []byte

// keyInfo binds derived keys to their use
var keyInfo = []byte("jointbank invitation e-mail")

// InitializeEncryption derives the AES-256 key used for data at rest from
// the configured secret
func InitializeEncryption(secret string) {
	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, keyInfo)
	if _, err := io.ReadFull(kdf, key); err != nil {
		// hkdf only fails past 255 blocks of output
		panic(err)
	}
	encryptionKey = key
}

func newGCM() (cipher.AEAD, error) {
	if len(encryptionKey) == 0 {
		return nil, errors.New("encryption key not initialized")
	}

	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

// Encrypt seals a string with AES-GCM and returns it base64 encoded, nonce first
func Encrypt(plaintext string) (string, error) {
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt
func Decrypt(encrypted string) (string, error) {
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}

	sealed, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", err
	}

	if len(sealed) < gcm.NonceSize() {
		return "", errors.New("ciphertext too short")
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// MaskEmail hides most of the local part of an e-mail address for logs,
// e.g. "partner@example.com" becomes "p******@example.com". A one letter
// local part is masked completely.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return strings.Repeat("*", len(email))
	}
	if at == 1 {
		return "*" + email[at:]
	}
	return email[:1] + strings.Repeat("*", at-1) + email[at:]
}
