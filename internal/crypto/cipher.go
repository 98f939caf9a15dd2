package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log"

	"collabBoard/internal/errs"
)

const (
	nonceSize = 12
	tagSize   = 16
)

// Cipher encrypts message bodies at rest with AES-256-GCM. The key is
// derived by hashing the configured secret, so decrypt needs only the
// secret and the blob.
type Cipher struct {
	key []byte
}

func NewCipher(secret string) *Cipher {
	if secret == "" {
		log.Println("WARNING: encryption secret is not set, messages will be encrypted under a key derived from an empty string")
	}
	key := sha256.Sum256([]byte(secret))
	return &Cipher{key: key[:]}
}

// Encrypt returns base64(nonce || tag || ciphertext). A fresh random nonce
// is generated on every call, so identical plaintexts never produce
// identical blobs.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	aead, err := c.aead()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	// Seal returns ciphertext || tag; the stored layout puts the tag
	// directly after the nonce.
	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	payload := make([]byte, 0, nonceSize+tagSize+len(ciphertext))
	payload = append(payload, nonce...)
	payload = append(payload, tag...)
	payload = append(payload, ciphertext...)

	return base64.StdEncoding.EncodeToString(payload), nil
}

// Decrypt fails hard if the blob was truncated, corrupted or encrypted
// under a different key.
func (c *Cipher) Decrypt(payload string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrDecryptFailed, err)
	}
	if len(data) < nonceSize+tagSize {
		return "", fmt.Errorf("%w: payload too short", errs.ErrDecryptFailed)
	}

	nonce := data[:nonceSize]
	tag := data[nonceSize : nonceSize+tagSize]
	ciphertext := data[nonceSize+tagSize:]

	aead, err := c.aead()
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(ciphertext)+tagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrDecryptFailed, err)
	}
	return string(plaintext), nil
}

func (c *Cipher) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
