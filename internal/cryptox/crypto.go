// Package cryptox derives keys from passphrases and seals byte payloads with
// AES-256-GCM.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"github.com/dmitrijs2005/passlist/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the length of the argon2 salt stored next to each payload.
	SaltSize = 16
	// KeySize selects AES-256.
	KeySize = 32
)

// ErrOpen is returned when a sealed payload cannot be authenticated, which in
// practice means the key (passphrase) is wrong or the bytes were altered.
var ErrOpen = errors.New("cannot open sealed payload")

// DeriveMasterKey stretches password with argon2id into a KeySize-byte key.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with key using AES-GCM.
//
// A fresh random nonce is generated on every call and returned separately
// from the ciphertext. The key must be 16, 24 or 32 bytes long.
func Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)

	return ciphertext, nonce, nil
}

// Open reverses Seal. Authentication failures are reported as ErrOpen.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aesgcm.NonceSize() {
		return nil, ErrOpen
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrOpen
	}
	return plaintext, nil
}

// NonceSize reports the nonce length produced by Seal.
func NonceSize() int {
	return 12
}
