package vault

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passlist/internal/common"
	"github.com/dmitrijs2005/passlist/internal/cryptox"
	"github.com/dmitrijs2005/passlist/internal/filex"
)

// SealedRevision is the version of the sealed layout. It must be bumped on
// any incompatible change to seal/unseal.
const SealedRevision uint16 = 1

var sealedMagic = []byte("PLST")

// sealed layout:
//
//	4 bytes  magic "PLST"
//	2 bytes  revision, little endian
//	16 bytes argon2 salt
//	12 bytes AES-GCM nonce
//	rest     ciphertext
const sealedHeaderSize = 4 + 2 + cryptox.SaltSize

// seal encrypts text with a key derived from passphrase and a fresh salt.
func seal(text string, passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, common.ErrNoPassphrase
	}

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	key := cryptox.DeriveMasterKey(passphrase, salt)
	defer common.WipeByteArray(key)

	ciphertext, nonce, err := cryptox.Seal([]byte(text), key)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(sealedHeaderSize + len(nonce) + len(ciphertext))
	buf.Write(sealedMagic)
	_ = binary.Write(&buf, binary.LittleEndian, SealedRevision)
	buf.Write(salt)
	buf.Write(nonce)
	buf.Write(ciphertext)
	return buf.Bytes(), nil
}

// unseal reverses seal.
func unseal(data []byte, passphrase []byte) (string, error) {
	if len(passphrase) == 0 {
		return "", common.ErrNoPassphrase
	}
	if len(data) < sealedHeaderSize+cryptox.NonceSize() || !bytes.Equal(data[:4], sealedMagic) {
		return "", common.ErrCorruptVault
	}

	rev := binary.LittleEndian.Uint16(data[4:6])
	if rev != SealedRevision {
		return "", fmt.Errorf("revision %d: %w", rev, common.ErrCorruptVault)
	}

	salt := data[6:sealedHeaderSize]
	nonce := data[sealedHeaderSize : sealedHeaderSize+cryptox.NonceSize()]
	ciphertext := data[sealedHeaderSize+cryptox.NonceSize():]

	key := cryptox.DeriveMasterKey(passphrase, salt)
	defer common.WipeByteArray(key)

	plaintext, err := cryptox.Open(ciphertext, nonce, key)
	if errors.Is(err, cryptox.ErrOpen) {
		return "", common.ErrWrongPassphrase
	}
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return string(plaintext), nil
}

// SealedFile keeps the store encrypted with a passphrase-derived key.
type SealedFile struct {
	path string
}

func NewSealedFile(path string) *SealedFile {
	return &SealedFile{path: path}
}

// Load decrypts the file. A missing file reads as an empty store, but a
// passphrase is still required so the first save has one.
func (s *SealedFile) Load(ctx context.Context, passphrase []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(passphrase) == 0 {
		return "", common.ErrNoPassphrase
	}

	data, ok, err := filex.ReadIfExists(s.path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return unseal(data, passphrase)
}

func (s *SealedFile) Save(ctx context.Context, text string, passphrase []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := seal(text, passphrase)
	if err != nil {
		return err
	}
	return filex.WriteAtomic(s.path, data, 0o600)
}

func (s *SealedFile) Exists(ctx context.Context) (bool, error) {
	return filex.Exists(s.path)
}

func (s *SealedFile) NeedsPassphrase() bool { return true }
func (s *SealedFile) Location() string      { return s.path }
func (s *SealedFile) Close() error          { return nil }
