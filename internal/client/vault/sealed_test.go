package vault

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/passlist/internal/common"
	"github.com/stretchr/testify/require"
)

func TestSealUnseal_RoundTrip(t *testing.T) {
	data, err := seal("a\tb\tc\t2020/01/01\n", []byte("pass"))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("PLST")))

	text, err := unseal(data, []byte("pass"))
	require.NoError(t, err)
	require.Equal(t, "a\tb\tc\t2020/01/01\n", text)
}

func TestSeal_FreshSaltEachTime(t *testing.T) {
	a, err := seal("same", []byte("pass"))
	require.NoError(t, err)
	b, err := seal("same", []byte("pass"))
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestUnseal_Errors(t *testing.T) {
	good, err := seal("secret", []byte("pass"))
	require.NoError(t, err)

	badRev := bytes.Clone(good)
	badRev[4] = 9

	tampered := bytes.Clone(good)
	tampered[len(tampered)-1] ^= 0xff

	tests := []struct {
		name       string
		data       []byte
		passphrase string
		want       error
	}{
		{name: "wrong passphrase", data: good, passphrase: "nope", want: common.ErrWrongPassphrase},
		{name: "tampered ciphertext", data: tampered, passphrase: "pass", want: common.ErrWrongPassphrase},
		{name: "no passphrase", data: good, passphrase: "", want: common.ErrNoPassphrase},
		{name: "too short", data: []byte("PLST"), passphrase: "pass", want: common.ErrCorruptVault},
		{name: "bad magic", data: append([]byte("XXXX"), good[4:]...), passphrase: "pass", want: common.ErrCorruptVault},
		{name: "unknown revision", data: badRev, passphrase: "pass", want: common.ErrCorruptVault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unseal(tt.data, []byte(tt.passphrase))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSeal_RequiresPassphrase(t *testing.T) {
	_, err := seal("x", nil)
	require.ErrorIs(t, err, common.ErrNoPassphrase)
}

func TestSealedFile_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.plst")
	s := NewSealedFile(path)
	ctx := context.Background()

	require.True(t, s.NeedsPassphrase())
	require.NoError(t, s.Save(ctx, "github\tme\tpw\t2024/01/02\n", []byte("pass")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "github", "contents must be encrypted")

	text, err := s.Load(ctx, []byte("pass"))
	require.NoError(t, err)
	require.Equal(t, "github\tme\tpw\t2024/01/02\n", text)

	_, err = s.Load(ctx, []byte("wrong"))
	require.ErrorIs(t, err, common.ErrWrongPassphrase)
}

func TestSealedFile_MissingFile(t *testing.T) {
	s := NewSealedFile(filepath.Join(t.TempDir(), "store.plst"))

	text, err := s.Load(context.Background(), []byte("pass"))
	require.NoError(t, err)
	require.Empty(t, text)

	_, err = s.Load(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrNoPassphrase)

	ok, err := s.Exists(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Save(context.Background(), "", []byte("pass")))
	ok, err = s.Exists(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSealedFile_SaveWithoutPassphraseLeavesFileAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.plst")
	s := NewSealedFile(path)

	require.ErrorIs(t, s.Save(context.Background(), "x", nil), common.ErrNoPassphrase)

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
