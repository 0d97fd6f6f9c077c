package store

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/passlist/internal/client/models"
	"github.com/stretchr/testify/require"
)

type fakeSaver struct {
	calls      int
	text       string
	passphrase []byte
	err        error
}

func (f *fakeSaver) Save(ctx context.Context, text string, passphrase []byte) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.text = text
	f.passphrase = passphrase
	return nil
}

type fakeLoader struct {
	raw        string
	err        error
	passphrase []byte
}

func (f *fakeLoader) Load(ctx context.Context, passphrase []byte) (string, error) {
	f.passphrase = passphrase
	return f.raw, f.err
}

func rec(t *testing.T, name, id, date string) *models.Record {
	t.Helper()
	d, err := models.ParseDate(date)
	require.NoError(t, err)
	return &models.Record{Name: name, AccountID: id, Password: "pw-" + name, UpdateTime: d}
}

func names(records []*models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}
