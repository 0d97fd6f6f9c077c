package vault

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/passlist/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_EmptyThenSaveLoad(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	text, err := s.Load(ctx, []byte("pass"))
	require.NoError(t, err)
	require.Empty(t, text)

	require.NoError(t, s.Save(ctx, "a\tb\tc\t2020/01/01\n", []byte("pass")))
	require.NoError(t, s.Save(ctx, "d\te\tf\t2020/01/02\n", []byte("pass")))

	text, err = s.Load(ctx, []byte("pass"))
	require.NoError(t, err)
	require.Equal(t, "d\te\tf\t2020/01/02\n", text, "second save replaces the first")

	_, err = s.Load(ctx, []byte("bad"))
	require.ErrorIs(t, err, common.ErrWrongPassphrase)
}

func TestSQLite_StoresSealedBlob(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "visible?", []byte("pass")))

	blob, err := NewSQLiteRepository(s.db).Get(ctx, recordsKey)
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "visible?")
}

func TestSQLite_FileDatabasePersists(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "db", "passlist.db")
	ctx := context.Background()

	s, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "kept\n", []byte("pass")))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	text, err := s.Load(ctx, []byte("pass"))
	require.NoError(t, err)
	require.Equal(t, "kept\n", text)
	require.Equal(t, dsn, s.Location())
}

func TestSQLite_Exists(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx)
	require.NoError(t, err)
	require.False(t, ok, "fresh database holds no store yet")

	require.NoError(t, s.Save(ctx, "", []byte("pass")))
	ok, err = s.Exists(ctx)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSQLiteRepository_GetPut(t *testing.T) {
	s := openMemory(t)
	r := NewSQLiteRepository(s.db)
	ctx := context.Background()

	v, err := r.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Put(ctx, "k", []byte("old")))
	require.NoError(t, r.Put(ctx, "k", []byte("new")))
	v, err = r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSQLiteRepository_DriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewSQLiteRepository(db)
	ctx := context.Background()
	boom := errors.New("database is locked")

	mock.ExpectQuery("SELECT value FROM vault").WithArgs("k").WillReturnError(boom)
	_, err = r.Get(ctx, "k")
	require.ErrorIs(t, err, boom)

	mock.ExpectExec("INSERT INTO vault").WithArgs("k", []byte("v")).WillReturnError(boom)
	require.ErrorIs(t, r.Put(ctx, "k", []byte("v")), boom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLite_SaveRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &SQLite{db: db, dsn: "mock", repo: NewSQLiteRepository(db)}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err = s.Save(context.Background(), "x", []byte("pass"))
	require.ErrorContains(t, err, "disk I/O error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_SelectsBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := Open(ctx, KindFile, filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.IsType(t, &PlainFile{}, b)

	b, err = Open(ctx, "", filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.IsType(t, &PlainFile{}, b)

	b, err = Open(ctx, KindSealed, filepath.Join(dir, "a.plst"))
	require.NoError(t, err)
	assert.IsType(t, &SealedFile{}, b)

	b, err = Open(ctx, KindSQLite, filepath.Join(dir, "a.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, b)
	require.NoError(t, b.Close())

	_, err = Open(ctx, "s3", "bucket")
	require.ErrorIs(t, err, common.ErrUnknownOperation)
}
