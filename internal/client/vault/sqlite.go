package vault

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/passlist/internal/client/migrations"
	"github.com/dmitrijs2005/passlist/internal/common"
	"github.com/dmitrijs2005/passlist/internal/dbx"
	"github.com/dmitrijs2005/passlist/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// recordsKey is the vault row holding the sealed store text.
const recordsKey = "records"

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// SQLite keeps the sealed store text as a blob in a local sqlite database.
type SQLite struct {
	db   *sql.DB
	dsn  string
	repo Repository
}

// OpenSQLite opens (creating if needed) the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	if dsn != ":memory:" {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one connection keeps ":memory:" databases alive and writes serialized
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return &SQLite{db: db, dsn: dsn, repo: NewSQLiteRepository(db)}, nil
}

func (s *SQLite) Load(ctx context.Context, passphrase []byte) (string, error) {
	data, err := s.repo.Get(ctx, recordsKey)
	if err != nil {
		return "", err
	}
	if data == nil {
		if len(passphrase) == 0 {
			return "", common.ErrNoPassphrase
		}
		return "", nil
	}
	return unseal(data, passphrase)
}

func (s *SQLite) Save(ctx context.Context, text string, passphrase []byte) error {
	data, err := seal(text, passphrase)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).Put(ctx, recordsKey, data)
	})
}

func (s *SQLite) Exists(ctx context.Context) (bool, error) {
	data, err := s.repo.Get(ctx, recordsKey)
	if err != nil {
		return false, err
	}
	return data != nil, nil
}

func (s *SQLite) NeedsPassphrase() bool { return true }
func (s *SQLite) Location() string      { return s.dsn }

func (s *SQLite) Close() error {
	return s.db.Close()
}
