package store

import (
	"context"

	"github.com/dmitrijs2005/passlist/internal/client/models"
)

// Loader returns the decoded text of the backing file.
type Loader interface {
	Load(ctx context.Context, passphrase []byte) (string, error)
}

// Saver persists serialized text, encrypting it with passphrase when the
// implementation does that.
type Saver interface {
	Save(ctx context.Context, text string, passphrase []byte) error
}

type Store struct {
	records      []*models.Record
	dirty        bool
	filePassword []byte
}

// Parse builds a clean Store from raw file text. Records keep file order.
func Parse(raw string) *Store {
	return &Store{records: parseRecords(raw)}
}

// Open loads raw text through loader and parses it. The passphrase is handed
// to the loader and kept for later saves. When the loader fails its error is
// returned as is and no Store is built.
func Open(ctx context.Context, loader Loader, passphrase []byte) (*Store, error) {
	raw, err := loader.Load(ctx, passphrase)
	if err != nil {
		return nil, err
	}

	s := Parse(raw)
	s.SetFilePassword(passphrase)
	return s, nil
}

// Get returns the record called name. When several records share the name,
// the one added last (latest in All order) wins.
func (s *Store) Get(name string) (*models.Record, bool) {
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].Name == name {
			return s.records[i], true
		}
	}
	return nil, false
}

// All returns the live record slice in insertion order. Callers must not
// add or delete through the store while ranging over it.
func (s *Store) All() []*models.Record {
	return s.records
}

// Len reports the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Add appends r. Duplicate names are allowed.
func (s *Store) Add(r *models.Record) {
	s.records = append(s.records, r)
	s.dirty = true
}

// DeleteByName removes every record called name and returns how many were
// removed. The store only becomes dirty when something was removed.
func (s *Store) DeleteByName(name string) int {
	kept := make([]*models.Record, 0, len(s.records))
	for _, r := range s.records {
		if r.Name != name {
			kept = append(kept, r)
		}
	}

	removed := len(s.records) - len(kept)
	if removed > 0 {
		s.records = kept
		s.dirty = true
	}
	return removed
}

// MarkModified records that a record was edited in place.
func (s *Store) MarkModified() {
	s.dirty = true
}

// Dirty reports whether there are unsaved changes.
func (s *Store) Dirty() bool {
	return s.dirty
}

// SetFilePassword keeps an opaque passphrase to hand to the saver. It does
// not change the dirty state.
func (s *Store) SetFilePassword(p []byte) {
	s.filePassword = p
}

// FilePassword returns the passphrase bound with SetFilePassword, if any.
func (s *Store) FilePassword() []byte {
	return s.filePassword
}

// Serialize renders every record in the on-disk format.
func (s *Store) Serialize() string {
	return formatRecords(s.records)
}

// Save writes the records through saver when the store is dirty and does
// nothing otherwise. The dirty flag is cleared only when saver succeeds;
// a saver error is returned as is.
func (s *Store) Save(ctx context.Context, saver Saver) error {
	if !s.dirty {
		return nil
	}

	if err := saver.Save(ctx, s.Serialize(), s.filePassword); err != nil {
		return err
	}

	s.dirty = false
	return nil
}
