package store

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/passlist/internal/client/models"
	"github.com/dmitrijs2005/passlist/internal/common"
)

// OrderKey selects the primary sort field for display.
type OrderKey string

const (
	OrderByName OrderKey = "name"
	OrderByID   OrderKey = "id"
	OrderByTime OrderKey = "time"
	OrderByMemo OrderKey = "memo"
)

// OrderKeys lists the accepted keys, default first.
var OrderKeys = []OrderKey{OrderByName, OrderByID, OrderByTime, OrderByMemo}

// ParseOrderKey maps user input to an OrderKey. Empty input means
// OrderByName.
func ParseOrderKey(s string) (OrderKey, error) {
	key := OrderKey(strings.ToLower(strings.TrimSpace(s)))
	if key == "" {
		return OrderByName, nil
	}
	if !slices.Contains(OrderKeys, key) {
		return "", fmt.Errorf("order key %q: %w", s, common.ErrUnknownOperation)
	}
	return key, nil
}

func memoOf(r *models.Record) string {
	memo, _ := r.MemoText()
	return memo
}

func primaryField(key OrderKey) func(*models.Record) string {
	switch key {
	case OrderByID:
		return func(r *models.Record) string { return r.AccountID }
	case OrderByTime:
		return func(r *models.Record) string { return r.UpdateTime.String() }
	case OrderByMemo:
		return memoOf
	default:
		return func(r *models.Record) string { return r.Name }
	}
}

// Order returns a new slice with records sorted by key, ties broken by name.
// Fields compare as byte strings; an absent memo compares as empty. Records
// equal on both fields keep their input order. An unknown or empty key
// sorts by name. The input slice is left untouched.
func Order(records []*models.Record, key OrderKey) []*models.Record {
	primary := primaryField(key)

	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b *models.Record) int {
		return cmp.Or(
			strings.Compare(primary(a), primary(b)),
			strings.Compare(a.Name, b.Name),
		)
	})
	return out
}
