// Package models defines the credential record kept by passlist.
package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/passlist/internal/common"
)

// Date is a calendar day without time of day or zone.
//
// A Date read from text that is not a valid YYYY/MM/DD day keeps that text
// verbatim and prints it back unchanged.
type Date struct {
	Year  int
	Month time.Month
	Day   int

	raw string
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY/MM/DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(common.DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateFromText parses s like ParseDate. Text that does not parse is kept
// as is rather than rejected.
func DateFromText(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		return Date{raw: s}
	}
	return d
}

// Valid reports whether d is a real calendar day rather than kept text.
func (d Date) Valid() bool {
	return d.raw == "" && d.Month != 0
}

// String formats d as YYYY/MM/DD, which sorts chronologically as a string.
// Kept text is returned unchanged.
func (d Date) String() string {
	if d.raw != "" {
		return d.raw
	}
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, int(d.Month), d.Day)
}

// Record is one credential entry.
//
// Fields are edited in place by callers. Changing a field does not refresh
// UpdateTime (use Touch) and is not seen by the store that owns the record
// (use Store.MarkModified).
type Record struct {
	Name       string
	AccountID  string
	Password   string
	UpdateTime Date
	// Memo is nil when the record has no memo. A non-nil empty memo is kept
	// as an empty trailing field on disk.
	Memo *string
}

// NewRecord builds a record stamped with the day of now.
func NewRecord(name, accountID, password string, now time.Time) *Record {
	return &Record{
		Name:       name,
		AccountID:  accountID,
		Password:   password,
		UpdateTime: DateOf(now),
	}
}

// Touch sets UpdateTime to the day of now.
func (r *Record) Touch(now time.Time) {
	r.UpdateTime = DateOf(now)
}

// SetMemo attaches a memo, empty text included.
func (r *Record) SetMemo(text string) {
	r.Memo = &text
}

// ClearMemo removes the memo.
func (r *Record) ClearMemo() {
	r.Memo = nil
}

// MemoText returns the memo and whether one is present.
func (r *Record) MemoText() (string, bool) {
	if r.Memo == nil {
		return "", false
	}
	return *r.Memo, true
}
