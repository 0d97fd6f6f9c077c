// Package store holds the in-memory credential set.
//
// A Store is built from the raw text of the flat file (Parse, or Open with a
// load collaborator), mutated through Add, DeleteByName and in-place record
// edits followed by MarkModified, and written back with Save, which only
// calls the save collaborator when something changed.
//
// # File format
//
// One record per line, fields separated by a single tab:
//
//	name \t accountId \t password \t YYYY/MM/DD [ \t memo ]
//
// Lines with a field count other than 4 or 5, or with an unreadable date,
// are dropped on load without an error. Blank lines are ignored.
//
// Order presents records for display without touching the store.
//
// A Store is not safe for concurrent use.
package store
