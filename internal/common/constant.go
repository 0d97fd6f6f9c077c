// Package common contains shared constants and sentinel errors used across
// passlist components.
package common

// DefaultStoreFile is the file name used when no store path is configured.
const DefaultStoreFile = "passlist.txt"

// DateLayout is the on-disk layout of a record's update date.
const DateLayout = "2006/01/02"

// FieldSeparator separates record fields on a single line of the store file.
const FieldSeparator = "\t"
