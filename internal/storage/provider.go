// Package storage defines how installed libraries are stored.
package storage

import (
	"github.com/ja-he/flycreate/internal/library"
)

// SkippedFile is a library file that was not loaded, and why.
type SkippedFile struct {
	Path string
	Err  error
}

// LibraryProvider is the abstracted library store, which can be implemented
// over various storage systems.
//
// The provider's responsibilities are as follows:
//   - read all stored libraries, skipping (and reporting) unusable ones
//   - index the loaded libraries by name and by origin
//   - add libraries to the store, never partially
//
// Adding libraries does not reload; callers reload when they are done.
type LibraryProvider interface {
	// Location returns a description of where libraries are stored, e.g. a
	// directory.
	Location() string

	LoadAll() ([]*library.Record, []SkippedFile, error)
	Records() []*library.Record
	ByName(name string) (*library.Record, bool)
	ByFile(path string) (*library.Record, bool)

	Install(path string) (string, error)
	Save(rec library.Record, filename string) (string, error)
	ReadRaw(path string) ([]byte, error)
}
