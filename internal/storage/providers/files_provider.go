package providers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ja-he/flycreate/internal/library"
	"github.com/ja-he/flycreate/internal/library/schema"
	"github.com/ja-he/flycreate/internal/storage"
)

// DefaultExtension is the extension of library files.
const DefaultExtension = ".lib"

// ErrBadFilename is returned when a file name cannot be used to store a
// library.
var ErrBadFilename = errors.New("bad library file name")

// FilesLibraryProvider stores libraries as files in a single directory.
// Implements storage.LibraryProvider.
type FilesLibraryProvider struct {
	BasePath  string
	Extension string

	records []*library.Record
	byName  map[string]*library.Record
	byFile  map[string]*library.Record

	log zerolog.Logger
}

// NewFilesLibraryProvider returns a provider over the given directory, which
// is created if it does not exist.
// An empty extension means DefaultExtension.
func NewFilesLibraryProvider(basePath, extension string, logger zerolog.Logger) (*FilesLibraryProvider, error) {
	if extension == "" {
		extension = DefaultExtension
	}
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("could not create library directory '%s' (%w)", basePath, err)
	}

	return &FilesLibraryProvider{
		BasePath:  basePath,
		Extension: extension,
		byName:    make(map[string]*library.Record),
		byFile:    make(map[string]*library.Record),
		log:       logger,
	}, nil
}

// Location returns the library directory.
func (p *FilesLibraryProvider) Location() string {
	return p.BasePath
}

func (p *FilesLibraryProvider) hasExtension(name string) bool {
	return strings.EqualFold(filepath.Ext(name), p.Extension)
}

// LoadAll reads every library file in the directory, in file name order.
//
// Files that cannot be read or fail strict parsing are logged, reported as
// skipped and otherwise ignored. Libraries sharing a name are all returned,
// but the name index holds the one loaded last.
// An error is only returned if the directory itself cannot be read, in which
// case the store is left empty.
func (p *FilesLibraryProvider) LoadAll() ([]*library.Record, []storage.SkippedFile, error) {
	p.records = nil
	p.byName = make(map[string]*library.Record)
	p.byFile = make(map[string]*library.Record)

	entries, err := os.ReadDir(p.BasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read library directory '%s' (%w)", p.BasePath, err)
	}

	skipped := []storage.SkippedFile{}
	for _, entry := range entries {
		if entry.IsDir() || !p.hasExtension(entry.Name()) {
			continue
		}
		path := filepath.Join(p.BasePath, entry.Name())

		rec, err := p.load(path)
		if err != nil {
			p.log.Warn().Str("file", path).Err(err).Msg("skipping library file")
			skipped = append(skipped, storage.SkippedFile{Path: path, Err: err})
			continue
		}

		if previous, ok := p.byName[rec.Name]; ok {
			p.log.Debug().Str("library", rec.Name).Str("file", path).Str("previous", previous.SourcePath).Msg("library name loaded again, replacing")
		}
		p.records = append(p.records, rec)
		p.byName[rec.Name] = rec
		p.byFile[path] = rec
	}

	p.log.Debug().Int("loaded", len(p.records)).Int("skipped", len(skipped)).Msg("loaded libraries")
	return p.records, skipped, nil
}

func (p *FilesLibraryProvider) load(path string) (*library.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file (%w)", err)
	}
	rec, err := schema.ParseStrict(data)
	if err != nil {
		return nil, err
	}
	rec.SourcePath = path
	return &rec, nil
}

// Records returns the libraries of the last load, in load order.
func (p *FilesLibraryProvider) Records() []*library.Record {
	return p.records
}

// ByName returns the library last loaded under the given name.
func (p *FilesLibraryProvider) ByName(name string) (*library.Record, bool) {
	rec, ok := p.byName[name]
	return rec, ok
}

// ByFile returns the library loaded from the given file.
func (p *FilesLibraryProvider) ByFile(path string) (*library.Record, bool) {
	rec, ok := p.byFile[filepath.Clean(path)]
	return rec, ok
}

// Install adds the library file at path to the store.
//
// The file has to pass strict parsing. It is copied into the directory under
// its base name (given the library extension if it lacks it), replacing any
// file of the same name; a file that is already in the directory is left in
// place.
// Returns the path of the installed file.
func (p *FilesLibraryProvider) Install(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read '%s' (%w)", path, err)
	}
	if _, err := schema.ParseStrict(data); err != nil {
		return "", fmt.Errorf("'%s' is not a valid library (%w)", path, err)
	}

	dst, err := p.destination(filepath.Base(path))
	if err != nil {
		return "", err
	}
	if same, err := samePath(path, dst); err == nil && same {
		return dst, nil
	}
	if err := writeFileAtomic(dst, data); err != nil {
		return "", fmt.Errorf("could not install '%s' (%w)", path, err)
	}
	p.log.Info().Str("from", path).Str("to", dst).Msg("installed library")
	return dst, nil
}

// Save writes the library to the store as pretty-printed JSON.
//
// Only the base name of filename is used; the library extension is appended
// if missing. An existing file of the same name is replaced.
// Returns the path of the written file.
func (p *FilesLibraryProvider) Save(rec library.Record, filename string) (string, error) {
	dst, err := p.destination(filepath.Base(strings.TrimSpace(filename)))
	if err != nil {
		return "", err
	}
	data, err := rec.MarshalPretty()
	if err != nil {
		return "", fmt.Errorf("could not serialize library '%s' (%w)", rec.Name, err)
	}
	if err := writeFileAtomic(dst, data); err != nil {
		return "", fmt.Errorf("could not save library '%s' (%w)", rec.Name, err)
	}
	p.log.Info().Str("library", rec.Name).Str("file", dst).Msg("saved library")
	return dst, nil
}

// ReadRaw returns the content of the file as it is.
func (p *FilesLibraryProvider) ReadRaw(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read '%s' (%w)", path, err)
	}
	return data, nil
}

func (p *FilesLibraryProvider) destination(base string) (string, error) {
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("%w: '%s'", ErrBadFilename, base)
	}
	if !p.hasExtension(base) {
		base += p.Extension
	}
	return filepath.Join(p.BasePath, base), nil
}

func samePath(a, b string) (bool, error) {
	aInfo, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	bInfo, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(aInfo, bInfo), nil
}
