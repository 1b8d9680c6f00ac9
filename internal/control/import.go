package control

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ja-he/flycreate/internal/library"
	"github.com/ja-he/flycreate/internal/library/schema"
)

// importNamespace scopes the name-based UUIDs used for suggested file names.
var importNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("flycreate/import"))

// Preview is a library recovered from freeform text, ready to be saved.
type Preview struct {
	Record library.Record
	// Text is the library as it would be written to its file.
	Text string
	// SuggestedFilename is the default file name for saving the library.
	SuggestedFilename string
}

// ImportFromText recovers a library from the loosely formatted text file at
// path. Fields that are not found are filled with defaults; if no field is
// found at all, library.ErrNoFields is returned.
func (e *Engine) ImportFromText(path string) (Preview, error) {
	data, err := e.store.ReadRaw(path)
	if err != nil {
		e.notifier.Error("Error", fmt.Sprintf("Could not read file: %s", err.Error()))
		return Preview{}, err
	}

	fields := schema.ExtractFields(string(data))
	if fields.Empty() {
		e.notifier.Error("Error", "Could not recognize any fields in the text.")
		return Preview{}, fmt.Errorf("could not import '%s' (%w)", path, library.ErrNoFields)
	}
	if fields.Code != nil && fields.Code.Outcome == schema.CodeRaw {
		e.log.Debug().Str("file", path).Msg("code could not be parsed, keeping it as text")
	}

	return e.preview(schema.BuildImport(fields))
}

func (e *Engine) preview(rec library.Record) (Preview, error) {
	text, err := rec.MarshalPretty()
	if err != nil {
		return Preview{}, fmt.Errorf("could not serialize library (%w)", err)
	}
	id := uuid.NewSHA1(importNamespace, text)
	return Preview{
		Record:            rec,
		Text:              string(text),
		SuggestedFilename: "imported_" + strings.ReplaceAll(id.String(), "-", "")[:6] + e.opts.Extension,
	}, nil
}

// SaveImported saves a previewed library into the store under filename, or
// under the suggested file name if filename is empty.
func (e *Engine) SaveImported(p Preview, filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		filename = p.SuggestedFilename
	}
	return e.save(p.Record, filename)
}

// CreateViaForm builds a library from form input and saves it into the store
// under filename, or under a name derived from the library name if filename is
// empty. Code that cannot be parsed aborts the creation.
func (e *Engine) CreateViaForm(form schema.Form, filename string) (string, error) {
	rec, err := schema.BuildForm(form)
	if err != nil {
		e.notifier.Error("Error", fmt.Sprintf("Could not parse code as JSON or literal: %s", err.Error()))
		return "", err
	}
	if strings.TrimSpace(filename) == "" {
		filename = schema.SuggestedFilename(rec, e.opts.Extension)
	}
	return e.save(rec, filename)
}

func (e *Engine) save(rec library.Record, filename string) (string, error) {
	dst, err := e.store.Save(rec, filename)
	if err != nil {
		e.notifier.Error("Error", fmt.Sprintf("Could not save library: %s", err.Error()))
		return "", err
	}
	if err := e.Reload(); err != nil {
		return dst, err
	}
	e.notifier.Info("Saved", fmt.Sprintf("Library saved to %s", dst))
	return dst, nil
}
