package schema

import (
	"fmt"
	"strings"

	"github.com/ja-he/flycreate/internal/library"
)

// Form holds the user-authored fields of a library to be created.
type Form struct {
	Kind    string
	Name    string
	Creator string
	Value   string
	Code    string
}

// BuildForm builds a library record from form input.
// Empty fields get defaults; the code must parse (see ParseFormCode).
func BuildForm(form Form) (library.Record, error) {
	kind := firstNonEmpty(strings.TrimSpace(form.Kind), string(library.KindTheme))

	code, err := ParseFormCode(form.Code)
	if err != nil {
		return library.Record{}, err
	}

	return library.Record{
		Kind:         library.Kind(kind),
		Name:         firstNonEmpty(strings.TrimSpace(form.Name), DefaultFormName),
		Creator:      firstNonEmpty(strings.TrimSpace(form.Creator), DefaultCreator),
		DeclaredKind: firstNonEmpty(strings.TrimSpace(form.Value), kind),
		Code:         code,
	}, nil
}

// SuggestedFilename returns the file name a created library is saved under by
// default.
func SuggestedFilename(rec library.Record, ext string) string {
	return fmt.Sprintf("%s%s", strings.ReplaceAll(rec.Name, " ", "_"), ext)
}
