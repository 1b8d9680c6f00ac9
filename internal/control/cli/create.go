package cli

import (
	"fmt"

	"github.com/ja-he/flycreate/internal/library/schema"
)

// ImportCommand recovers a library from loosely formatted text.
type ImportCommand struct {
	Save     bool   `short:"s" long:"save" description:"save the recovered library into the library directory"`
	Filename string `short:"f" long:"filename" description:"file name to save under (default: a name derived from the text)" value-name:"<name>"`

	Args struct {
		File string `positional-arg-name:"<file>" description:"text file to import"`
	} `positional-args:"true" required:"true"`
}

// Execute prints the recovered library and, with --save, saves it.
func (command *ImportCommand) Execute(args []string) error {
	s, err := newSession(&Opts)
	if err != nil {
		return err
	}

	preview, err := s.engine.ImportFromText(command.Args.File)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, preview.Text)

	if !command.Save {
		fmt.Fprintf(stdout, "(not saved; would be saved as %s)\n", preview.SuggestedFilename)
		return nil
	}
	_, err = s.engine.SaveImported(preview, command.Filename)
	return err
}

// CreateCommand creates a library from field values, as in the creation
// form of the editor.
type CreateCommand struct {
	Kind     string `long:"type" description:"the library type (default: theme)" value-name:"<type>"`
	Name     string `long:"name" description:"the library name" value-name:"<name>"`
	Creator  string `long:"creator" description:"the library creator" value-name:"<creator>"`
	Value    string `long:"value" description:"the declared kind (default: the type)" value-name:"<value>"`
	Code     string `long:"code" description:"the payload, as JSON or as a literal mapping" value-name:"<code>"`
	Filename string `short:"f" long:"filename" description:"file name to save under (default: derived from the name)" value-name:"<name>"`
}

// Execute builds and saves the library.
func (command *CreateCommand) Execute(args []string) error {
	s, err := newSession(&Opts)
	if err != nil {
		return err
	}
	_, err = s.engine.CreateViaForm(schema.Form{
		Kind:    command.Kind,
		Name:    command.Name,
		Creator: command.Creator,
		Value:   command.Value,
		Code:    command.Code,
	}, command.Filename)
	return err
}
