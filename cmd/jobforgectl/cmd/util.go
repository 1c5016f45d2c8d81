package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/jobforgeproject/jobforge/pkg/jobscript"
)

// registerEditFlags adds the parameter-edit flags shared by commands that
// modify a script.
func registerEditFlags(flags *pflag.FlagSet) {
	flags.StringArray("set", nil, `set a parameter field, e.g. --set mem=8G or --set time=2:00:00 (repeatable)`)
	flags.StringArray("clear", nil, "clear a parameter field, dropping its directive line (repeatable)")
}

// parseEditFlags converts --set and --clear flag values into validated edits.
func parseEditFlags(sets, clears []string) ([]jobscript.Edit, error) {
	var edits []jobscript.Edit
	for _, s := range sets {
		field, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, errors.Errorf("expected field=value, got %q", s)
		}
		edit, err := jobscript.NewSetEdit(field, value)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}
	for _, field := range clears {
		edit, err := jobscript.NewClearEdit(field)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

// openScript opens the script named by args, or standard input when no
// argument (or "-") is given. The returned closer is never nil.
func openScript(args []string) (io.Reader, func() error, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, errors.Errorf("error opening script %s: %s", args[0], err)
	}
	return f, f.Close, nil
}
