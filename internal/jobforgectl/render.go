package jobforgectl

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/jobforgeproject/jobforge/pkg/jobscript"
)

// Render reads a job script from in, overlays the named preset (if any),
// applies the given edits, and writes the regenerated script to the app
// output. Preset values take precedence over values already present in the
// script; explicit edits take precedence over both.
func (a *App) Render(in io.Reader, presetName string, edits []jobscript.Edit) error {
	text, err := io.ReadAll(in)
	if err != nil {
		return errors.Errorf("[jobforgectl.Render] error reading script: %s", err)
	}

	params := jobscript.Extract(string(text)).Params
	if presetName != "" {
		preset, err := a.Params.Preset(presetName)
		if err != nil {
			return err
		}
		params = params.Merge(preset)
	}
	params = jobscript.ApplyEdits(params, edits...)

	fmt.Fprint(a.Out, jobscript.Synthesize(string(text), params))
	return nil
}
