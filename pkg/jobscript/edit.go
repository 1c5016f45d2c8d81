package jobscript

import "github.com/pkg/errors"

// EditKind tags the two edit variants a host surface can issue against a
// ParameterSet.
type EditKind int

const (
	EditSet EditKind = iota
	EditClear
)

// Edit is one validated set-field or clear-field operation. Construct edits
// with NewSetEdit and NewClearEdit; the zero Edit is not valid.
type Edit struct {
	Kind  EditKind
	Field Field
	// Value is the raw surface text of a set edit, e.g. "8G" or "2:30:00".
	Value string
}

// NewSetEdit builds a set-field edit. The field name may be the canonical
// name or any directive alias; the value must decode with the field's codec.
func NewSetEdit(field, value string) (Edit, error) {
	f, ok := ResolveField(field)
	if !ok {
		return Edit{}, errors.Errorf("unknown field %q", field)
	}
	var probe ParameterSet
	if !probe.setDecoded(f, value) {
		return Edit{}, errors.Errorf("cannot parse %q as a value for field %s", value, f)
	}
	return Edit{Kind: EditSet, Field: f, Value: value}, nil
}

// NewClearEdit builds a clear-field edit.
func NewClearEdit(field string) (Edit, error) {
	f, ok := ResolveField(field)
	if !ok {
		return Edit{}, errors.Errorf("unknown field %q", field)
	}
	return Edit{Kind: EditClear, Field: f}, nil
}

// ApplyEdits returns a copy of params with the edits applied in order, later
// edits winning over earlier ones. The input set is not modified.
func ApplyEdits(params ParameterSet, edits ...Edit) ParameterSet {
	for _, edit := range edits {
		switch edit.Kind {
		case EditSet:
			params.setDecoded(edit.Field, edit.Value)
		case EditClear:
			params.Clear(edit.Field)
		}
	}
	return params
}
