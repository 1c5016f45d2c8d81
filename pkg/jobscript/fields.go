package jobscript

import "strings"

// Field identifies one canonical resource-request parameter.
// Several directive keys may alias to the same Field; see fieldSpecs.
type Field int

const (
	FieldJobName Field = iota
	FieldPartition
	FieldAccount
	FieldNodes
	FieldCPUsPerTask
	FieldMemory
	FieldTime
	FieldConstraint
	FieldTasksPerNode
	FieldGPUsPerNode
	FieldGres
	FieldOutput
	FieldError
	numFields
)

// valueKind selects the codec used to convert between directive text and the
// canonical in-memory representation of a field.
type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindMemory
	kindTime
)

type fieldSpec struct {
	// Canonical name, used in messages and as the edit surface.
	name string
	// Accepted long directive keys; the first one is emitted on synthesis.
	longKeys []string
	// Single-letter directive alias, empty if the field has none.
	shortKey string
	kind     valueKind
}

// fieldSpecs is ordered by the canonical append order used when synthesizing
// directives that have no corresponding line in the original script.
var fieldSpecs = [numFields]fieldSpec{
	FieldJobName:      {name: "job-name", longKeys: []string{"job-name"}, shortKey: "J", kind: kindString},
	FieldPartition:    {name: "partition", longKeys: []string{"partition"}, shortKey: "p", kind: kindString},
	FieldAccount:      {name: "account", longKeys: []string{"account"}, shortKey: "A", kind: kindString},
	FieldNodes:        {name: "nodes", longKeys: []string{"nodes"}, kind: kindInt},
	FieldCPUsPerTask:  {name: "cpus-per-task", longKeys: []string{"cpus-per-task", "cpus"}, kind: kindInt},
	FieldMemory:       {name: "mem", longKeys: []string{"mem", "memory"}, kind: kindMemory},
	FieldTime:         {name: "time", longKeys: []string{"time"}, kind: kindTime},
	FieldConstraint:   {name: "constraint", longKeys: []string{"constraint"}, shortKey: "C", kind: kindString},
	FieldTasksPerNode: {name: "ntasks-per-node", longKeys: []string{"ntasks-per-node"}, kind: kindInt},
	FieldGPUsPerNode:  {name: "gpus-per-node", longKeys: []string{"gpus-per-node"}, kind: kindInt},
	FieldGres:         {name: "gres", longKeys: []string{"gres"}, kind: kindString},
	FieldOutput:       {name: "output", longKeys: []string{"output"}, shortKey: "o", kind: kindString},
	FieldError:        {name: "error", longKeys: []string{"error"}, shortKey: "e", kind: kindString},
}

var (
	longKeyToField  = map[string]Field{}
	shortKeyToField = map[string]Field{}
)

func init() {
	for f, spec := range fieldSpecs {
		for _, key := range spec.longKeys {
			longKeyToField[key] = Field(f)
		}
		if spec.shortKey != "" {
			shortKeyToField[spec.shortKey] = Field(f)
		}
	}
}

// Fields returns all canonical fields in canonical append order.
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "unknown"
	}
	return fieldSpecs[f].name
}

// ResolveField maps a directive key to its canonical field. Long keys are
// matched case-insensitively; single-letter aliases are case-sensitive,
// matching the resource manager's option syntax.
func ResolveField(key string) (Field, bool) {
	if f, ok := longKeyToField[strings.ToLower(key)]; ok {
		return f, true
	}
	if f, ok := shortKeyToField[key]; ok {
		return f, true
	}
	return 0, false
}
