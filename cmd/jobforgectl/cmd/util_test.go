package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobforgeproject/jobforge/pkg/jobscript"
)

func TestParseEditFlags(t *testing.T) {
	edits, err := parseEditFlags([]string{"mem=8G", "p=gpu"}, []string{"time"})
	require.NoError(t, err)
	require.Len(t, edits, 3)
	assert.Equal(t, jobscript.Edit{Kind: jobscript.EditSet, Field: jobscript.FieldMemory, Value: "8G"}, edits[0])
	assert.Equal(t, jobscript.Edit{Kind: jobscript.EditSet, Field: jobscript.FieldPartition, Value: "gpu"}, edits[1])
	assert.Equal(t, jobscript.Edit{Kind: jobscript.EditClear, Field: jobscript.FieldTime}, edits[2])
}

func TestParseEditFlagsErrors(t *testing.T) {
	_, err := parseEditFlags([]string{"mem"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected field=value")

	_, err = parseEditFlags([]string{"walltime=1:00:00"}, nil)
	assert.Error(t, err)

	_, err = parseEditFlags(nil, []string{"walltime"})
	assert.Error(t, err)
}
