package jobscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobforgeproject/jobforge/internal/common/pointer"
)

func TestExtract(t *testing.T) {
	script := `#!/bin/bash
#SBATCH --job-name=train
#SBATCH --partition debug
#SBATCH --cpus-per-task=4
#SBATCH --mem=2048M
#SBATCH --time=2:30:00

python train.py
`
	result := Extract(script)

	assert.True(t, result.HasShebang)
	assert.Equal(t, "#!/bin/bash", result.Shebang)
	assert.Equal(t, ParameterSet{
		JobName:     pointer.Pointer("train"),
		Partition:   pointer.Pointer("debug"),
		CPUsPerTask: pointer.Pointer(4),
		MemoryGB:    pointer.Pointer(2),
		TimeMinutes: pointer.Pointer(150),
	}, result.Params)
	assert.Empty(t, result.Passthrough)
	assert.Equal(t, []string{"python train.py"}, result.Body)
}

func TestExtractShortAliases(t *testing.T) {
	script := `#SBATCH -J train
#SBATCH -p=gpu
#SBATCH -A research
#SBATCH -C haswell
#SBATCH -o out.log
#SBATCH -e err.log
`
	result := Extract(script)

	assert.False(t, result.HasShebang)
	assert.Equal(t, ParameterSet{
		JobName:    pointer.Pointer("train"),
		Partition:  pointer.Pointer("gpu"),
		Account:    pointer.Pointer("research"),
		Constraint: pointer.Pointer("haswell"),
		OutputPath: pointer.Pointer("out.log"),
		ErrorPath:  pointer.Pointer("err.log"),
	}, result.Params)
	assert.Empty(t, result.Passthrough)
}

func TestExtractLongKeyAliases(t *testing.T) {
	result := Extract("#SBATCH --memory=8G\n#SBATCH --cpus=2\n")
	assert.Equal(t, pointer.Pointer(8), result.Params.MemoryGB)
	assert.Equal(t, pointer.Pointer(2), result.Params.CPUsPerTask)
}

func TestExtractFirstWins(t *testing.T) {
	script := `#SBATCH --time=1:00:00
#SBATCH --time=2:00:00
#SBATCH -p short
#SBATCH --partition=long
`
	result := Extract(script)

	assert.Equal(t, pointer.Pointer(60), result.Params.TimeMinutes)
	assert.Equal(t, pointer.Pointer("short"), result.Params.Partition)
	require.Len(t, result.Passthrough, 2)
	assert.Equal(t, "#SBATCH --time=2:00:00", result.Passthrough[0].Raw)
	assert.Equal(t, "#SBATCH --partition=long", result.Passthrough[1].Raw)
	assert.False(t, result.Passthrough[0].Malformed)
}

func TestExtractUnknownAndMalformed(t *testing.T) {
	script := `#SBATCH --custom-flag=xyz
#SBATCH
#SBATCH garbage
#SBATCH --nodes=2
`
	result := Extract(script)

	assert.Equal(t, pointer.Pointer(2), result.Params.Nodes)
	require.Len(t, result.Passthrough, 3)
	assert.Equal(t, "#SBATCH --custom-flag=xyz", result.Passthrough[0].Raw)
	assert.False(t, result.Passthrough[0].Malformed)
	assert.True(t, result.Passthrough[1].Malformed)
	assert.True(t, result.Passthrough[2].Malformed)
}

func TestExtractUndecodableValuePassesThrough(t *testing.T) {
	script := `#SBATCH --time=whenever
#SBATCH --time=0:30:00
`
	result := Extract(script)

	// The first time line does not decode, so it does not resolve the field;
	// the second line wins and the first passes through.
	assert.Equal(t, pointer.Pointer(30), result.Params.TimeMinutes)
	require.Len(t, result.Passthrough, 1)
	assert.Equal(t, "#SBATCH --time=whenever", result.Passthrough[0].Raw)
}

func TestExtractBodyEndsDirectiveBlock(t *testing.T) {
	script := `#!/bin/bash
#SBATCH --nodes=1
echo setup
#SBATCH --nodes=4
`
	result := Extract(script)

	assert.Equal(t, pointer.Pointer(1), result.Params.Nodes)
	assert.Empty(t, result.Passthrough)
	assert.Equal(t, []string{"echo setup", "#SBATCH --nodes=4"}, result.Body)
}

func TestExtractBlankLinesInsideBlock(t *testing.T) {
	// Blank lines between the shebang and the directives are layout, not body.
	script := "#!/bin/bash\n\n#SBATCH --nodes=2\n\necho hi\n"
	result := Extract(script)

	assert.Equal(t, pointer.Pointer(2), result.Params.Nodes)
	assert.Equal(t, []string{"echo hi"}, result.Body)
}

func TestExtractEmptyAndDegenerateInput(t *testing.T) {
	assert.Equal(t, ExtractResult{}, Extract(""))

	result := Extract("just a text file\nwith two lines")
	assert.Equal(t, ParameterSet{}, result.Params)
	assert.Equal(t, []string{"just a text file", "with two lines"}, result.Body)
}
