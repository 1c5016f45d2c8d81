package jobforgectl

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobforgeproject/jobforge/internal/common/pointer"
	"github.com/jobforgeproject/jobforge/pkg/jobscript"
)

func loadTestConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigFile(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, viper.ReadInConfig())
}

func TestLoadPresets(t *testing.T) {
	loadTestConfig(t)

	params := &Params{}
	require.NoError(t, params.LoadPresets())

	assert.Equal(t, jobscript.ParameterSet{
		Partition:   pointer.Pointer("gpu"),
		GPUsPerNode: pointer.Pointer(2),
		Gres:        pointer.Pointer("gpu:2"),
		MemoryGB:    pointer.Pointer(32),
		TimeMinutes: pointer.Pointer(240),
	}, params.Presets["gpu"])

	// Time in bare minutes and memory in megabytes decode with the same
	// codecs as directive lines.
	assert.Equal(t, jobscript.ParameterSet{
		MemoryGB:    pointer.Pointer(4),
		TimeMinutes: pointer.Pointer(30),
	}, params.Presets["short"])
}

func TestLoadPresetsWithoutConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	params := &Params{}
	require.NoError(t, params.LoadPresets())
	assert.Empty(t, params.Presets)
}

func TestPresetLookup(t *testing.T) {
	params := &Params{Presets: map[string]jobscript.ParameterSet{
		"gpu":   {Partition: pointer.Pointer("gpu")},
		"short": {TimeMinutes: pointer.Pointer(30)},
	}}

	preset, err := params.Preset("gpu")
	require.NoError(t, err)
	assert.Equal(t, pointer.Pointer("gpu"), preset.Partition)

	_, err = params.Preset("tpu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available presets: gpu, short")
}
