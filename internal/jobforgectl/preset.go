package jobforgectl

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	goslices "golang.org/x/exp/slices"

	"github.com/jobforgeproject/jobforge/internal/common/pointer"
	"github.com/jobforgeproject/jobforge/pkg/jobscript"
)

// gigabytes and minutes are distinct int types so that decode hooks can tell
// a memory value apart from a time value when unmarshalling preset config.
type (
	gigabytes int
	minutes   int
)

// presetSpec mirrors jobscript.ParameterSet with the surface forms accepted
// in config files: memory as "16G"/"2048M", time as "2:00:00" or minutes.
type presetSpec struct {
	JobName      *string    `mapstructure:"jobName"`
	Partition    *string    `mapstructure:"partition"`
	Account      *string    `mapstructure:"account"`
	Nodes        *int       `mapstructure:"nodes"`
	CPUsPerTask  *int       `mapstructure:"cpusPerTask"`
	Memory       *gigabytes `mapstructure:"mem"`
	Time         *minutes   `mapstructure:"time"`
	Constraint   *string    `mapstructure:"constraint"`
	TasksPerNode *int       `mapstructure:"tasksPerNode"`
	GPUsPerNode  *int       `mapstructure:"gpusPerNode"`
	Gres         *string    `mapstructure:"gres"`
	OutputPath   *string    `mapstructure:"output"`
	ErrorPath    *string    `mapstructure:"error"`
}

func (s presetSpec) parameterSet() jobscript.ParameterSet {
	params := jobscript.ParameterSet{
		JobName:      s.JobName,
		Partition:    s.Partition,
		Account:      s.Account,
		Nodes:        s.Nodes,
		CPUsPerTask:  s.CPUsPerTask,
		Constraint:   s.Constraint,
		TasksPerNode: s.TasksPerNode,
		GPUsPerNode:  s.GPUsPerNode,
		Gres:         s.Gres,
		OutputPath:   s.OutputPath,
		ErrorPath:    s.ErrorPath,
	}
	if s.Memory != nil {
		params.MemoryGB = pointer.Pointer(int(*s.Memory))
	}
	if s.Time != nil {
		params.TimeMinutes = pointer.Pointer(int(*s.Time))
	}
	return params
}

// MemoryDecodeHook decodes config values targeting a memory field with the
// same codec used for directive lines.
func MemoryDecodeHook() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(gigabytes(0)) {
			return data, nil
		}
		gb, ok := jobscript.DecodeMemory(fmt.Sprintf("%v", data))
		if !ok {
			return nil, errors.Errorf("cannot parse %v as a memory size", data)
		}
		return gigabytes(gb), nil
	}
}

// TimeDecodeHook decodes config values targeting a time field with the same
// codec used for directive lines.
func TimeDecodeHook() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(minutes(0)) {
			return data, nil
		}
		m, ok := jobscript.DecodeTime(fmt.Sprintf("%v", data))
		if !ok {
			return nil, errors.Errorf("cannot parse %v as a time limit", data)
		}
		return minutes(m), nil
	}
}

// LoadPresets fills p.Presets from the "presets" key of the loaded config.
func (p *Params) LoadPresets() error {
	specs := map[string]presetSpec{}
	err := viper.UnmarshalKey("presets", &specs, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(MemoryDecodeHook(), TimeDecodeHook()),
	))
	if err != nil {
		return errors.Errorf("[jobforgectl.LoadPresets] error reading presets from config: %s", err)
	}

	p.Presets = make(map[string]jobscript.ParameterSet, len(specs))
	for name, spec := range specs {
		p.Presets[name] = spec.parameterSet()
	}
	return nil
}

// Preset returns the named preset, or an error listing the available ones.
func (p *Params) Preset(name string) (jobscript.ParameterSet, error) {
	preset, ok := p.Presets[name]
	if !ok {
		names := maps.Keys(p.Presets)
		goslices.Sort(names)
		return jobscript.ParameterSet{}, errors.Errorf(
			"[jobforgectl.Preset] unknown preset %q, available presets: %s", name, strings.Join(names, ", "))
	}
	return preset, nil
}
