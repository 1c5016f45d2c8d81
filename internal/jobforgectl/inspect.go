package jobforgectl

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/jobforgeproject/jobforge/internal/common/pointer"
	"github.com/jobforgeproject/jobforge/pkg/jobscript"
)

// parameterReport renders a ParameterSet with directive surface forms for
// memory and time, so that inspect output matches what render would emit.
type parameterReport struct {
	JobName      string `yaml:"job-name,omitempty"`
	Partition    string `yaml:"partition,omitempty"`
	Account      string `yaml:"account,omitempty"`
	Nodes        *int   `yaml:"nodes,omitempty"`
	CPUsPerTask  *int   `yaml:"cpus-per-task,omitempty"`
	Memory       string `yaml:"mem,omitempty"`
	Time         string `yaml:"time,omitempty"`
	Constraint   string `yaml:"constraint,omitempty"`
	TasksPerNode *int   `yaml:"ntasks-per-node,omitempty"`
	GPUsPerNode  *int   `yaml:"gpus-per-node,omitempty"`
	Gres         string `yaml:"gres,omitempty"`
	Output       string `yaml:"output,omitempty"`
	Error        string `yaml:"error,omitempty"`
}

type inspectReport struct {
	Parameters parameterReport `yaml:"parameters"`
	Unknown    []string        `yaml:"unknown,omitempty"`
	Malformed  []string        `yaml:"malformed,omitempty"`
}

// Inspect reads a job script from in and prints its extracted parameters,
// plus any directive lines that would pass through synthesis verbatim, as
// YAML to the app output.
func (a *App) Inspect(in io.Reader) error {
	text, err := io.ReadAll(in)
	if err != nil {
		return errors.Errorf("[jobforgectl.Inspect] error reading script: %s", err)
	}

	result := jobscript.Extract(string(text))
	report := inspectReport{Parameters: newParameterReport(result.Params)}
	for _, line := range result.Passthrough {
		if line.Malformed {
			report.Malformed = append(report.Malformed, line.Raw)
		} else {
			report.Unknown = append(report.Unknown, line.Raw)
		}
	}

	b, err := yaml.Marshal(report)
	if err != nil {
		return errors.Errorf("[jobforgectl.Inspect] error marshalling report: %s", err)
	}
	fmt.Fprint(a.Out, string(b))
	return nil
}

func newParameterReport(params jobscript.ParameterSet) parameterReport {
	report := parameterReport{
		JobName:      pointer.Dereference(params.JobName, ""),
		Partition:    pointer.Dereference(params.Partition, ""),
		Account:      pointer.Dereference(params.Account, ""),
		Nodes:        params.Nodes,
		CPUsPerTask:  params.CPUsPerTask,
		Constraint:   pointer.Dereference(params.Constraint, ""),
		TasksPerNode: params.TasksPerNode,
		GPUsPerNode:  params.GPUsPerNode,
		Gres:         pointer.Dereference(params.Gres, ""),
		Output:       pointer.Dereference(params.OutputPath, ""),
		Error:        pointer.Dereference(params.ErrorPath, ""),
	}
	if params.MemoryGB != nil {
		report.Memory = jobscript.EncodeMemory(*params.MemoryGB)
	}
	if params.TimeMinutes != nil {
		report.Time = jobscript.EncodeTime(*params.TimeMinutes)
	}
	return report
}
