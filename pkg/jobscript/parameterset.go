package jobscript

// ParameterSet holds the structured resource-request parameters of a job
// script. Every field is optional: nil means unset, which is distinct from
// any concrete value, including zero.
type ParameterSet struct {
	JobName      *string
	Partition    *string
	Account      *string
	Nodes        *int
	CPUsPerTask  *int
	MemoryGB     *int
	TimeMinutes  *int
	Constraint   *string
	TasksPerNode *int
	GPUsPerNode  *int
	Gres         *string
	OutputPath   *string
	ErrorPath    *string
}

func (p *ParameterSet) intField(f Field) **int {
	switch f {
	case FieldNodes:
		return &p.Nodes
	case FieldCPUsPerTask:
		return &p.CPUsPerTask
	case FieldMemory:
		return &p.MemoryGB
	case FieldTime:
		return &p.TimeMinutes
	case FieldTasksPerNode:
		return &p.TasksPerNode
	case FieldGPUsPerNode:
		return &p.GPUsPerNode
	default:
		return nil
	}
}

func (p *ParameterSet) stringField(f Field) **string {
	switch f {
	case FieldJobName:
		return &p.JobName
	case FieldPartition:
		return &p.Partition
	case FieldAccount:
		return &p.Account
	case FieldConstraint:
		return &p.Constraint
	case FieldGres:
		return &p.Gres
	case FieldOutput:
		return &p.OutputPath
	case FieldError:
		return &p.ErrorPath
	default:
		return nil
	}
}

// IsSet reports whether field f carries a value.
func (p ParameterSet) IsSet(f Field) bool {
	if ptr := p.intField(f); ptr != nil {
		return *ptr != nil
	}
	if ptr := p.stringField(f); ptr != nil {
		return *ptr != nil
	}
	return false
}

// Clear unsets field f.
func (p *ParameterSet) Clear(f Field) {
	if ptr := p.intField(f); ptr != nil {
		*ptr = nil
		return
	}
	if ptr := p.stringField(f); ptr != nil {
		*ptr = nil
	}
}

// setDecoded decodes raw directive text with the codec of field f and stores
// the result. It reports whether the text decoded; on failure the field is
// left untouched.
func (p *ParameterSet) setDecoded(f Field, raw string) bool {
	switch fieldSpecs[f].kind {
	case kindTime:
		v, ok := DecodeTime(raw)
		if !ok {
			return false
		}
		*p.intField(f) = &v
	case kindMemory:
		v, ok := DecodeMemory(raw)
		if !ok {
			return false
		}
		*p.intField(f) = &v
	case kindInt:
		v, ok := DecodeInt(raw)
		if !ok {
			return false
		}
		*p.intField(f) = &v
	default:
		v, ok := DecodeString(raw)
		if !ok {
			return false
		}
		*p.stringField(f) = &v
	}
	return true
}

// encodeField renders the value of field f in directive surface form.
// The second return value is false when the field is unset.
func (p ParameterSet) encodeField(f Field) (string, bool) {
	switch fieldSpecs[f].kind {
	case kindTime:
		if p.TimeMinutes == nil {
			return "", false
		}
		return EncodeTime(*p.TimeMinutes), true
	case kindMemory:
		if p.MemoryGB == nil {
			return "", false
		}
		return EncodeMemory(*p.MemoryGB), true
	case kindInt:
		ptr := *p.intField(f)
		if ptr == nil {
			return "", false
		}
		return EncodeInt(*ptr), true
	default:
		ptr := *p.stringField(f)
		if ptr == nil {
			return "", false
		}
		return *ptr, true
	}
}

// Merge returns a copy of p with every set field of overlay taking
// precedence. Fields unset in overlay keep their value from p.
func (p ParameterSet) Merge(overlay ParameterSet) ParameterSet {
	merged := p
	for _, f := range Fields() {
		if !overlay.IsSet(f) {
			continue
		}
		if ptr := overlay.intField(f); ptr != nil {
			*merged.intField(f) = *ptr
			continue
		}
		*merged.stringField(f) = *overlay.stringField(f)
	}
	return merged
}
