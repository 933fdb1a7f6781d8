package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim,
// for display on the HUD.
type ParameterSnapshot struct {
	Params []Parameter
}

// ParametersProvider exposes the current parameter snapshot.
type ParametersProvider interface {
	Parameters() ParameterSnapshot
}

// IntParameterSetter allows interactive updates to integer parameters. The
// return value reports whether the key was recognized.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows interactive updates to floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
