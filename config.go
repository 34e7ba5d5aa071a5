package push3

import "fmt"

// Configuration bundles the tunable bounds every run is parameterized by,
// plus the optional DUP2 extension flag (off by default).
type Configuration struct {
	EvalPushLimit                int
	MaxPointsInProgram            int
	MaxPointsInRandomExpressions  int
	MinRandomInteger              int64
	MaxRandomInteger              int64
	MinRandomFloat                float64
	MaxRandomFloat                float64
	NewERCNameProbability         float64
	TopLevelPushCode              bool
	TopLevelPopCode               bool

	// EnableDup2 turns on the optional T.DUP2 family, duplicating the top
	// two items of a stack in order. Off by default.
	EnableDup2 bool
}

// DefaultConfiguration returns the configuration used by the CLI and by
// tests that don't care about tuning these bounds.
func DefaultConfiguration() Configuration {
	return Configuration{
		EvalPushLimit:                1000,
		MaxPointsInProgram:           1000,
		MaxPointsInRandomExpressions: 50,
		MinRandomInteger:             -10,
		MaxRandomInteger:             10,
		MinRandomFloat:               -10.0,
		MaxRandomFloat:               10.0,
		NewERCNameProbability:        0.001,
		TopLevelPushCode:             false,
		TopLevelPopCode:              false,
		EnableDup2:                   false,
	}
}

// ConfigError is a host-level error returned by Validate.
type ConfigError struct {
	Field string
	Msg   string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("push3: invalid configuration field %s: %s", e.Field, e.Msg)
}

// Validate rejects configurations that cannot produce valid runs, returning
// a ConfigError describing the first offending field (e.g. min > max for a
// random bound).
func (c Configuration) Validate() error {
	if c.MinRandomInteger > c.MaxRandomInteger {
		return ConfigError{Field: "MinRandomInteger/MaxRandomInteger", Msg: "min > max"}
	}
	if c.MinRandomFloat > c.MaxRandomFloat {
		return ConfigError{Field: "MinRandomFloat/MaxRandomFloat", Msg: "min > max"}
	}
	if c.EvalPushLimit <= 0 {
		return ConfigError{Field: "EvalPushLimit", Msg: "must be positive"}
	}
	if c.MaxPointsInProgram <= 0 {
		return ConfigError{Field: "MaxPointsInProgram", Msg: "must be positive"}
	}
	if c.NewERCNameProbability < 0 || c.NewERCNameProbability > 1 {
		return ConfigError{Field: "NewERCNameProbability", Msg: "must be within [0,1]"}
	}
	return nil
}
