package push3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigurationValidates(t *testing.T) {
	assert.NoError(t, DefaultConfiguration().Validate())
}

func TestValidateRejectsMinGreaterThanMaxInteger(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.MinRandomInteger = 5
	cfg.MaxRandomInteger = 1
	err := cfg.Validate()
	var cerr ConfigError
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, "MinRandomInteger/MaxRandomInteger", cerr.Field)
}

func TestValidateRejectsMinGreaterThanMaxFloat(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.MinRandomFloat = 5
	cfg.MaxRandomFloat = 1
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveEvalPushLimit(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.EvalPushLimit = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveMaxPoints(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.MaxPointsInProgram = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsOutOfRangeERCProbability(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.NewERCNameProbability = 1.5
	assert.Error(t, cfg.Validate())

	cfg.NewERCNameProbability = -0.1
	assert.Error(t, cfg.Validate())
}

func TestConfigErrorMessageNamesField(t *testing.T) {
	err := ConfigError{Field: "Foo", Msg: "bar"}
	assert.Contains(t, err.Error(), "Foo")
	assert.Contains(t, err.Error(), "bar")
}
