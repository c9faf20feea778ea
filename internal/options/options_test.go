package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fitConfig struct {
	Steps  int
	Label  string
	Record bool
}

func withSteps(n int) Option[*fitConfig] {
	return New(func(cfg *fitConfig) error {
		if n <= 0 {
			return errors.New("steps must be positive")
		}
		cfg.Steps = n

		return nil
	})
}

func withLabel(label string) Option[*fitConfig] {
	return NoError(func(cfg *fitConfig) {
		cfg.Label = label
	})
}

func TestApply(t *testing.T) {
	cfg := &fitConfig{}
	err := Apply(cfg, withSteps(100), withLabel("run-a"), NoError(func(c *fitConfig) {
		c.Record = true
	}))
	require.NoError(t, err)
	require.Equal(t, 100, cfg.Steps)
	require.Equal(t, "run-a", cfg.Label)
	require.True(t, cfg.Record)
}

func TestApplyStopsAtFirstError(t *testing.T) {
	cfg := &fitConfig{}
	err := Apply(cfg, withSteps(-1), withLabel("never"))
	require.Error(t, err)
	require.Empty(t, cfg.Label, "options after a failing option must not run")
}

func TestApplyNoOptions(t *testing.T) {
	cfg := &fitConfig{}
	require.NoError(t, Apply(cfg))
	require.Zero(t, cfg.Steps)
}
