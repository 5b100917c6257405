package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.NoError(t, c.Validate())
	assert.Equal(t, 60, c.PopulationSize)
	assert.Equal(t, 200, c.Generations)
	assert.Equal(t, 0.03, c.MutationRate)
	assert.Equal(t, 5, c.TournamentSize)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		err    error
	}{
		{"zero population", func(c *Config) { c.PopulationSize = 0 }, ErrPopulationSize},
		{"negative population", func(c *Config) { c.PopulationSize = -3 }, ErrPopulationSize},
		{"zero generations", func(c *Config) { c.Generations = 0 }, ErrGenerations},
		{"negative generations", func(c *Config) { c.Generations = -1 }, ErrGenerations},
		{"rate below zero", func(c *Config) { c.MutationRate = -0.1 }, ErrMutationRate},
		{"rate above one", func(c *Config) { c.MutationRate = 1.5 }, ErrMutationRate},
		{"zero tournament", func(c *Config) { c.TournamentSize = 0 }, ErrTournamentSize},
		{"tournament exceeds population", func(c *Config) { c.TournamentSize = 61 }, ErrTournamentSize},
		{"rate zero ok", func(c *Config) { c.MutationRate = 0 }, nil},
		{"rate one ok", func(c *Config) { c.MutationRate = 1 }, nil},
		{"tournament equals population ok", func(c *Config) { c.TournamentSize = 60 }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.mutate(&c)
			assert.Equal(t, tc.err, c.Validate())
		})
	}
}
