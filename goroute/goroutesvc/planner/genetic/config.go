package genetic

import "errors"

const (
	DefaultPopulationSize = 60
	DefaultGenerations    = 200
	DefaultMutationRate   = 0.03
	DefaultTournamentSize = 5
)

var (
	ErrPopulationSize = errors.New("population size must be a positive integer")
	ErrGenerations    = errors.New("generation count must be a positive integer")
	ErrMutationRate   = errors.New("mutation rate must be within [0, 1]")
	ErrTournamentSize = errors.New("tournament size must be positive and not exceed population size")
)

// Config is the optimizer's free parameter surface. Zero-valued fields are
// not usable, start from DefaultConfig and override what the request
// provides.
type Config struct {
	PopulationSize int     `json:"populationSize"`
	Generations    int     `json:"generations"`
	MutationRate   float64 `json:"mutationRate"`
	TournamentSize int     `json:"tournamentSize"`
	Workers        int     `json:"workers,omitempty"`
	Seed           int64   `json:"seed,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		MutationRate:   DefaultMutationRate,
		TournamentSize: DefaultTournamentSize,
	}
}

func (c Config) Validate() error {
	if c.PopulationSize < 1 {
		return ErrPopulationSize
	}
	if c.Generations < 1 {
		return ErrGenerations
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return ErrMutationRate
	}
	if c.TournamentSize < 1 || c.TournamentSize > c.PopulationSize {
		return ErrTournamentSize
	}
	return nil
}
