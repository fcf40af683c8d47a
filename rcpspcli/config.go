// Package rcpspcli is an illustrative external collaborator around the
// rcpsp core: environment-variable configuration, structured logging,
// and a run identifier stamped onto each result. Parsing a project file
// into a rcpsp.Raw is intentionally out of scope; ProjectPath exists
// only to be logged so a batch run's output can be traced back to the
// input file that produced it.
package rcpspcli

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config drives one solver run, loaded from the process environment.
// Field names mirror ga.Config one option at a time.
type Config struct {
	ProjectPath string `env:"PROJECT_PATH,required"`

	Generations        int     `env:"GENERATIONS" envDefault:"100"`
	PopulationSize     int     `env:"POPULATION_SIZE" envDefault:"50"`
	TournamentK        int     `env:"TOURNAMENT_K" envDefault:"3"`
	Elitism            int     `env:"ELITISM" envDefault:"1"`
	CrossoverRate      float64 `env:"CROSSOVER_RATE" envDefault:"0.9"`
	MutationRate       float64 `env:"MUTATION_RATE" envDefault:"0.1"`
	MutationSwapBudget int     `env:"MUTATION_SWAP_BUDGET" envDefault:"8"`
	NoImproveStop      int     `env:"NO_IMPROVE_STOP" envDefault:"0"` // 0 means disabled
	Seed               uint64  `env:"SEED" envDefault:"1"`
	Workers            int     `env:"WORKERS" envDefault:"4"`
}

// LoadConfig reads a Config from the environment, applying envDefault
// tags for every optional field. On failure it unwraps env.AggregateError
// down to its first error so a caller sees one clear cause rather than a
// joined multi-error blob.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		var aggErr env.AggregateError
		if errors.As(err, &aggErr) {
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}
	return cfg, nil
}
