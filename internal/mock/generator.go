// Package mock synthesizes example row data for a table schema. Each mock
// strategy is one Generator behind a read-only registry; the registry is
// built once and safe to share across concurrent generation requests.
package mock

import (
	"github.com/tableforge/tableforge/internal/fake"
	"github.com/tableforge/tableforge/internal/model"
)

// Generator produces the full value list for one field. A generator either
// returns exactly rowCount values or an empty list (the none strategy with no
// default); it never returns a partial list.
type Generator interface {
	Generate(field model.Field, rowCount int) ([]string, error)
}

// Registry maps a mock strategy to its generator.
type Registry struct {
	generators map[model.MockStrategy]Generator
}

// NewRegistry builds the strategy table. The random strategy delegates to the
// given synthetic-data provider.
func NewRegistry(provider fake.Provider) *Registry {
	return &Registry{
		generators: map[model.MockStrategy]Generator{
			model.StrategyNone:       noneGenerator{},
			model.StrategyFixed:      fixedGenerator{},
			model.StrategyIncrement:  incrementGenerator{},
			model.StrategyRandom:     randomGenerator{provider: provider},
			model.StrategyRule:       ruleGenerator{},
			model.StrategyDictionary: dictionaryGenerator{},
		},
	}
}

// Resolve returns the generator for a strategy. An unknown strategy is a
// configuration error rather than a silent default.
func (r *Registry) Resolve(strategy model.MockStrategy) (Generator, error) {
	g, ok := r.generators[strategy.Normalize()]
	if !ok {
		return nil, model.ConfigurationError("unknown mock strategy %q", strategy)
	}
	return g, nil
}
