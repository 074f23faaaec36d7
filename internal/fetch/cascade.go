// Package fetch implements the resilient read primitive used by best-effort
// screens: an ordered list of backend strategies tried one after another,
// closed by a local synthesizer that always produces something to render.
package fetch

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrAllStrategiesExhausted is internal bookkeeping: FirstSuccessful never
// returns it, but strategies and tests can use it to label the situation.
var ErrAllStrategiesExhausted = errors.New("all fetch strategies exhausted")

// Strategy is one fetch attempt against one backend endpoint shape.
// A nil result with a nil error counts as a miss and moves the cascade on,
// same as an error does.
type Strategy[T any] struct {
	Name  string
	Fetch func(ctx context.Context) (*T, error)
}

// Cascade holds the fixed strategy order for one read path. The order is
// part of the contract: more authoritative endpoints come first and the
// first hit wins, so reordering changes observable behavior.
type Cascade[T any] struct {
	Strategies []Strategy[T]
	Fallback   func() *T
}

// FirstSuccessful tries each strategy in order and returns the first
// non-nil success. Strategy failures are logged and swallowed; if every
// strategy misses, the fallback result is returned. Callers never see an
// error.
func (c *Cascade[T]) FirstSuccessful(ctx context.Context) *T {
	for _, s := range c.Strategies {
		result, err := s.Fetch(ctx)
		if err != nil {
			log.Warn().Str("strategy", s.Name).Err(err).Msg("fetch strategy failed, trying next")
			continue
		}
		if result == nil {
			log.Warn().Str("strategy", s.Name).Msg("fetch strategy returned nothing, trying next")
			continue
		}
		return result
	}
	log.Warn().Err(ErrAllStrategiesExhausted).Msg("serving synthesized fallback data")
	return c.Fallback()
}
