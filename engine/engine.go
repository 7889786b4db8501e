package engine

import (
	"fmt"

	"github.com/joeycumines/rla-audit/contest"
)

// Engine is the common contract every audit variant implements. n and k
// are always cumulative across rounds: n is the cumulative sample size,
// k the cumulative observed winner-ballot count.
type Engine interface {
	// Tag is the engine's registry name ("brla", "minerva", "athena", "bravo").
	Tag() string
	// PValue is the engine's risk measure after a round of cumulative
	// size n with cumulative winner count k. Always in [0, 1].
	PValue(n, k int64) float64
	// Kmin returns the smallest k such that PValue(n, k) <= alpha, and
	// true. It returns (n+1, false) if no such k <= n exists.
	Kmin(n int64) (int64, bool)
	// StoppingProb returns the probability, under the announced-tally
	// null, that a fresh round of size n reaches k >= Kmin(n).
	StoppingProb(n int64) float64
}

// Params configures an Engine. Delta is only consulted by Athena.
type Params struct {
	Alpha           float64
	MaxFraction     float64
	WithReplacement bool
	Delta           float64
}

// InvalidAuditParamsError reports a malformed Params value or engine tag.
type InvalidAuditParamsError struct {
	Reason string
}

func (e *InvalidAuditParamsError) Error() string {
	return "invalid audit params: " + e.Reason
}

func invalidParams(format string, args ...any) error {
	return &InvalidAuditParamsError{Reason: fmt.Sprintf(format, args...)}
}

func (p Params) validate(requireDelta bool) error {
	if !(p.Alpha > 0 && p.Alpha < 1) {
		return invalidParams("alpha must be in (0,1), got %v", p.Alpha)
	}
	if !(p.MaxFraction > 0 && p.MaxFraction <= 1) {
		return invalidParams("max_fraction must be in (0,1], got %v", p.MaxFraction)
	}
	if requireDelta && p.Delta < 0 {
		return invalidParams("delta must be >= 0, got %v", p.Delta)
	}
	return nil
}

// New constructs the Engine named by tag for the winner/loser pairwise
// reduction of c, validating params.
// Recognized tags: "brla", "minerva", "athena", "bravo".
func New(tag string, c *contest.Contest, winner, loser string, params Params) (Engine, error) {
	vw, vl, pool, err := c.Pairwise(winner, loser)
	if err != nil {
		return nil, err
	}

	switch tag {
	case "brla":
		if err := params.validate(false); err != nil {
			return nil, err
		}
		return newBRLA(c, vw, vl, pool, params), nil
	case "minerva":
		if err := params.validate(false); err != nil {
			return nil, err
		}
		return newMinerva(vw, vl, params), nil
	case "athena":
		if err := params.validate(true); err != nil {
			return nil, err
		}
		return newAthena(vw, vl, params), nil
	case "bravo":
		if err := params.validate(false); err != nil {
			return nil, err
		}
		return newBRAVO(vw, vl, params), nil
	default:
		return nil, invalidParams("unknown engine tag %q", tag)
	}
}
