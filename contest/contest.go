package contest

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Type is the reported-outcome rule a Contest was decided under.
type Type int

const (
	// Plurality requires each declared winner's tally to strictly exceed
	// every non-winner's tally.
	Plurality Type = iota
	// Majority requires each declared winner's tally to strictly exceed
	// half the total ballots.
	Majority
)

func (t Type) String() string {
	switch t {
	case Plurality:
		return "PLURALITY"
	case Majority:
		return "MAJORITY"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// InvalidContestError reports why a proposed Contest could not be
// constructed: a tie between a winner and a non-winner, a tally sum
// exceeding the ballot total, a winner absent from the tally map, a
// negative tally, or a winner that fails the declared Type's margin
// requirement.
type InvalidContestError struct {
	Reason string
}

func (e *InvalidContestError) Error() string {
	return "invalid contest: " + e.Reason
}

func invalid(format string, args ...any) error {
	return &InvalidContestError{Reason: fmt.Sprintf(format, args...)}
}

// Contest is a single race: total ballots cast, reported per-candidate
// tallies, the declared winner set, and the rule (Plurality or Majority)
// those winners were declared under. A Contest is immutable once
// constructed by New, and is safe to share by reference across
// concurrently-running Audit instances.
type Contest struct {
	Ballots int64
	Tallies map[string]int64
	Winners map[string]bool
	Type    Type
}

// New validates and constructs a Contest.
//
// Invariants enforced:
//   - Ballots >= 1.
//   - Every winner name appears in tallies.
//   - No tally is negative; the tally sum does not exceed Ballots.
//   - Winners is non-empty.
//   - For Plurality, every declared winner's tally strictly exceeds
//     every non-winner's tally (a winner tied with a non-winner is
//     rejected; ties among non-winners are allowed).
//   - For Majority, every declared winner's tally strictly exceeds
//     Ballots/2.
func New(ballots int64, tallies map[string]int64, winners []string, typ Type) (*Contest, error) {
	if ballots < 1 {
		return nil, invalid("ballots must be >= 1, got %d", ballots)
	}
	if len(winners) == 0 {
		return nil, invalid("winners must be non-empty")
	}

	tallyCopy := make(map[string]int64, len(tallies))
	var sum int64
	for name, v := range tallies {
		if v < 0 {
			return nil, invalid("tally for %q is negative: %d", name, v)
		}
		tallyCopy[name] = v
		sum += v
	}
	if sum > ballots {
		return nil, invalid("tally sum %d exceeds ballots %d", sum, ballots)
	}

	winnerSet := make(map[string]bool, len(winners))
	for _, w := range winners {
		if _, ok := tallyCopy[w]; !ok {
			return nil, invalid("winner %q has no reported tally", w)
		}
		if tallyCopy[w] <= 0 {
			return nil, invalid("winner %q has non-positive tally %d", w, tallyCopy[w])
		}
		winnerSet[w] = true
	}

	switch typ {
	case Plurality:
		// Iterate in sorted name order so a contest with more than one
		// margin violation always reports the same one, regardless of
		// Go's randomized map iteration.
		names := make([]string, 0, len(tallyCopy))
		for name := range tallyCopy {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if winnerSet[name] {
				continue
			}
			v := tallyCopy[name]
			winners := make([]string, 0, len(winnerSet))
			for w := range winnerSet {
				winners = append(winners, w)
			}
			slices.Sort(winners)
			for _, w := range winners {
				if tallyCopy[w] <= v {
					return nil, invalid("winner %q does not strictly exceed %q (%d <= %d)", w, name, tallyCopy[w], v)
				}
			}
		}
	case Majority:
		for w := range winnerSet {
			if 2*tallyCopy[w] <= ballots {
				return nil, invalid("winner %q does not hold a majority (%d*2 <= %d)", w, tallyCopy[w], ballots)
			}
		}
	default:
		return nil, invalid("unknown contest type %v", typ)
	}

	return &Contest{
		Ballots: ballots,
		Tallies: tallyCopy,
		Winners: winnerSet,
		Type:    typ,
	}, nil
}

// Pairwise reduces the contest to a winner/loser pair, returning the
// reported winner ballots Vw, reported loser ballots Vl, and the pool
// size those counts are drawn from. For Plurality the pool is Vw+Vl
// (undervotes and other candidates' ballots are treated as neither
// winner nor loser, per the reduction policy recorded in DESIGN.md; the
// policy is fixed and has no option to change it). For Majority the loser pool is every non-winner tally plus
// undervotes (Ballots - sum of all reported tallies), since a majority
// contest's "loser" is everyone else.
func (c *Contest) Pairwise(winner, loser string) (vw, vl, pool int64, err error) {
	wv, ok := c.Tallies[winner]
	if !ok {
		return 0, 0, 0, invalid("%q has no reported tally", winner)
	}
	if !c.Winners[winner] {
		return 0, 0, 0, invalid("%q is not a declared winner", winner)
	}

	switch c.Type {
	case Plurality:
		lv, ok := c.Tallies[loser]
		if !ok {
			return 0, 0, 0, invalid("%q has no reported tally", loser)
		}
		if wv == lv {
			return 0, 0, 0, invalid("winner %q ties loser %q at %d", winner, loser, wv)
		}
		return wv, lv, wv + lv, nil
	case Majority:
		var sum int64
		for name, v := range c.Tallies {
			if name == winner {
				continue
			}
			sum += v
		}
		undervotes := c.Ballots - c.totalTallied()
		lv := sum + undervotes
		if wv == lv {
			return 0, 0, 0, invalid("winner %q ties the combined non-winner pool at %d", winner, wv)
		}
		return wv, lv, wv + lv, nil
	default:
		return 0, 0, 0, invalid("unknown contest type %v", c.Type)
	}
}

func (c *Contest) totalTallied() int64 {
	var sum int64
	for _, v := range c.Tallies {
		sum += v
	}
	return sum
}

// Names returns the candidate names in sorted order, for callers
// building deterministic prompts or reports over a Contest's tallies.
func (c *Contest) Names() []string {
	names := make([]string, 0, len(c.Tallies))
	for name := range c.Tallies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
