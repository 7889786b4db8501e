package audit

import (
	"github.com/rs/zerolog"

	"github.com/joeycumines/rla-audit/contest"
	"github.com/joeycumines/rla-audit/dist"
	"github.com/joeycumines/rla-audit/engine"
)

type kminEntry struct {
	k  int64
	ok bool
}

// Audit is the common state machine shared by every engine. It owns its
// transcript and kmin memoization table exclusively; the Contest it
// audits is read-only and may be shared by reference across Audit
// instances. An Audit is not safe for concurrent use — execute_round
// calls on a single instance must be issued sequentially.
type Audit struct {
	contest *contest.Contest
	engine  engine.Engine

	alpha           float64
	maxN            int64
	withReplacement bool
	vw, vl, pool    int64

	state       State
	reason      Reason
	transcript  []Round
	currentRisk float64

	kminCache map[int64]kminEntry

	log zerolog.Logger
}

// New constructs an Audit over the winner/loser pairwise reduction of c,
// selecting the engine named by tag and validating params. log may be
// the zero value (zerolog.Logger{}), which discards all output.
func New(c *contest.Contest, winner, loser, tag string, params engine.Params, log zerolog.Logger) (*Audit, error) {
	e, err := engine.New(tag, c, winner, loser, params)
	if err != nil {
		return nil, err
	}
	vw, vl, pool, err := c.Pairwise(winner, loser)
	if err != nil {
		return nil, err
	}

	maxN := int64(float64(c.Ballots) * params.MaxFraction)
	if maxN < 1 {
		maxN = 1
	}
	if maxN > c.Ballots {
		maxN = c.Ballots
	}

	return &Audit{
		contest:         c,
		engine:          e,
		alpha:           params.Alpha,
		maxN:            maxN,
		withReplacement: params.WithReplacement,
		vw:              vw,
		vl:              vl,
		pool:            pool,
		state:           NotStarted,
		reason:          ReasonNone,
		kminCache:       make(map[int64]kminEntry),
		log:             log.With().Str("engine", tag).Logger(),
	}, nil
}

// State returns the audit's current lifecycle state.
func (a *Audit) State() State { return a.state }

// Reason returns why the audit stopped, or ReasonNone if still running.
func (a *Audit) Reason() Reason { return a.reason }

// CurrentRisk returns the risk measure from the most recently executed
// round, or 1 if no round has been executed yet.
func (a *Audit) CurrentRisk() float64 {
	if len(a.transcript) == 0 {
		return 1
	}
	return a.currentRisk
}

// MaxN returns ⌊f·N⌋, the largest cumulative sample size the audit may
// reach before it is forced to COMPLETE_EXHAUSTED.
func (a *Audit) MaxN() int64 { return a.maxN }

// Transcript returns a copy of the append-only round history.
func (a *Audit) Transcript() []Round {
	out := make([]Round, len(a.transcript))
	copy(out, a.transcript)
	return out
}

// Close clears the kmin memoization table. The Audit remains otherwise
// usable; Close exists to free that memory deterministically (Go has
// no destructors) rather than waiting on the garbage collector.
func (a *Audit) Close() {
	clear(a.kminCache)
}

// kmin memoizes engine.Kmin by cumulative sample size, reused by both
// ExecuteRound (to populate the transcript) and the round-size solver.
func (a *Audit) kmin(n int64) (int64, bool) {
	if v, ok := a.kminCache[n]; ok {
		return v.k, v.ok
	}
	k, ok := a.engine.Kmin(n)
	a.kminCache[n] = kminEntry{k: k, ok: ok}
	return k, ok
}

// stoppingProb is the memoized, Audit-scoped counterpart of
// engine.Engine.StoppingProb, reusing the kmin cache.
func (a *Audit) stoppingProb(n int64) float64 {
	k, ok := a.kmin(n)
	if !ok {
		return 0
	}
	if k <= 0 {
		return 1
	}
	if a.withReplacement {
		pa := float64(a.vw) / float64(a.vw+a.vl)
		return dist.BinomSF(k, n, pa)
	}
	return dist.HypergeomSF(k, a.pool, a.vw, n)
}

func (a *Audit) lastRound() (size, kw, kl int64, ok bool) {
	if len(a.transcript) == 0 {
		return 0, 0, 0, false
	}
	last := a.transcript[len(a.transcript)-1]
	return last.Size, last.WinnerBallots, last.LoserBallots, true
}

// ExecuteRound records a new cumulative observation and returns the
// stop/continue Decision.
func (a *Audit) ExecuteRound(nCum, kwCum, klCum int64) (Decision, error) {
	if a.state.Complete() {
		return Decision{}, invalidRound("audit already complete (%s)", a.state)
	}
	if nCum < 0 || kwCum < 0 || klCum < 0 {
		return Decision{}, invalidRound("counts must be non-negative: n=%d kw=%d kl=%d", nCum, kwCum, klCum)
	}

	prevN, prevKw, prevKl, hasPrev := a.lastRound()
	if hasPrev && nCum <= prevN {
		return Decision{}, invalidRound("cumulative size %d does not exceed previous %d", nCum, prevN)
	}
	if nCum > a.maxN {
		return Decision{}, invalidRound("cumulative size %d exceeds ceiling %d", nCum, a.maxN)
	}
	if kwCum < prevKw || klCum < prevKl {
		return Decision{}, invalidRound("winner/loser counts must be non-decreasing across rounds")
	}
	delta := nCum - prevN
	newObservations := (kwCum - prevKw) + (klCum - prevKl)
	if newObservations > delta {
		return Decision{}, invalidRound("new winner+loser observations (%d) exceed round delta (%d)", newObservations, delta)
	}

	risk := a.engine.PValue(nCum, kwCum)
	kminVal, kminOK := a.kmin(nCum)

	stopped := risk <= a.alpha
	round := Round{
		Index:         len(a.transcript) + 1,
		Size:          nCum,
		WinnerBallots: kwCum,
		LoserBallots:  klCum,
		Kmin:          kminVal,
		KminOK:        kminOK,
		Risk:          risk,
		Stopped:       stopped,
	}

	a.currentRisk = risk
	a.transcript = append(a.transcript, round)

	switch {
	case stopped:
		a.state = CompleteStopped
		a.reason = ReasonRiskMet
	case nCum == a.maxN:
		a.state = CompleteExhausted
		a.reason = ReasonExceededMax
	default:
		a.state = InProgress
	}

	a.log.Debug().
		Int("round", round.Index).
		Int64("n", nCum).
		Int64("kw", kwCum).
		Float64("risk", risk).
		Bool("stopped", stopped).
		Str("state", a.state.String()).
		Msg("round executed")

	var kminPtr *int64
	if kminOK {
		v := kminVal
		kminPtr = &v
	}
	return Decision{Stopped: stopped, Risk: risk, Kmin: kminPtr}, nil
}

// ForceStop transitions an IN_PROGRESS audit to COMPLETE_FORCED.
func (a *Audit) ForceStop() error {
	if a.state != InProgress {
		return invalidRound("force_stop is only valid while IN_PROGRESS, state is %s", a.state)
	}
	last := a.transcript[len(a.transcript)-1]
	last.Forced = true
	a.transcript[len(a.transcript)-1] = last

	a.state = CompleteForced
	a.reason = ReasonForced
	a.log.Warn().Str("state", a.state.String()).Msg("audit force-stopped")
	return nil
}
