package engine

import (
	"github.com/joeycumines/rla-audit/bayes"
	"github.com/joeycumines/rla-audit/contest"
)

// brla is the Bayesian risk-limiting audit engine: BRLA samples without
// replacement from the pairwise pool and reports the posterior
// probability, under a uniform prior, that the announced outcome is
// wrong.
type brla struct {
	typ      contest.Type
	vw, vl   int64
	pool     int64
	alpha    float64
	withRepl bool // always false for the canonical form; kept for StoppingProb parity
}

func newBRLA(c *contest.Contest, vw, vl, pool int64, p Params) *brla {
	return &brla{
		typ:      c.Type,
		vw:       vw,
		vl:       vl,
		pool:     pool,
		alpha:    p.Alpha,
		withRepl: p.WithReplacement,
	}
}

func (e *brla) Tag() string { return "brla" }

// PValue is the posterior probability that the true pairwise winner
// total in the full pool is <= floor(pool/2): for Majority contests this
// is the Beta(k+1, n-k+1) tail at 1/2; for Plurality it is the
// hypergeometric-weighted posterior over the finite pool.
func (e *brla) PValue(n, k int64) float64 {
	kl := n - k
	if e.typ == contest.Majority {
		return bayes.MajorityTail(k, kl)
	}
	return bayes.PoolTail(k, kl, e.pool)
}

// Kmin bisects over [ceil(n/2), n].
func (e *brla) Kmin(n int64) (int64, bool) {
	lo := (n + 1) / 2
	return searchKmin(lo, n, e.alpha, func(k int64) float64 { return e.PValue(n, k) })
}

func (e *brla) StoppingProb(n int64) float64 {
	kmin, ok := e.Kmin(n)
	return stoppingProbFromKmin(kmin, ok, n, e.vw, e.vl, e.pool, e.withRepl)
}
