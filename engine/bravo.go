package engine

import "math"

// bravo is the sequential probability ratio test: a running
// log-likelihood ratio Λ between the announced share and a tied share,
// accumulated over the sequence of winner/loser ballots. Because Λ is
// linear in the cumulative winner count, PValue, Kmin, and StoppingProb
// all have closed forms — no search is needed.
type bravo struct {
	pa, pt   float64
	a, b     float64 // a = log(pa/pt), b = log((1-pa)/(1-pt))
	alpha    float64
	withRepl bool
	vw, vl   int64
}

func newBRAVO(vw, vl int64, p Params) *bravo {
	pa := float64(vw) / float64(vw+vl)
	pt := 0.5
	return &bravo{
		pa:       pa,
		pt:       pt,
		a:        math.Log(pa / pt),
		b:        math.Log1p(-pa) - math.Log1p(-pt),
		alpha:    p.Alpha,
		withRepl: p.WithReplacement,
		vw:       vw,
		vl:       vl,
	}
}

func (e *bravo) Tag() string { return "bravo" }

// logLikelihoodRatio returns Λ(n, k) = k*a + (n-k)*b.
func (e *bravo) logLikelihoodRatio(n, k int64) float64 {
	return float64(k)*e.a + float64(n-k)*e.b
}

// PValue returns min(1, exp(-Λ)), the inverse of the running sequential
// likelihood ratio, capped at 1 per BRAVO's risk-accumulation
// rule.
func (e *bravo) PValue(n, k int64) float64 {
	lambda := e.logLikelihoodRatio(n, k)
	risk := math.Exp(-lambda)
	if risk > 1 {
		return 1
	}
	if risk < 0 {
		return 0
	}
	return risk
}

// Kmin solves k*a + (n-k)*b >= log(1/alpha) directly: with c = a-b > 0
// (since pa > pt), k >= (log(1/alpha) - n*b) / c.
func (e *bravo) Kmin(n int64) (int64, bool) {
	c := e.a - e.b
	if c <= 0 {
		// pa <= pt: the test can never accumulate evidence for the
		// announced winner; no k <= n stops the audit.
		return n + 1, false
	}
	threshold := math.Log(1 / e.alpha)
	kf := (threshold - float64(n)*e.b) / c
	k := int64(math.Ceil(kf - 1e-9))
	if k < 0 {
		k = 0
	}
	if k > n {
		return n + 1, false
	}
	return k, true
}

func (e *bravo) StoppingProb(n int64) float64 {
	kmin, ok := e.Kmin(n)
	return stoppingProbFromKmin(kmin, ok, n, e.vw, e.vl, e.vw+e.vl, e.withRepl)
}
