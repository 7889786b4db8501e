package engine

import "github.com/joeycumines/rla-audit/dist"

// minerva is the ratio-of-tail-probabilities (Selection) test: the ratio
// of the binomial tail under the tied hypothesis to the tail under the
// announced hypothesis.
type minerva struct {
	pa, pt   float64
	alpha    float64
	withRepl bool
	vw, vl   int64
}

func newMinerva(vw, vl int64, p Params) *minerva {
	return &minerva{
		pa:       float64(vw) / float64(vw+vl),
		pt:       0.5,
		alpha:    p.Alpha,
		withRepl: p.WithReplacement,
		vw:       vw,
		vl:       vl,
	}
}

func (e *minerva) Tag() string { return "minerva" }

func (e *minerva) ratio(n, k int64) float64 {
	num := dist.BinomSF(k, n, e.pt)
	den := dist.BinomSF(k, n, e.pa)
	if den <= 0 {
		if num <= 0 {
			// both tails underflowed: treat as maximally risky (cannot
			// conclude the announced outcome is safe) rather than
			// divide by zero.
			return 1
		}
		return 1
	}
	ratio := num / den
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}

func (e *minerva) PValue(n, k int64) float64 {
	return e.ratio(n, k)
}

func (e *minerva) Kmin(n int64) (int64, bool) {
	return searchKmin(0, n, e.alpha, func(k int64) float64 { return e.ratio(n, k) })
}

func (e *minerva) StoppingProb(n int64) float64 {
	kmin, ok := e.Kmin(n)
	return stoppingProbFromKmin(kmin, ok, n, e.vw, e.vl, e.vw+e.vl, e.withRepl)
}
