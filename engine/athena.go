package engine

import "github.com/joeycumines/rla-audit/dist"

// athena generalizes Minerva with a shape parameter delta. There is no
// canonical convention for delta != 1, so this implementation's choice
// is: the Minerva algebra is run against an interpolated share
//
//	p_a(delta) = 0.5 + delta*(p_a - 0.5)
//
// (delta=0 collapses to the tied share, delta=1 recovers the announced
// share exactly), and the delta*alpha cutoff is folded into the
// returned risk measure (PValue) by dividing the raw ratio by delta, so
// that the audit state machine's uniform "risk <= alpha" stop condition
// reproduces "raw ratio <= delta*alpha" without the state
// machine needing engine-specific comparison logic.
type athena struct {
	pa, pt   float64
	paDelta  float64
	delta    float64
	alpha    float64
	withRepl bool
	vw, vl   int64
}

func newAthena(vw, vl int64, p Params) *athena {
	pa := float64(vw) / float64(vw+vl)
	delta := p.Delta
	return &athena{
		pa:       pa,
		pt:       0.5,
		paDelta:  0.5 + delta*(pa-0.5),
		delta:    delta,
		alpha:    p.Alpha,
		withRepl: p.WithReplacement,
		vw:       vw,
		vl:       vl,
	}
}

func (e *athena) Tag() string { return "athena" }

func (e *athena) rawRatio(n, k int64) float64 {
	num := dist.BinomSF(k, n, e.pt)
	den := dist.BinomSF(k, n, e.paDelta)
	if den <= 0 {
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

// PValue returns rawRatio(n,k)/delta, clamped to [0,1]. When delta is 0
// the cutoff delta*alpha is 0, which no nonzero ratio can satisfy;
// PValue saturates at 1 in that case (the audit never stops from this
// round alone).
func (e *athena) PValue(n, k int64) float64 {
	if e.delta <= 0 {
		return 1
	}
	v := e.rawRatio(n, k) / e.delta
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func (e *athena) Kmin(n int64) (int64, bool) {
	return searchKmin(0, n, e.alpha, func(k int64) float64 { return e.PValue(n, k) })
}

func (e *athena) StoppingProb(n int64) float64 {
	kmin, ok := e.Kmin(n)
	return stoppingProbFromKmin(kmin, ok, n, e.vw, e.vl, e.vw+e.vl, e.withRepl)
}
