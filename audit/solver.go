package audit

import "math"

// NextSampleSize inverts the engine's stopping-probability curve to
// find the smallest cumulative sample size n in [1, MaxN()] with
// stopping_prob(n) >= targetProb.
//
// The search probes exponentially growing n (1, 2, 4, ...) until either
// the ceiling is exceeded or the target is reached, then bisects
// between the last too-small probe and the first large-enough one.
// If no n within the ceiling attains targetProb, it returns an
// *UnattainableError carrying the best achievable probability (at the
// ceiling).
func (a *Audit) NextSampleSize(targetProb float64) (int64, error) {
	if !(targetProb > 0 && targetProb < 1) {
		return 0, invalidRound("target probability must be in (0,1), got %v", targetProb)
	}
	ceiling := a.maxN

	// probe phase
	var loTooSmall int64 = 0 // stopping_prob(0) treated as 0
	n := int64(1)
	for {
		if n >= ceiling {
			p := a.stoppingProb(ceiling)
			if p >= targetProb {
				break // the ceiling itself attains it; bisect down from there
			}
			a.log.Debug().Float64("target", targetProb).Int64("ceiling", ceiling).Float64("best", p).Msg("target unattainable within ceiling")
			return 0, &UnattainableError{BestProb: p, Ceiling: ceiling}
		}
		p := a.stoppingProb(n)
		if math.IsNaN(p) {
			return 0, &NumericFailureError{Reason: "stopping probability is not a number; bracketing cannot proceed"}
		}
		if p >= targetProb {
			break
		}
		loTooSmall = n
		n *= 2
	}
	hiLargeEnough := n
	if hiLargeEnough > ceiling {
		hiLargeEnough = ceiling
	}

	// bisect in (loTooSmall, hiLargeEnough]
	for loTooSmall+1 < hiLargeEnough {
		mid := loTooSmall + (hiLargeEnough-loTooSmall)/2
		if a.stoppingProb(mid) >= targetProb {
			hiLargeEnough = mid
		} else {
			loTooSmall = mid
		}
	}

	a.log.Debug().Float64("target", targetProb).Int64("n", hiLargeEnough).Msg("recommended next sample size")
	return hiLargeEnough, nil
}

// Curve samples (n, stopping_prob(n)) pairs from 1 to nMax in the given
// step, for callers building a plot or simulation report. It is a
// read-only convenience on top of the memoized stoppingProb; it does
// not mutate audit state.
func (a *Audit) Curve(nMax int64, step int64) []CurvePoint {
	if step < 1 {
		step = 1
	}
	if nMax > a.maxN {
		nMax = a.maxN
	}
	var out []CurvePoint
	for n := int64(1); n <= nMax; n += step {
		out = append(out, CurvePoint{N: n, Prob: a.stoppingProb(n)})
	}
	return out
}

// CurvePoint is one sample of Audit.Curve.
type CurvePoint struct {
	N    int64
	Prob float64
}
