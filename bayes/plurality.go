package bayes

import "math"

// PoolTail returns the posterior probability, under a uniform prior on
// the true winner ballot total Vw_true over a finite pool of size M
// (drawn without replacement), that Vw_true <= floor(M/2) — i.e. that the
// reported pairwise winner does not actually hold a majority of the
// pool — given kw observed winner ballots and kl observed loser ballots
// in a sample of size n = kw+kl drawn from the pool.
//
// This is the canonical BRLA formulation for PLURALITY contests: the
// likelihood of the observed kw given a candidate true total v is
// Hypergeometric(M, v, n) evaluated at kw, and the posterior over v is
// this likelihood normalized against the uniform prior over v in
// [0, M]. The full likelihood array is walked with a single log-gamma
// seed and an O(1)-per-step recurrence (see step below), so cost is
// linear in the support size rather than per-point log-gamma
// evaluation; callers auditing very large pools (M approaching 1e8)
// pay a correspondingly larger one-time cost per p-value evaluation.
func PoolTail(kw, kl, poolSize int64) float64 {
	n := kw + kl
	M := poolSize
	if M <= 0 || n < 0 || n > M || kw < 0 || kl < 0 {
		return 1
	}

	half := M / 2

	lo := kw
	if lo < 0 {
		lo = 0
	}
	hi := M - n + kw
	if hi > M {
		hi = M
	}
	if lo > hi {
		return 1
	}

	logChooseM_N := logChoose64(M, n)
	logL := func(v int64) float64 {
		return logChoose64(v, kw) + logChoose64(M-v, n-kw) - logChooseM_N
	}

	totalAll := 0.0
	totalLE := 0.0
	prevTerm := math.Inf(1)

	logTerm := logL(lo)
	for v := lo; v <= hi; v++ {
		term := math.Exp(logTerm)
		totalAll += term
		if v <= half {
			totalLE += term
		}

		decreasing := term <= prevTerm
		pastSplit := v > half
		if decreasing && pastSplit && term > 0 && term/totalAll < 1e-300 {
			break
		}
		prevTerm = term

		if v == hi {
			break
		}
		// logL(v+1) = logL(v) + log(v+1) - log(v+1-kw) + log(M-v-n+kw) - log(M-v)
		a := float64(v + 1 - kw)
		b := float64(M - v - n + kw)
		c := float64(M - v)
		if a <= 0 || b < 0 || c <= 0 {
			break
		}
		step := math.Log(float64(v+1)) - math.Log(a) + stepLog(b) - math.Log(c)
		logTerm += step
	}

	if totalAll <= 0 {
		return 1
	}
	ratio := totalLE / totalAll
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

func stepLog(b float64) float64 {
	if b == 0 {
		return math.Inf(-1)
	}
	return math.Log(b)
}
