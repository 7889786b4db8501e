package dist

import "math"

// logChoose returns log(C(n, k)), the natural log of the binomial
// coefficient, or math.Inf(-1) if k is out of [0, n].
func logChoose(n, k int64) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	if k == 0 || k == n {
		return 0
	}
	ln1, _ := math.Lgamma(float64(n) + 1)
	lk1, _ := math.Lgamma(float64(k) + 1)
	lnk1, _ := math.Lgamma(float64(n-k) + 1)
	return ln1 - lk1 - lnk1
}

// clamp01 clamps v into [0, 1], snapping small numeric overshoot.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// sumTailFrom sums exp(logTerm) for the index sequence produced by step,
// starting at the value logTerm0 for index `from`, walking down to `to`
// (inclusive), using the caller-supplied recurrence `step` to obtain
// log-term(i-1) from log-term(i). Accumulation runs in linear space (the
// starting log-term is already stabilized via log-gamma so no individual
// term overflows); the loop exits early once terms are both past their
// peak (monotonically decreasing) and negligible relative to the running
// total, per the 1e-300 relative floor.
func sumTailFrom(from, to int64, logTerm0 float64, step func(i int64, logTerm float64) float64) float64 {
	if from < to {
		return 0
	}
	total := 0.0
	logTerm := logTerm0
	prevTerm := math.Inf(1)
	for i := from; i >= to; i-- {
		term := math.Exp(logTerm)
		total += term
		decreasing := term <= prevTerm
		if decreasing && term > 0 && term/total < 1e-300 && i > to {
			break
		}
		prevTerm = term
		if i == to {
			break
		}
		logTerm = step(i, logTerm)
	}
	return total
}
