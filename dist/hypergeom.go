package dist

import "math"

// hypergeomSupport returns the [lo, hi] range of k for which
// Hypergeometric(N, K, n) has nonzero mass.
func hypergeomSupport(N, K, n int64) (lo, hi int64) {
	lo = n - (N - K)
	if lo < 0 {
		lo = 0
	}
	hi = n
	if K < hi {
		hi = K
	}
	return lo, hi
}

// HypergeomLogPMF returns log P(X = k) for X ~ Hypergeometric(N, K, n):
// a population of size N containing K successes, a sample of size n drawn
// without replacement, k of which are successes. Uses log-gamma based
// log-binomial-coefficients throughout, so it remains accurate when K and
// N-K differ by many orders of magnitude.
func HypergeomLogPMF(k, N, K, n int64) float64 {
	lo, hi := hypergeomSupport(N, K, n)
	if k < lo || k > hi {
		return math.Inf(-1)
	}
	return logChoose(K, k) + logChoose(N-K, n-k) - logChoose(N, n)
}

// HypergeomPMF returns P(X = k) for X ~ Hypergeometric(N, K, n), clamped
// to [0, 1].
func HypergeomPMF(k, N, K, n int64) float64 {
	return clamp01(math.Exp(HypergeomLogPMF(k, N, K, n)))
}

// HypergeomSF returns P(X >= k) for X ~ Hypergeometric(N, K, n), summing
// from the top of the support downward using the stable recurrence
//
//	log-pmf(i-1) = log-pmf(i) + log(i) - log(K-i+1) + log(N-K-n+i) - log(n-i+1)
//
// seeded by a single log-gamma evaluation at the top of the support.
func HypergeomSF(k, N, K, n int64) float64 {
	lo, hi := hypergeomSupport(N, K, n)
	if k <= lo {
		return 1
	}
	if k > hi {
		return 0
	}
	logTermAtHi := HypergeomLogPMF(hi, N, K, n)
	step := func(i int64, logTerm float64) float64 {
		a := float64(K - i + 1)
		b := float64(N - K - n + i)
		c := float64(n - i + 1)
		if a <= 0 || b <= 0 || c <= 0 {
			return math.Inf(-1)
		}
		return logTerm + math.Log(float64(i)) - math.Log(a) + math.Log(b) - math.Log(c)
	}
	return clamp01(sumTailFrom(hi, k, logTermAtHi, step))
}
