package engine

import "github.com/joeycumines/rla-audit/dist"

// searchKmin returns the smallest k in [lo, n] with pValue(k) <= alpha,
// exploiting that pValue is non-increasing in k. If no
// such k exists, it returns (n+1, false).
func searchKmin(lo, n int64, alpha float64, pValue func(k int64) float64) (int64, bool) {
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		return n + 1, false
	}
	if pValue(n) > alpha {
		return n + 1, false
	}
	// invariant: pValue(hi) <= alpha throughout the search.
	loBound, hiBound := lo, n
	for loBound < hiBound {
		mid := loBound + (hiBound-loBound)/2
		if pValue(mid) <= alpha {
			hiBound = mid
		} else {
			loBound = mid + 1
		}
	}
	return loBound, true
}

// stoppingProbFromKmin computes the probability, under the
// announced-tally world, that a fresh round of size n reaches
// k >= kmin, given the pairwise reduction (vw, vl, pool) and whether
// sampling is with or without replacement.
func stoppingProbFromKmin(kmin int64, ok bool, n, vw, vl, pool int64, withReplacement bool) float64 {
	if !ok {
		return 0
	}
	if kmin <= 0 {
		return 1
	}
	if withReplacement {
		pa := float64(vw) / float64(vw+vl)
		return dist.BinomSF(kmin, n, pa)
	}
	return dist.HypergeomSF(kmin, pool, vw, n)
}
