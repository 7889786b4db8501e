package bayes

import "gonum.org/v1/gonum/mathext"

// MajorityTail returns the posterior probability, under a uniform prior
// on the true winner share p in [0, 1], that p <= 1/2, given kw observed
// winner ballots and kl observed loser ballots in a round (the remaining
// candidates' ballots, if any, are irrelevant to the pairwise reduction).
//
// The posterior density of p is Beta(kw+1, kl+1), so the tail is the
// regularized incomplete beta function I_0.5(kw+1, kl+1).
func MajorityTail(kw, kl int64) float64 {
	if kw < 0 || kl < 0 {
		return 1
	}
	a := float64(kw + 1)
	b := float64(kl + 1)
	v := mathext.RegIncBeta(a, b, 0.5)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
