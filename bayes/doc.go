// Package bayes implements the posterior-tail computations that drive the
// BRLA (Bayesian risk-limiting audit) engine: given a uniform prior over
// the true winner share (MAJORITY contests) or the true winner ballot
// total in a finite pool (PLURALITY contests, drawn without replacement),
// it returns the posterior probability that the announced outcome is
// wrong.
package bayes
