package audit

import "fmt"

// InvalidRoundError reports a round observation that violates the
// transcript invariants: non-monotone cumulative size,
// counts exceeding the round delta, a round past ⌊f·N⌋, or an
// observation submitted after the audit has already completed. ForceStop
// also returns it outside IN_PROGRESS, and NextSampleSize for a target
// probability outside (0,1).
type InvalidRoundError struct {
	Reason string
}

func (e *InvalidRoundError) Error() string {
	return "invalid round: " + e.Reason
}

func invalidRound(format string, args ...any) error {
	return &InvalidRoundError{Reason: fmt.Sprintf(format, args...)}
}

// NumericFailureError reports that NextSampleSize met a stopping
// probability that is NaN and so cannot bracket the target. A tail ratio
// whose numerator and denominator both underflow is not reported through
// it: Minerva and Athena score such a point as risk 1. The audit state is
// unchanged; the caller may retry with a different round size.
type NumericFailureError struct {
	Reason string
}

func (e *NumericFailureError) Error() string {
	return "numeric failure: " + e.Reason
}

// UnattainableError reports that no sample size within the audit's
// ceiling achieves the requested stopping probability. It is
// informational, not fatal: BestProb is the best achievable probability
// at the ceiling.
type UnattainableError struct {
	BestProb float64
	Ceiling  int64
}

func (e *UnattainableError) Error() string {
	return fmt.Sprintf("unattainable: best achievable probability %.6f at n=%d", e.BestProb, e.Ceiling)
}
