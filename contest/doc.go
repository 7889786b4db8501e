// Package contest models a single reported contest outcome — ballot
// totals per candidate and a declared winner set — and the pairwise
// winner/loser reduction the audit engines operate on.
package contest
