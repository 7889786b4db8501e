// Package dist implements the binomial and hypergeometric probability mass
// and (upper) tail functions used by the audit engines. All routines
// accumulate in log-space and are numerically stable for n up to 1e6 and
// population sizes up to 1e8, per the accuracy requirements of the audit
// engines built on top of this package.
package dist
