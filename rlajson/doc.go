// Package rlajson implements the persisted transcript layout fixed by
// the fixed persisted layout: a JSON list of Round records, with numerical fields encoded
// as base-10 decimals carrying at least 6 significant digits.
package rlajson
