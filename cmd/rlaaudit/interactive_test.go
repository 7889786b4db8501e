package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInteractiveBRLAConfirms(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"brla",   // audit type
		"0.1",    // alpha
		"0.2",    // max fraction
		"1000",   // ballots
		"2",      // candidate count
		"A",      // candidate 1 name
		"700",    // candidate 1 tally
		"B",      // candidate 2 name
		"300",    // candidate 2 tally
		"1",      // winner count
		"A",      // winner 1 name
		"PLURALITY",
		"n",   // no target probability
		"200", // round 1 size
		"175", // winner ballots
		"25",  // loser ballots
	}, "\n") + "\n")

	var out bytes.Buffer
	err := runInteractive(in, &out, zerolog.Nop())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Stopping Condition Met? true")
}

func TestRunInteractiveForceStop(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"minerva",
		"0.01",
		"0.5",
		"1000",
		"2",
		"A",
		"505",
		"B",
		"495",
		"1",
		"A",
		"PLURALITY",
		"n",
		"100",
		"55",
		"45",
		"y", // force stop
	}, "\n") + "\n")

	var out bytes.Buffer
	err := runInteractive(in, &out, zerolog.Nop())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Stopping Condition Met? false")
}

func TestRunInteractiveUnexpectedEOF(t *testing.T) {
	in := strings.NewReader("brla\n0.1\n")
	var out bytes.Buffer
	err := runInteractive(in, &out, zerolog.Nop())
	assert.ErrorIs(t, err, errInputEnded)
}

func TestRunInteractiveWithTargetProbability(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"minerva",
		"0.1",
		"0.1",
		"100000",
		"2",
		"A",
		"60000",
		"B",
		"40000",
		"1",
		"A",
		"MAJORITY",
		"y",   // want target probability
		"0.7", // target
		"100", // round size
		"60",
		"40",
	}, "\n") + "\n")

	var out bytes.Buffer
	err := runInteractive(in, &out, zerolog.Nop())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Recommended next sample size: 111")
	assert.Contains(t, out.String(), "Stopping Condition Met? true")
}
