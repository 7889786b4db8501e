package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/rla-audit/rlajson"
)

func writeJSONFile(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRunBulkReproducesInteractiveDecision(t *testing.T) {
	dir := t.TempDir()

	contestPath := writeJSONFile(t, dir, "contest.json", contestFile{
		Ballots:     1000,
		Tallies:     map[string]int64{"A": 700, "B": 300},
		Winners:     []string{"A"},
		Type:        "PLURALITY",
		Winner:      "A",
		Loser:       "B",
		Engine:      "brla",
		Alpha:       0.1,
		MaxFraction: 0.2,
	})
	roundsPath := writeJSONFile(t, dir, "rounds.json", []roundObservation{
		{Size: 200, WinnerBallots: 175, LoserBallots: 25},
	})

	var out bytes.Buffer
	rounds, err := runBulk(&out, zerolog.Nop(), contestPath, roundsPath, []int64{200})
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.True(t, rounds[0].Stopped)

	interactiveIn := "brla\n0.1\n0.2\n1000\n2\nA\n700\nB\n300\n1\nA\nPLURALITY\nn\n200\n175\n25\n"
	var interactiveOut bytes.Buffer
	require.NoError(t, runInteractive(strings.NewReader(interactiveIn), &interactiveOut, zerolog.Nop()))
	assert.Contains(t, interactiveOut.String(), "Stopping Condition Met? true")

	bulkRecord := rlajson.ToRecord(rounds[0])
	assert.Equal(t, "STOP", bulkRecord.Decision)
}

func TestRunBulkRejectsScheduleMismatch(t *testing.T) {
	dir := t.TempDir()
	contestPath := writeJSONFile(t, dir, "contest.json", contestFile{
		Ballots:     1000,
		Tallies:     map[string]int64{"A": 700, "B": 300},
		Winners:     []string{"A"},
		Type:        "PLURALITY",
		Winner:      "A",
		Loser:       "B",
		Engine:      "brla",
		Alpha:       0.1,
		MaxFraction: 0.2,
	})
	roundsPath := writeJSONFile(t, dir, "rounds.json", []roundObservation{
		{Size: 200, WinnerBallots: 175, LoserBallots: 25},
	})

	var out bytes.Buffer
	_, err := runBulk(&out, zerolog.Nop(), contestPath, roundsPath, []int64{999})
	assert.Error(t, err)
}

func TestRunBulkRejectsUnknownEngine(t *testing.T) {
	dir := t.TempDir()
	contestPath := writeJSONFile(t, dir, "contest.json", contestFile{
		Ballots:     1000,
		Tallies:     map[string]int64{"A": 700, "B": 300},
		Winners:     []string{"A"},
		Type:        "PLURALITY",
		Winner:      "A",
		Loser:       "B",
		Engine:      "not-an-engine",
		Alpha:       0.1,
		MaxFraction: 0.2,
	})
	roundsPath := writeJSONFile(t, dir, "rounds.json", []roundObservation{
		{Size: 200, WinnerBallots: 175, LoserBallots: 25},
	})

	var out bytes.Buffer
	_, err := runBulk(&out, zerolog.Nop(), contestPath, roundsPath, nil)
	assert.Error(t, err)
}
