package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// roundObservation is one cumulative observation a bulk-mode run feeds
// to execute_round. Size duplicates the schedule named by -l so the two
// can be cross-checked; a mismatch is a usage error, not a silent
// override.
type roundObservation struct {
	Size          int64 `json:"size"`
	WinnerBallots int64 `json:"winner_ballots"`
	LoserBallots  int64 `json:"loser_ballots"`
}

func loadRoundsFile(path string) ([]roundObservation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rlaaudit: read rounds file: %w", err)
	}
	var rounds []roundObservation
	if err := json.Unmarshal(raw, &rounds); err != nil {
		return nil, fmt.Errorf("rlaaudit: parse rounds file: %w", err)
	}
	return rounds, nil
}
