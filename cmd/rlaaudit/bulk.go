package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/joeycumines/rla-audit/audit"
	"github.com/joeycumines/rla-audit/engine"
	"github.com/joeycumines/rla-audit/rlajson"
)

// runBulk replays a fixed round schedule non-interactively against the
// contest described by contestPath, reproducing the stop decisions an
// equivalent interactive run would reach. schedule, if non-empty, is
// cross-checked against each round's cumulative size for consistency.
func runBulk(out io.Writer, log zerolog.Logger, contestPath, roundsPath string, schedule []int64) ([]audit.Round, error) {
	cf, c, params, err := loadContestFile(contestPath)
	if err != nil {
		return nil, err
	}
	if !engine.ValidTag(cf.Engine) {
		return nil, fmt.Errorf("rlaaudit: contest file names unknown engine %q", cf.Engine)
	}
	rounds, err := loadRoundsFile(roundsPath)
	if err != nil {
		return nil, err
	}
	if len(schedule) > 0 && len(schedule) != len(rounds) {
		return nil, fmt.Errorf("rlaaudit: -l schedule has %d entries, rounds file has %d", len(schedule), len(rounds))
	}

	a, err := audit.New(c, cf.Winner, cf.Loser, cf.Engine, params, log)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	for i, r := range rounds {
		if len(schedule) > 0 && schedule[i] != r.Size {
			return nil, fmt.Errorf("rlaaudit: round %d: -l schedule says size %d, rounds file says %d", i+1, schedule[i], r.Size)
		}
		decision, err := a.ExecuteRound(r.Size, r.WinnerBallots, r.LoserBallots)
		if err != nil {
			return nil, fmt.Errorf("rlaaudit: round %d: %w", i+1, err)
		}
		fmt.Fprintf(out, "round %d: n=%d stopped=%t risk=%v\n", i+1, r.Size, decision.Stopped, decision.Risk)
		if decision.Stopped {
			break
		}
	}

	return a.Transcript(), nil
}

// writeTranscript persists rounds to path in the fixed JSON layout.
func writeTranscript(path string, rounds []audit.Round) error {
	data, err := rlajson.Encode(rounds)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
