package rlajson

import (
	"encoding/json"
	"fmt"

	"github.com/joeycumines/rla-audit/audit"
)

// Record is the persisted shape of one audit.Round:
// {round, size, winner_ballots, loser_ballots, kmin, risk, decision}.
type Record struct {
	Round         int         `json:"round"`
	Size          int64       `json:"size"`
	WinnerBallots int64       `json:"winner_ballots"`
	LoserBallots  int64       `json:"loser_ballots"`
	Kmin          *int64      `json:"kmin"`
	Risk          json.Number `json:"risk"`
	Decision      string      `json:"decision"`
}

func decisionString(r audit.Round) string {
	if r.Stopped {
		return "STOP"
	}
	return "CONTINUE"
}

// ToRecord converts one audit.Round into its persisted Record form.
func ToRecord(r audit.Round) Record {
	var kmin *int64
	if r.KminOK {
		v := r.Kmin
		kmin = &v
	}
	return Record{
		Round:         r.Index,
		Size:          r.Size,
		WinnerBallots: r.WinnerBallots,
		LoserBallots:  r.LoserBallots,
		Kmin:          kmin,
		Risk:          json.Number(formatDecimal(r.Risk)),
		Decision:      decisionString(r),
	}
}

// Encode marshals a transcript (ordered oldest-first) to its persisted
// JSON list form.
func Encode(rounds []audit.Round) ([]byte, error) {
	records := make([]Record, len(rounds))
	for i, r := range rounds {
		records[i] = ToRecord(r)
	}
	return json.MarshalIndent(records, "", "  ")
}

// Decode parses a persisted transcript back into Records. It is the
// dual of Encode, needed to check that a bulk-mode run reproduces an
// interactive transcript's stop decisions exactly.
func Decode(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("rlajson: decode transcript: %w", err)
	}
	return records, nil
}

// SameDecisions reports whether two transcripts reached the same
// sequence of stop/continue decisions, round for round, at the same
// cumulative size and winner count — the bulk-mode equivalence check.
// Risk values are not compared.
func SameDecisions(a, b []Record) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Decision != b[i].Decision {
			return false
		}
		if a[i].Size != b[i].Size || a[i].WinnerBallots != b[i].WinnerBallots {
			return false
		}
	}
	return true
}
