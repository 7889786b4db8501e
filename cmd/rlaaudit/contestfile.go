package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joeycumines/rla-audit/contest"
	"github.com/joeycumines/rla-audit/engine"
)

// contestFile is the on-disk shape a bulk-mode run loads its contest and
// audit parameters from: {ballots, tallies, winners, type, winner,
// loser, engine, alpha, max_fraction, delta, with_replacement}.
type contestFile struct {
	Ballots         int64            `json:"ballots"`
	Tallies         map[string]int64 `json:"tallies"`
	Winners         []string         `json:"winners"`
	Type            string           `json:"type"`
	Winner          string           `json:"winner"`
	Loser           string           `json:"loser"`
	Engine          string           `json:"engine"`
	Alpha           float64          `json:"alpha"`
	MaxFraction     float64          `json:"max_fraction"`
	Delta           float64          `json:"delta"`
	WithReplacement bool             `json:"with_replacement"`
}

func parseContestType(s string) (contest.Type, error) {
	switch s {
	case "PLURALITY", "plurality":
		return contest.Plurality, nil
	case "MAJORITY", "majority":
		return contest.Majority, nil
	default:
		return 0, fmt.Errorf("rlaaudit: unknown contest type %q", s)
	}
}

func loadContestFile(path string) (*contestFile, *contest.Contest, engine.Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, engine.Params{}, fmt.Errorf("rlaaudit: read contest file: %w", err)
	}
	var cf contestFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, nil, engine.Params{}, fmt.Errorf("rlaaudit: parse contest file: %w", err)
	}
	typ, err := parseContestType(cf.Type)
	if err != nil {
		return nil, nil, engine.Params{}, err
	}
	c, err := contest.New(cf.Ballots, cf.Tallies, cf.Winners, typ)
	if err != nil {
		return nil, nil, engine.Params{}, err
	}
	params := engine.Params{
		Alpha:           cf.Alpha,
		MaxFraction:     cf.MaxFraction,
		Delta:           cf.Delta,
		WithReplacement: cf.WithReplacement,
	}
	return &cf, c, params, nil
}
