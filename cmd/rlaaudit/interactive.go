package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/joeycumines/rla-audit/audit"
	"github.com/joeycumines/rla-audit/contest"
	"github.com/joeycumines/rla-audit/engine"
)

// session wraps the prompt/response loop over an io.Reader/io.Writer
// pair, so the interactive driver can be exercised in tests without a
// real terminal.
type session struct {
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

// errInputEnded signals the input stream closed mid-prompt; runInteractive
// returns it, and main exits with code 1 on any returned error.
var errInputEnded = fmt.Errorf("rlaaudit: input stream ended")

func (s *session) prompt(format string, args ...any) (string, error) {
	fmt.Fprintf(s.out, format, args...)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errInputEnded
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) promptFloat(format string, args ...any) (float64, error) {
	for {
		line, err := s.prompt(format, args...)
		if err != nil {
			return 0, err
		}
		v, parseErr := strconv.ParseFloat(line, 64)
		if parseErr != nil {
			fmt.Fprintf(s.out, "not a number: %q\n", line)
			continue
		}
		return v, nil
	}
}

func (s *session) promptInt(format string, args ...any) (int64, error) {
	for {
		line, err := s.prompt(format, args...)
		if err != nil {
			return 0, err
		}
		v, parseErr := strconv.ParseInt(line, 10, 64)
		if parseErr != nil {
			fmt.Fprintf(s.out, "not an integer: %q\n", line)
			continue
		}
		return v, nil
	}
}

func (s *session) promptYesNo(format string, args ...any) (bool, error) {
	for {
		line, err := s.prompt(format, args...)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintf(s.out, "please answer y or n\n")
		}
	}
}

// runInteractive drives the prompt sequence this binary fixes: audit
// type, alpha, max fraction, contest fields, then per-round prompts
// until the audit leaves IN_PROGRESS.
func runInteractive(in io.Reader, out io.Writer, log zerolog.Logger) error {
	s := &session{in: bufio.NewScanner(in), out: out, log: log}

	engineTag, err := s.promptEngine()
	if err != nil {
		return err
	}

	alpha, err := s.promptFloat("Enter risk limit alpha (0<alpha<1): ")
	if err != nil {
		return err
	}

	maxFraction, err := s.promptFloat("Enter max sample fraction f (0<f<=1): ")
	if err != nil {
		return err
	}

	c, winner, loser, err := s.promptContest()
	if err != nil {
		return err
	}

	a, err := audit.New(c, winner, loser, engineTag, engine.Params{
		Alpha:       alpha,
		MaxFraction: maxFraction,
		Delta:       1,
	}, log)
	if err != nil {
		return fmt.Errorf("rlaaudit: construct audit: %w", err)
	}
	defer a.Close()

	for {
		wantTarget, err := s.promptYesNo("Specify a target stopping probability? (y/n): ")
		if err != nil {
			return err
		}
		if wantTarget {
			target, err := s.promptFloat("Enter target probability (0<p<1): ")
			if err != nil {
				return err
			}
			n, err := a.NextSampleSize(target)
			if err != nil {
				fmt.Fprintf(out, "%v\n", err)
			} else {
				fmt.Fprintf(out, "Recommended next sample size: %d\n", n)
			}
		}

		nCum, err := s.promptInt("Enter next sample size (as a running total): ")
		if err != nil {
			return err
		}
		kw, err := s.promptInt("Enter total number of votes for %s found in sample: ", winner)
		if err != nil {
			return err
		}
		kl, err := s.promptInt("Enter total number of votes for %s found in sample: ", loser)
		if err != nil {
			return err
		}

		decision, err := a.ExecuteRound(nCum, kw, kl)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}

		fmt.Fprintf(out, "==================================================\n")
		fmt.Fprintf(out, "Stopping Condition Met? %t\n", decision.Stopped)
		fmt.Fprintf(out, "Current risk: %v\n", decision.Risk)
		fmt.Fprintf(out, "==================================================\n")

		if decision.Stopped {
			return nil
		}
		if a.State() != audit.InProgress {
			return nil
		}

		forceStop, err := s.promptYesNo("Would you like to force stop the audit? (y/n): ")
		if err != nil {
			return err
		}
		if forceStop {
			return a.ForceStop()
		}
	}
}

func (s *session) promptEngine() (string, error) {
	for {
		line, err := s.prompt("Enter audit type (%s): ", strings.Join(engine.Tags, "/"))
		if err != nil {
			return "", err
		}
		tag := strings.ToLower(line)
		if engine.ValidTag(tag) {
			return tag, nil
		}
		fmt.Fprintf(s.out, "unknown audit type %q\n", line)
	}
}

func (s *session) promptContest() (c *contest.Contest, winner, loser string, err error) {
	ballots, err := s.promptInt("Enter total ballots cast: ")
	if err != nil {
		return nil, "", "", err
	}
	count, err := s.promptInt("Enter number of candidates: ")
	if err != nil {
		return nil, "", "", err
	}

	tallies := make(map[string]int64, count)
	var names []string
	for i := int64(0); i < count; i++ {
		name, err := s.prompt("Enter candidate %d name: ", i+1)
		if err != nil {
			return nil, "", "", err
		}
		tally, err := s.promptInt("Enter candidate %s tally: ", name)
		if err != nil {
			return nil, "", "", err
		}
		tallies[name] = tally
		names = append(names, name)
	}

	winnerCount, err := s.promptInt("Enter number of winners: ")
	if err != nil {
		return nil, "", "", err
	}
	var winners []string
	for i := int64(0); i < winnerCount; i++ {
		name, err := s.prompt("Enter winner %d name: ", i+1)
		if err != nil {
			return nil, "", "", err
		}
		winners = append(winners, name)
	}

	typLine, err := s.prompt("Enter contest type (PLURALITY/MAJORITY): ")
	if err != nil {
		return nil, "", "", err
	}
	typ, err := parseContestType(typLine)
	if err != nil {
		return nil, "", "", err
	}

	cst, err := contest.New(ballots, tallies, winners, typ)
	if err != nil {
		return nil, "", "", err
	}

	loserName := ""
	for _, name := range names {
		if !cst.Winners[name] {
			loserName = name
			break
		}
	}
	return cst, winners[0], loserName, nil
}
