package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "rlaaudit",
		Usage: "drive a risk-limiting election audit interactively or in bulk",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "contest",
				Usage: "path to a contest JSON file (required for bulk mode)",
			},
			&cli.StringFlag{
				Name:  "rounds",
				Usage: "path to a JSON list of round observations (required for bulk mode)",
			},
			&cli.StringFlag{
				Name:  "l",
				Usage: `space-separated cumulative sample sizes, e.g. -l "100 200 300", cross-checked against --rounds`,
			},
			&cli.StringFlag{
				Name:  "transcript-out",
				Usage: "if set, write the final transcript to this path as JSON",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "emit debug-level audit logging to stderr",
			},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Bool("verbose") {
				log = log.Level(zerolog.DebugLevel)
			} else {
				log = log.Level(zerolog.WarnLevel)
			}

			contestPath := ctx.String("contest")
			roundsPath := ctx.String("rounds")
			if contestPath != "" || roundsPath != "" {
				if contestPath == "" || roundsPath == "" {
					return fmt.Errorf("rlaaudit: bulk mode requires both --contest and --rounds")
				}
				schedule, err := parseSchedule(ctx.String("l"))
				if err != nil {
					return err
				}
				rounds, err := runBulk(os.Stdout, log, contestPath, roundsPath, schedule)
				if err != nil {
					return err
				}
				if out := ctx.String("transcript-out"); out != "" {
					if err := writeTranscript(out, rounds); err != nil {
						return err
					}
				}
				return nil
			}

			return runInteractive(os.Stdin, os.Stdout, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseSchedule parses the -l flag's space-separated integer list.
func parseSchedule(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Fields(s)
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("rlaaudit: -l entry %q is not an integer: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}
