package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/govalues/numprec/internal/stats"
)

var errNoInput = errors.New("no input: pass a file or pipe CSV data to stdin")

type statsOptions struct {
	column string
	places int
	json   bool
}

// statsOutput is the JSON representation of a summary.
type statsOutput struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

func newStatsCmd(a *app) *cobra.Command {
	opts := &statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize a column of scores from CSV",
		Long: `Read CSV data with a header row from a file, or from stdin if the file
is omitted or "-", and print the count, sum, mean, minimum and maximum
of the selected score column.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("column") {
				opts.column = a.cfg.Stats.Column
			}
			if !cmd.Flags().Changed("places") {
				opts.places = a.cfg.Stats.Places
			}
			return a.runStats(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.column, "column", "score", "header name or zero-based index of the score column")
	cmd.Flags().IntVar(&opts.places, "places", 2, "digits after the decimal point in the mean")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the summary as JSON")
	return cmd
}

func (a *app) runStats(cmd *cobra.Command, args []string, opts *statsOptions) error {
	var r io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening scores: %w", err)
		}
		defer f.Close()
		r = f
		source = args[0]
	} else if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errNoInput
	}

	scores, err := stats.ReadScores(r, opts.column)
	if err != nil {
		return fmt.Errorf("reading %v: %w", source, err)
	}
	a.logger.Debug("scores read", "source", source, "column", opts.column, "count", len(scores))

	s, err := stats.Summarize(a.calc, scores, opts.places)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statsOutput(s))
	}
	fmt.Fprintf(out, "count: %v\n", s.Count)
	fmt.Fprintf(out, "sum:   %v\n", formatNumber(s.Sum))
	fmt.Fprintf(out, "mean:  %v\n", formatNumber(s.Mean))
	fmt.Fprintf(out, "min:   %v\n", formatNumber(s.Min))
	fmt.Fprintf(out, "max:   %v\n", formatNumber(s.Max))
	return nil
}
