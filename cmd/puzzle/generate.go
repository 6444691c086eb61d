package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/puzzle"
)

type generateOptions struct {
	date   string
	asJSON bool
	now    func() time.Time
}

// puzzleOutput is the --json shape: config and solution side by side
type puzzleOutput struct {
	Config   domain.DailyStrategyPuzzleConfig   `json:"config"`
	Solution domain.DailyStrategyPuzzleSolution `json:"solution"`
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{now: time.Now}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the puzzle for a UTC date and its optimal selections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "UTC date formatted YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func runGenerate(w io.Writer, opts *generateOptions) error {
	date := opts.now()
	if opts.date != "" {
		parsed, err := time.Parse(domain.DateLayout, opts.date)
		if err != nil {
			return fmt.Errorf("%w: %q", domain.ErrInvalidDate, opts.date)
		}
		date = parsed
	}

	config, solution := puzzle.GenerateDailyStrategyPuzzle(date)
	if opts.asJSON {
		return writeJSON(w, puzzleOutput{Config: config, Solution: solution})
	}
	return writePuzzle(w, config, solution)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePuzzle(w io.Writer, config domain.DailyStrategyPuzzleConfig, solution domain.DailyStrategyPuzzleSolution) error {
	title := cases.Title(language.English)

	fmt.Fprintf(w, "%s (%s)\n", config.Title, strings.TrimSuffix(config.DateISO, "T00:00:00.000Z"))
	fmt.Fprintf(w, "Seed: %s  Time budget: %d\n\n", config.Seed, config.TimeBudget)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tREWARD\tTIME\tRISK")
	for _, task := range config.Tasks {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			task.ID, task.Name, task.Reward, task.TimeCost, title.String(string(task.Risk)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	writeSolution(w, solution)
	return nil
}

func writeSolution(w io.Writer, solution domain.DailyStrategyPuzzleSolution) {
	fmt.Fprintf(w, "\nOptimal reward: %d\n", solution.OptimalReward)
	for _, set := range solution.OptimalTaskSets {
		if len(set) == 0 {
			fmt.Fprintln(w, "  (no tasks)")
			continue
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(set, " + "))
	}
}
