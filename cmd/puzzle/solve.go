package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/handler"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/puzzle"
)

type solveOptions struct {
	file   string
	asJSON bool
}

func newSolveCmd() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute every optimal selection for a stored puzzle config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", `config JSON file, "-" for stdin`)
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runSolve(stdin io.Reader, w io.Writer, opts *solveOptions) error {
	config, err := readConfig(stdin, opts.file)
	if err != nil {
		return err
	}

	solution := puzzle.ComputeOptimalSets(config)
	if opts.asJSON {
		return writeJSON(w, solution)
	}
	writeSolution(w, solution)
	return nil
}

func readConfig(stdin io.Reader, path string) (domain.DailyStrategyPuzzleConfig, error) {
	var config domain.DailyStrategyPuzzleConfig

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return config, fmt.Errorf("failed to open config: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&config); err != nil {
		return config, fmt.Errorf("failed to decode config: %w", err)
	}

	// Same limits as the HTTP solve endpoint; the exhaustive search doubles per task
	if err := handler.GetValidator().ValidateStruct(config); err != nil {
		return config, fmt.Errorf("%w: %s", domain.ErrInvalidInput, describeValidation(err))
	}
	return config, nil
}

func describeValidation(err error) string {
	fields := handler.FormatValidationError(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fields[k]))
	}
	return strings.Join(parts, "; ")
}
