package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/eugenenazirov/dorm-area/internal/calculator"
	"github.com/eugenenazirov/dorm-area/internal/comparison"
	"github.com/eugenenazirov/dorm-area/internal/storage"
)

func runArea(w io.Writer, opts *options, rawResidents string) error {
	mode, err := calculator.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	residents, err := parseResidents(rawResidents)
	if err != nil {
		return err
	}

	res, err := calculator.New().CalculateArea(residents, mode)
	if err != nil {
		return fmt.Errorf("calculating area: %w", err)
	}

	if opts.json {
		return writeJSON(w, res)
	}
	printProgram(w, res)
	return nil
}

func runResidents(w io.Writer, opts *options, rawTarget string) error {
	mode, err := calculator.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	target, err := strconv.ParseFloat(strings.TrimSpace(rawTarget), 64)
	if err != nil {
		return fmt.Errorf("invalid target gross area %q: %w", rawTarget, err)
	}

	calc := calculator.New()
	residents, err := calc.CalculateResidents(target, mode)
	if err != nil {
		return fmt.Errorf("solving headcount: %w", err)
	}
	res, err := calc.CalculateArea(residents, mode)
	if err != nil {
		return fmt.Errorf("calculating area: %w", err)
	}

	if opts.json {
		return writeJSON(w, res)
	}
	printTarget(w, target, residents)
	printProgram(w, res)
	return nil
}

func runCompare(w io.Writer, opts *options, rawResidents string) error {
	mode, err := calculator.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	residents, err := parseResidents(rawResidents)
	if err != nil {
		return err
	}
	dataset, err := loadDataset(opts.referenceFile)
	if err != nil {
		return err
	}

	res, err := calculator.New().CalculateArea(residents, mode)
	if err != nil {
		return fmt.Errorf("calculating area: %w", err)
	}
	report := comparison.NewEngine(comparison.NewResolver(dataset.Mapping)).Aggregate(res.Spaces, dataset.Items)

	if opts.json {
		return writeJSON(w, report)
	}
	printComparison(w, res, report)
	return nil
}

func runReference(w io.Writer, opts *options) error {
	dataset, err := loadDataset(opts.referenceFile)
	if err != nil {
		return err
	}

	summary := comparison.Summarize(dataset.Items)
	if opts.json {
		return writeJSON(w, summary)
	}
	printReference(w, summary)
	return nil
}

func parseResidents(raw string) (int, error) {
	residents, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: residents must be an integer, got %q", calculator.ErrInvalidInput, raw)
	}
	return residents, nil
}

func loadDataset(path string) (storage.Dataset, error) {
	if path == "" {
		return storage.DefaultDataset(), nil
	}
	return storage.LoadDataset(path)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
