package main

import (
	"fmt"
	"io"

	"github.com/bomlens/bomlens/config"
	"github.com/bomlens/bomlens/internal/domain"
	"github.com/bomlens/bomlens/internal/infrastructure/csvio"
	"github.com/bomlens/bomlens/internal/infrastructure/mouser"
	"github.com/bomlens/bomlens/internal/logger"
	"github.com/bomlens/bomlens/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const defaultOutput = "bom_with_prices.csv"

func newEnrichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enrich <input.csv> [output.csv]",
		Short: "Enrich a BOM CSV with unit and extended pricing",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runEnrich,
	}
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.NewStructured(cfg.Log.Level, cfg.Log.Format)

	input := args[0]
	output := defaultOutput
	if len(args) > 1 {
		output = args[1]
	}

	bom, err := csvio.Read(input)
	if err != nil {
		return err
	}

	client := mouser.NewClient(cfg.Mouser.APIKey, cfg.Mouser.BaseURL, log)
	resolver := usecase.NewResolver(client, log)
	throttle := &usecase.FixedCadence{Every: cfg.Throttle.Every, Pause: cfg.Throttle.Pause}
	enricher := usecase.NewEnricher(resolver, throttle, log)

	log.Info("processing BOM", map[string]interface{}{
		"input": input,
		"rows":  len(bom.Rows),
	})

	rows, err := enricher.Enrich(cmd.Context(), bom.Schema, bom.Rows)
	if err != nil {
		return err
	}

	if err := csvio.Write(output, bom.Header, rows); err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), rows)
	fmt.Fprintf(cmd.OutOrStdout(), "BOM processing complete. Output saved to: %s\n", output)
	return nil
}

func printSummary(w io.Writer, rows []domain.EnrichedRow) {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Status]++
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Status", "Rows"})
	for _, status := range []string{domain.StatusFoundByKeyword, domain.StatusNotFound, domain.StatusNoValue} {
		if counts[status] > 0 {
			t.AppendRow(table.Row{status, counts[status]})
		}
	}
	t.AppendFooter(table.Row{"Total", len(rows)})
	t.Render()
}
