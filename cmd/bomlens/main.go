package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Best-effort .env load; real config comes from env vars and config.yaml
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "bomlens",
		Short:         "Enrich KiCAD BOM tables with Mouser pricing and availability",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEnrichCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
