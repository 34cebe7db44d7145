package cmd

import (
	"github.com/spf13/cobra"

	"github.com/snackbuddy/deal-tracker/internal/engine"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Run one refresh and write the deal artifacts",
		Long: "Reads the input table, builds the deal families, and writes\n" +
			"the JSON feed and static HTML page.",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			return engine.New(cfg, log).Run()
		},
	}
}
