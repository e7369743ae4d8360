package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/open-sspm/open-aigov/internal/integrations"
	"github.com/open-sspm/open-aigov/internal/toolcatalog"
	"github.com/spf13/cobra"
)

var validateCatalogFile string

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog",
	Short: "Validate the tool catalog and the default integration catalog without touching the DB.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadToolCatalog(validateCatalogFile)
		if err != nil {
			return err
		}

		problems := catalog.Validate()
		problems = append(problems, integrations.ValidateCatalog(integrations.DefaultCatalog)...)
		if len(problems) > 0 {
			for _, p := range problems {
				slog.Error("catalog problem", "problem", p)
			}
			return &exitError{code: exitInvalid, err: fmt.Errorf("catalog has %d problem(s)", len(problems))}
		}

		slog.Info("catalog validated", "tools", len(catalog.Tools), "integrations", len(integrations.DefaultCatalog))
		return nil
	},
}

func loadToolCatalog(path string) (*toolcatalog.Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return toolcatalog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return toolcatalog.Parse(data)
}

func init() {
	validateCatalogCmd.Flags().StringVar(&validateCatalogFile, "file", "", "Tool catalog YAML to validate instead of the embedded one")
}
