package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hideokamoto/stripe-decline-codes/internal/docs"
	"github.com/hideokamoto/stripe-decline-codes/internal/logger"
	"github.com/spf13/cobra"
)

var (
	exportPath   string
	exportFormat string
	exportPretty bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the decline-code dataset to a JSON or YAML file",
	Long: `Write the embedded decline-code dataset to a machine-readable file.

Examples:
  declinedocs export
  declinedocs export --output dist/decline-codes.yaml --format yaml
  declinedocs export --output codes.json --pretty=false`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", cfg.Export.Path, "output file path")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", cfg.Export.Format, "artifact format (json or yaml)")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", cfg.Export.Pretty, "indent JSON output")
}

func runExport(cmd *cobra.Command, args []string) error {
	art := docs.Build()

	var buf bytes.Buffer
	switch strings.ToLower(exportFormat) {
	case "json":
		if err := docs.EncodeJSON(&buf, art, exportPretty); err != nil {
			return fmt.Errorf("failed to encode dataset: %w", err)
		}
	case "yaml", "yml":
		if err := docs.EncodeYAML(&buf, art); err != nil {
			return fmt.Errorf("failed to encode dataset: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", exportFormat)
	}

	if dir := filepath.Dir(exportPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportPath, err)
	}

	log := logger.Logger()
	log.Info().
		Str("path", exportPath).
		Str("format", exportFormat).
		Int("codes", len(art.Codes)).
		Str("doc_version", art.DocVersion).
		Msg("Dataset exported")
	return nil
}
