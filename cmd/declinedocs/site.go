package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hideokamoto/stripe-decline-codes/internal/docs"
	"github.com/hideokamoto/stripe-decline-codes/internal/logger"
	"github.com/spf13/cobra"
)

var siteDir string

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Render the static documentation site",
	Args:  cobra.NoArgs,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().StringVarP(&siteDir, "dir", "d", cfg.Site.Dir, "output directory")
}

func runSite(cmd *cobra.Command, args []string) error {
	art := docs.Build()

	var buf bytes.Buffer
	if err := docs.RenderHTML(&buf, art); err != nil {
		return fmt.Errorf("failed to render site: %w", err)
	}

	if err := os.MkdirAll(siteDir, 0o755); err != nil {
		return fmt.Errorf("failed to create site directory: %w", err)
	}
	page := filepath.Join(siteDir, "index.html")
	if err := os.WriteFile(page, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", page, err)
	}

	log := logger.Logger()
	log.Info().
		Str("path", page).
		Int("codes", len(art.Codes)).
		Msg("Site rendered")
	return nil
}
