// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docforge/internal/build"
	"github.com/pdiddy/docforge/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Build every report in a directory",
	Long: `Batch processes every *.md report in the reports directory, pairing each
with the source file sharing its basename stem in the sources directory.
Per-report status is printed as it goes; reports whose inputs have not
changed since the last run are skipped via the build manifest. A report
with no matching source counts as a failure without stopping the batch.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("reports-dir", "reports", "directory scanned for *.md reports")
	batchCmd.Flags().String("sources-dir", "sources", "directory holding companion source files")
	batchCmd.Flags().String("template", "", "Word template (.docx) shared by every report")
	batchCmd.Flags().String("out-dir", "output", "directory receiving one .docx per report")
	batchCmd.Flags().String("manifest", "", "build manifest path (default: <out-dir>/.docforge.db)")
	batchCmd.Flags().Bool("include-source", true, "append each source file at the end of its document")
	batchCmd.Flags().Bool("highlight", false, "render code blocks with syntax coloring")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	reportsDir, _ := cmd.Flags().GetString("reports-dir")
	sourcesDir, _ := cmd.Flags().GetString("sources-dir")
	manifestPath, _ := cmd.Flags().GetString("manifest")

	prof, profPath, err := loadProfile(cmd)
	if err != nil {
		return err
	}

	cfg := types.BatchConfig{
		ReportsDir:    reportsDir,
		SourcesDir:    sourcesDir,
		TemplatePath:  stringSetting(cmd, "template", "template"),
		OutDir:        stringSetting(cmd, "out-dir", "out_dir"),
		ManifestPath:  manifestPath,
		IncludeSource: boolSetting(cmd, "include-source", "include_source"),
		Highlight:     boolSetting(cmd, "highlight", "highlight"),
		ProfilePath:   profPath,
	}
	if cfg.TemplatePath == "" {
		return fmt.Errorf("provide --template or set template in the config file")
	}

	result, err := build.BuildBatch(context.Background(), cfg, prof, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d report(s) failed to build", result.Failed)
	}
	return nil
}
