// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docforge/internal/build"
	"github.com/pdiddy/docforge/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build one Word document from a report and its source file",
	Long: `Build converts a Markdown report plus its companion source file into a
styled .docx document. Section headings map onto the template's named
styles; missing styles fall back to the document defaults. By default the
full source file is appended verbatim under an annex heading.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("md", "", "Markdown report file")
	buildCmd.Flags().String("src", "", "companion source-code file")
	buildCmd.Flags().String("template", "", "Word template (.docx) carrying style definitions")
	buildCmd.Flags().String("out", "", "output .docx path (parent directories are created)")
	buildCmd.Flags().Bool("include-source", true, "append the full source file at the end of the document")
	buildCmd.Flags().Bool("highlight", false, "render code blocks with syntax coloring")

	buildCmd.MarkFlagRequired("md")
	buildCmd.MarkFlagRequired("src")
	buildCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	md, _ := cmd.Flags().GetString("md")
	src, _ := cmd.Flags().GetString("src")
	out, _ := cmd.Flags().GetString("out")

	cfg := types.BuildConfig{
		MarkdownPath:  md,
		SourcePath:    src,
		TemplatePath:  stringSetting(cmd, "template", "template"),
		OutputPath:    out,
		IncludeSource: boolSetting(cmd, "include-source", "include_source"),
		Highlight:     boolSetting(cmd, "highlight", "highlight"),
	}
	if cfg.TemplatePath == "" {
		return fmt.Errorf("provide --template or set template in the config file")
	}

	prof, _, err := loadProfile(cmd)
	if err != nil {
		return err
	}

	if err := build.BuildReport(cfg, prof, io.Discard); err != nil {
		return err
	}

	fmt.Printf("%s document written to %s\n", okStyle.Render("OK"), cfg.OutputPath)
	return nil
}
