// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docforge/internal/report"
)

// previewLen caps the content preview in the inspect table.
const previewLen = 60

var inspectCmd = &cobra.Command{
	Use:   "inspect <report.md>",
	Short: "Show how a Markdown report parses",
	Long: `Inspect parses a report without building anything and prints the section
table: each heading found, a preview of its content, and whether a fenced
code block exists anywhere in the text. Use --json for the full parsed
report as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "emit the parsed report as indented JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("markdown report not found: %s", args[0])
	}
	rep := report.Parse(string(data))

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	keys := make([]string, 0, len(rep.Sections))
	for k := range rep.Sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		fmt.Println("no sections found")
	}
	for _, k := range keys {
		fmt.Printf("%-20s %s\n", k, preview(rep.Sections[k]))
	}
	if rep.HasCode {
		fmt.Printf("\nfenced code: found (%d lines)\n", strings.Count(rep.Code, "\n")+1)
	} else {
		fmt.Println("\nfenced code: none")
	}
	return nil
}

// preview flattens content onto one line and truncates it for the table.
func preview(content string) string {
	flat := strings.Join(strings.Fields(content), " ")
	if r := []rune(flat); len(r) > previewLen {
		return string(r[:previewLen]) + "…"
	}
	return flat
}
