// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docforge CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docforge/internal/profile"
	"github.com/pdiddy/docforge/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// okStyle renders the success accent on confirmation lines.
var okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

// rootCmd is the base command for the docforge CLI.
var rootCmd = &cobra.Command{
	Use:   "docforge",
	Short: "Convert Markdown analysis reports into styled Word documents",
	Long: `docforge turns semi-structured Markdown reports ("### Section:" heading
blocks plus optional fenced code) and their companion source files into
styled Word documents, using a pre-built .docx template for style
definitions.

Use build for a single report, batch for a directory of reports, and
inspect to preview how a report parses.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docforge.yaml or ~/.config/docforge/config.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "report profile YAML overriding the built-in section grammar")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docforge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docforge"))
		}
	}

	viper.SetEnvPrefix("DOCFORGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string option: an explicitly set flag wins,
// then the config key, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

// boolSetting resolves a boolean option with the same precedence.
func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	return viper.GetBool(key)
}

// loadProfile returns the report profile for a command invocation along
// with the path it was loaded from ("" for the built-in default).
func loadProfile(cmd *cobra.Command) (types.Profile, string, error) {
	path := stringSetting(cmd, "profile", "profile")
	if path == "" {
		return profile.Default(), "", nil
	}
	p, err := profile.Load(path)
	if err != nil {
		return types.Profile{}, "", err
	}
	return p, path, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
