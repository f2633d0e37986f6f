// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tcdoc CLI, which renders a
// TwinCAT project directory as a single paginated PDF.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tcdoc/internal/pipeline"
	"github.com/pdiddy/tcdoc/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the tcdoc CLI.
var rootCmd = &cobra.Command{
	Use:   "tcdoc <input_directory> <output_file.pdf>",
	Short: "Render TwinCAT source files as a single PDF document",
	Long: `tcdoc walks a TwinCAT project directory, extracts the source text of every
POU, DUT, GVL, and IO configuration file, and renders it as one paginated
PDF with a title page, table of contents, numbered chapters, and keyword
highlighting.

Malformed XML files are skipped with a warning; the run continues and the
summary lists them. A missing input directory or unwritable output aborts
the run.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		_, err := pipeline.Run(cfg, args[0], args[1], os.Stdout)
		return err
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tcdoc.yaml or ~/.config/tcdoc/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tcdoc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tcdoc"))
		}
	}

	viper.SetEnvPrefix("TCDOC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig overlays any configured values on the defaults. Every setting
// is optional; a zero-config run uses the defaults.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()

	if v := viper.GetInt("extract.tab_width"); v > 0 {
		cfg.Extract.TabWidth = v
	}
	if v := viper.GetString("render.title"); v != "" {
		cfg.Render.Title = v
	}
	if v := viper.GetString("render.heading_font"); v != "" {
		cfg.Render.HeadingFont = v
	}
	if v := viper.GetString("render.code_font"); v != "" {
		cfg.Render.CodeFont = v
	}
	if v := viper.GetFloat64("render.code_font_size"); v > 0 {
		cfg.Render.CodeFontSize = v
	}
	if v := viper.GetFloat64("render.margin_mm"); v > 0 {
		cfg.Render.MarginMM = v
	}
	if v := viper.GetString("render.theme_file"); v != "" {
		cfg.Render.ThemeFile = v
	}
	if v := viper.GetStringSlice("render.keywords"); len(v) > 0 {
		cfg.Render.Keywords = v
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
