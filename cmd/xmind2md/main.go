// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the xmind2md CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/xmind2md/internal/outline"
	"github.com/pdiddy/xmind2md/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the xmind2md CLI.
var rootCmd = &cobra.Command{
	Use:   "xmind2md",
	Short: "Convert XMind mind maps into Markdown outlines",
	Long: `xmind2md reads an .xmind archive, picks the sheet that was active when
the file was saved (or the first sheet), and writes its topic tree as a
Markdown outline: top-level topics become headings, deeper topics become
nested bullets, and topic notes are kept as annotated lines.

Labels such as the untitled placeholder and the note prefix can be changed
in xmind2md.yaml or through XMIND2MD_* environment variables.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./xmind2md.yaml or ~/.config/xmind2md/xmind2md.yaml)")

	labels := types.DefaultLabels()
	viper.SetDefault("format", string(types.FormatMarkdown))
	viper.SetDefault("normalize_unicode", false)
	viper.SetDefault("labels.untitled", labels.Untitled)
	viper.SetDefault("labels.no_subtopics", labels.NoSubtopics)
	viper.SetDefault("labels.source_sheet", labels.SourceSheet)
	viper.SetDefault("labels.note", labels.Note)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("xmind2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "xmind2md"))
		}
	}

	viper.SetEnvPrefix("XMIND2MD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config %s: %v\n", cfgFile, err)
	}
}

// outlineConfig builds the renderer settings from viper, letting an explicit
// --format flag on cmd win over the configured format.
func outlineConfig(cmd *cobra.Command) (types.OutlineConfig, error) {
	var cfg types.OutlineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.Labels = cfg.Labels.WithDefaults()

	format := string(cfg.Format)
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		format = f.Value.String()
	}
	parsed, err := outline.ParseFormat(format)
	if err != nil {
		return cfg, err
	}
	cfg.Format = parsed
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
