// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the texfig CLI.
// texfig turns a directory of numbered image files into LaTeX figure
// sections and fills them into a document template.
// Implements: CLI surface (generate, list, version) and configuration;
//
//	DESIGN.md § Layout, § Decisions on open questions.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/texfig/internal/images"
	"github.com/pdiddy/texfig/internal/latex"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit codes returned by main.
const (
	exitFailure = 1
	exitInput   = 2
)

// rootCmd is the base command for the texfig CLI.
var rootCmd = &cobra.Command{
	Use:   "texfig",
	Short: "Generate LaTeX figure sections from numbered image files",
	Long: `texfig scans a directory for images named <label>##<subsection>[.<index>].<ext>
(png, jpg or jpeg) and writes one \subsection per subsection number, each holding
a figure environment per image. The generated body replaces the placeholder
token (default <CONTENT>) in a template file.

Files that do not follow the naming convention are ignored.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		setupLogging(cmd)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./texfig.yaml or ~/.config/texfig/config.yaml)")
	rootCmd.PersistentFlags().String("images-dir", "", "directory scanned for images (default report/images)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag(keyImagesDir, rootCmd.PersistentFlags().Lookup("images-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("texfig")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "texfig"))
		}
	}

	setDefaults(viper.GetViper())
	viper.SetEnvPrefix("TEXFIG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setupLogging installs the default slog logger on stderr. --verbose
// lowers the level to debug.
func setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// exitCode maps an error to the process exit status. Problems with the
// inputs (image names, empty directory, template) exit with 2.
func exitCode(err error) int {
	var malformed *images.MalformedFilenameError
	var tmpl *latex.TemplateError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &malformed), errors.As(err, &tmpl), errors.Is(err, latex.ErrEmptyInput),
		errors.Is(err, latex.ErrSubsectionRange):
		return exitInput
	default:
		return exitFailure
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
