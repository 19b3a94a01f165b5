// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/texfig/internal/report"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the LaTeX document from the images directory",
	Long: `Generate scans the images directory, groups the images by subsection,
renders a figure environment for each one and writes the template with its
placeholder replaced to the output file.

Subsections are numbered 1 to the highest number found; a number without
images still gets a heading, titled None. Nothing is written when the
directory holds no images, an image name cannot be decoded, or the template
lacks the placeholder.

Figures without an index get the label fig:<subsection>.None. Pass
--labels omit-missing to write fig:<subsection> instead.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("template", "", "template file containing the placeholder (default templates/report_template.tex)")
	generateCmd.Flags().String("output", "", "output .tex file (default report/report.tex)")
	generateCmd.Flags().String("placeholder", "", "template token replaced by the content (default <CONTENT>)")
	generateCmd.Flags().Float64("width", 0, "image width in cm (default 15.5; 0 or less omits it)")
	generateCmd.Flags().Float64("height", 0, "image height in cm (omitted unless set)")
	generateCmd.Flags().String("labels", "", "label mode for unindexed figures: legacy or omit-missing")
	generateCmd.Flags().Bool("stdout", false, "print the document instead of writing the output file")

	_ = viper.BindPFlag(keyTemplate, generateCmd.Flags().Lookup("template"))
	_ = viper.BindPFlag(keyOutput, generateCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag(keyPlaceholder, generateCmd.Flags().Lookup("placeholder"))
	_ = viper.BindPFlag(keyWidth, generateCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag(keyHeight, generateCmd.Flags().Lookup("height"))
	_ = viper.BindPFlag(keyLabels, generateCmd.Flags().Lookup("labels"))

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := generationConfig(viper.GetViper())
	if err != nil {
		return fmt.Errorf("resolving configuration: %w", err)
	}

	slog.Debug("generating document",
		"images_dir", cfg.ImagesDir,
		"template", cfg.TemplatePath,
		"output", cfg.OutputPath,
		"size", cfg.Render.Size.Clause(),
		"labels", cfg.Render.Labels)

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		res, err := report.Generate(cfg)
		if err != nil {
			return err
		}
		slog.Debug("document generated", "figures", res.Figures, "subsections", res.Subsections)
		fmt.Fprint(cmd.OutOrStdout(), res.Document)
		return nil
	}

	res, err := report.Run(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	slog.Debug("document written",
		"output", cfg.OutputPath,
		"figures", res.Figures,
		"subsections", res.Subsections,
		"empty_subsections", res.EmptySubsections)
	return nil
}
