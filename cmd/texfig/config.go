// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/texfig/pkg/types"
)

// Configuration keys. Nested keys map to TEXFIG_IMAGE_WIDTH and so on.
const (
	keyImagesDir   = "images_dir"
	keyTemplate    = "template"
	keyOutput      = "output"
	keyPlaceholder = "placeholder"
	keyWidth       = "image.width"
	keyHeight      = "image.height"
	keyLabels      = "labels"
)

const (
	defaultImagesDir = "report/images"
	defaultTemplate  = "templates/report_template.tex"
	defaultOutput    = "report/report.tex"
	defaultWidth     = 15.5
)

// setDefaults registers the default configuration. image.height has no
// default so the size clause carries only the width.
func setDefaults(v *viper.Viper) {
	v.SetDefault(keyImagesDir, defaultImagesDir)
	v.SetDefault(keyTemplate, defaultTemplate)
	v.SetDefault(keyOutput, defaultOutput)
	v.SetDefault(keyPlaceholder, types.DefaultPlaceholder)
	v.SetDefault(keyWidth, defaultWidth)
	v.SetDefault(keyLabels, string(types.LabelLegacy))
}

// generationConfig resolves flags, environment, config file and defaults
// into a GenerationConfig.
func generationConfig(v *viper.Viper) (types.GenerationConfig, error) {
	labels, err := types.ParseLabelMode(v.GetString(keyLabels))
	if err != nil {
		return types.GenerationConfig{}, err
	}
	return types.GenerationConfig{
		ImagesDir:    v.GetString(keyImagesDir),
		TemplatePath: v.GetString(keyTemplate),
		OutputPath:   v.GetString(keyOutput),
		Placeholder:  v.GetString(keyPlaceholder),
		Render: types.RenderOptions{
			Size: types.ImageSize{
				Width:  sizeValue(v, keyWidth),
				Height: sizeValue(v, keyHeight),
			},
			Labels: labels,
		},
	}, nil
}

// sizeValue returns the centimeter value for key, or nil when it is unset
// or not positive.
func sizeValue(v *viper.Viper, key string) *float64 {
	if !v.IsSet(key) {
		return nil
	}
	cm := v.GetFloat64(key)
	if cm <= 0 {
		return nil
	}
	return &cm
}
