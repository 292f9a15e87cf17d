package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/img2pdf/internal/config"
	"github.com/kozaktomas/img2pdf/internal/convert"
	"github.com/kozaktomas/img2pdf/internal/document"
)

// addRenderFlags registers the flags that only matter when a PDF is drawn.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("font-path", "f", "", "TrueType font for captions (default: embedded Go Regular)")
	cmd.Flags().Bool("captions", false, "Print each image's file name below it")
}

// loadFont returns the configured caption font, or nil for the embedded one.
func loadFont(path string) (*document.Font, error) {
	if path == "" {
		return nil, nil
	}
	font, err := document.LoadFont(path)
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	return font, nil
}

// resolveOptions merges flags over cfg and builds the conversion options.
func resolveOptions(cmd *cobra.Command, cfg *config.Config) (convert.Options, error) {
	spec, err := resolvePageSpec(cmd, cfg)
	if err != nil {
		return convert.Options{}, err
	}
	if cmd.Flags().Changed("font-path") {
		cfg.Page.FontPath = mustGetString(cmd, "font-path")
	}
	if cmd.Flags().Changed("captions") {
		cfg.Page.Captions = mustGetBool(cmd, "captions")
	}

	font, err := loadFont(cfg.Page.FontPath)
	if err != nil {
		return convert.Options{}, err
	}

	opts := convert.Options{Spec: spec, Font: font}
	opts.Document.Captions = cfg.Page.Captions
	return opts, nil
}
