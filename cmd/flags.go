package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/img2pdf/internal/config"
	"github.com/kozaktomas/img2pdf/internal/constants"
	"github.com/kozaktomas/img2pdf/internal/layout"
)

// mustGetBool gets a bool flag value or panics if the flag doesn't exist.
// This is appropriate for flags defined in init() - errors indicate programming bugs.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetInt gets an int flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetString gets a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetFloat64 gets a float64 flag value or panics if the flag doesn't exist.
func mustGetFloat64(cmd *cobra.Command, name string) float64 {
	val, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// addPageFlags registers the page geometry flags shared by convert and plan.
func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().String("paper", constants.DefaultPaper, "Paper preset (A3, A4, A5, B5, Letter, Legal)")
	cmd.Flags().Float64("margin", constants.DefaultMarginMM, "Margin on every side in millimetres")
	cmd.Flags().Float64("dpi", constants.DefaultDPI, "Pixel density used to convert pixels to millimetres")
}

// applyPageFlags copies explicitly set page flags over the loaded config.
// Flags left at their default keep the environment's value.
func applyPageFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("paper") {
		cfg.Page.Paper = mustGetString(cmd, "paper")
	}
	if cmd.Flags().Changed("margin") {
		cfg.Page.MarginMM = mustGetFloat64(cmd, "margin")
	}
	if cmd.Flags().Changed("dpi") {
		cfg.Page.DPI = mustGetFloat64(cmd, "dpi")
	}
}

// resolvePageSpec applies the page flags and validates the resulting geometry.
func resolvePageSpec(cmd *cobra.Command, cfg *config.Config) (layout.PageSpec, error) {
	applyPageFlags(cmd, cfg)
	spec, err := cfg.PageSpec()
	if err != nil {
		return layout.PageSpec{}, fmt.Errorf("invalid page settings: %w", err)
	}
	return spec, nil
}
