package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/img2pdf/internal/config"
	"github.com/kozaktomas/img2pdf/internal/convert"
	"github.com/kozaktomas/img2pdf/internal/layout"
	"github.com/kozaktomas/img2pdf/internal/source"
)

var planCmd = &cobra.Command{
	Use:   "plan <folder-or-zip>",
	Short: "Show how the images of a source would be laid out",
	Long: `Validate a single folder or zip archive and print the page layout it would
get, without writing a PDF: scale, rotation and effective print resolution
for every image.

Example:
  img2pdf plan ./scans/holiday
  img2pdf plan ./scans/holiday.zip --paper A5 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().Bool("json", false, "Output as JSON")
	addPageFlags(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	spec, err := resolvePageSpec(cmd, cfg)
	if err != nil {
		return err
	}

	src, err := source.Open(args[0])
	if err != nil {
		return err
	}
	entries, err := src.Entries()
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	doc, err := convert.Plan(src.Name(), entries, spec)
	if err != nil {
		return err
	}
	report := doc.Report()

	if mustGetBool(cmd, "json") {
		return outputJSON(report)
	}
	printReport(report)
	return nil
}

func printReport(r layout.Report) {
	fmt.Printf("%s: %d pages on %s (%.1f x %.1f mm, margin %.1f mm, %.0f dpi)\n\n",
		r.Title, r.PageCount, r.Paper.Name, r.Paper.WidthMM, r.Paper.HeightMM, r.MarginMM, r.DPI)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PAGE\tNAME\tSIZE\tSCALE\tROTATION\tDPI")
	fmt.Fprintln(w, "----\t----\t----\t-----\t--------\t---")
	for _, p := range r.Pages {
		fmt.Fprintf(w, "%d\t%s\t%dx%d\t%.3f\t%s\t%.0f\n",
			p.PageNumber, p.Name, p.WidthPx, p.HeightPx, p.Scale, p.Rotation, p.EffectiveDPI)
	}
	w.Flush()

	if len(r.Warnings) > 0 {
		fmt.Println()
		for _, warn := range r.Warnings {
			fmt.Printf("%s: page %d: %s\n", warn.Severity, warn.PageNumber, warn.Message)
		}
	}
}

func outputJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
