package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/img2pdf/internal/config"
	"github.com/kozaktomas/img2pdf/internal/convert"
	"github.com/kozaktomas/img2pdf/internal/source"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input-dir>",
	Short: "Convert every folder and zip archive in a directory into a PDF",
	Long: `Convert every sub-folder and zip archive found directly inside <input-dir>
into one PDF document named after it. Images inside a folder or archive are
ordered by file name, one image per page.

Supported image formats: jpg, jpeg, png, gif, bmp

Sources without images are skipped. A source that fails does not stop the
others; the command fails only when nothing was converted.

Example:
  img2pdf convert ./scans
  img2pdf convert ./scans -o ./pdf --paper Letter --margin 5 --captions`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("output-dir", "o", "", "Where to write PDFs (default: the input directory)")
	convertCmd.Flags().Int("workers", 0, "Number of sources converted in parallel (default from IMG2PDF_WORKERS or 4)")
	addPageFlags(convertCmd)
	addRenderFlags(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	inputDir := args[0]

	opts, err := resolveOptions(cmd, cfg)
	if err != nil {
		return err
	}

	outputDir := cfg.Output.Dir
	if cmd.Flags().Changed("output-dir") {
		outputDir = mustGetString(cmd, "output-dir")
	}
	if outputDir == "" {
		outputDir = inputDir
	}
	workers := cfg.Output.Workers
	if w := mustGetInt(cmd, "workers"); w > 0 {
		workers = w
	}

	sources, err := source.Discover(inputDir)
	if err != nil {
		return fmt.Errorf("failed to scan input directory: %w", err)
	}
	if len(sources) == 0 {
		fmt.Println("No folders or zip archives found")
		return convert.ErrNoItemsProcessed
	}

	fmt.Printf("Converting %d sources (%s, margin %.1fmm, %.0f dpi)\n",
		len(sources), opts.Spec.Paper.Name, opts.Spec.MarginMM, opts.Spec.DPI)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bar := progressbar.NewOptions(len(sources),
		progressbar.OptionSetDescription("Converting"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("sources"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	converter := convert.NewConverter(opts, outputDir)
	report := converter.ConvertAll(ctx, sources, workers, func(convert.Result) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()
	fmt.Println()

	for _, res := range report.Failed() {
		fmt.Printf("Warning: %s (%s): %v\n", res.Source, res.Kind, res.Err)
	}
	for _, res := range report.Results {
		if res.Status == convert.StatusSkipped {
			fmt.Printf("Skipped %s: no images\n", res.Source)
		}
	}

	fmt.Printf("\nConverted: %d, skipped: %d, failed: %d\n",
		report.Count(convert.StatusConverted),
		report.Count(convert.StatusSkipped),
		report.Count(convert.StatusFailed))
	if n := report.Count(convert.StatusCancelled); n > 0 {
		fmt.Printf("Cancelled: %d\n", n)
	}
	fmt.Printf("Output: %s\n", outputDir)

	return report.Err()
}
