package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/img2pdf/internal/config"
	"github.com/kozaktomas/img2pdf/internal/document"
)

func newTestCommand(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addPageFlags(cmd)
	addRenderFlags(cmd)
	for name, value := range flags {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("failed to set --%s: %v", name, err)
		}
	}
	return cmd
}

func TestResolvePageSpec(t *testing.T) {
	t.Setenv("IMG2PDF_PAPER", "A5")
	t.Setenv("IMG2PDF_MARGIN_MM", "")
	t.Setenv("IMG2PDF_DPI", "")

	tests := []struct {
		name       string
		flags      map[string]string
		wantPaper  string
		wantMargin float64
		wantDPI    float64
		wantErr    bool
	}{
		{"environment wins over flag defaults", nil, "A5", 10, 300, false},
		{"explicit flags win", map[string]string{"paper": "letter", "margin": "5", "dpi": "150"}, "Letter", 5, 150, false},
		{"unknown paper", map[string]string{"paper": "napkin"}, "", 0, 0, true},
		{"margin too large", map[string]string{"margin": "80"}, "", 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newTestCommand(t, tc.flags)
			spec, err := resolvePageSpec(cmd, config.Load())
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got spec %+v", spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolvePageSpec failed: %v", err)
			}
			if spec.Paper.Name != tc.wantPaper || spec.MarginMM != tc.wantMargin || spec.DPI != tc.wantDPI {
				t.Errorf("got %+v; want paper %s margin %v dpi %v", spec, tc.wantPaper, tc.wantMargin, tc.wantDPI)
			}
		})
	}
}

func TestResolveOptions(t *testing.T) {
	t.Setenv("IMG2PDF_PAPER", "")
	t.Setenv("IMG2PDF_CAPTIONS", "")
	t.Setenv("IMG2PDF_FONT_PATH", "")

	cfg := config.Load()
	opts, err := resolveOptions(newTestCommand(t, map[string]string{"captions": "true"}), cfg)
	if err != nil {
		t.Fatalf("resolveOptions failed: %v", err)
	}
	// serve hands cfg to the web server, which reads the caption default from it.
	if !cfg.Page.Captions {
		t.Error("expected --captions to be stored in the config")
	}
	if !opts.Document.Captions {
		t.Error("expected captions to be enabled")
	}
	if opts.Font != nil {
		t.Errorf("expected the embedded font, got %+v", opts.Font)
	}

	_, err = resolveOptions(newTestCommand(t, map[string]string{"font-path": "/nonexistent/font.ttf"}), config.Load())
	var fontErr *document.FontError
	if !errors.As(err, &fontErr) {
		t.Errorf("expected FontError, got %v", err)
	}
}
