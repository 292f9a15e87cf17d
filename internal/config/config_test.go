package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"IMG2PDF_PAPER", "IMG2PDF_MARGIN_MM", "IMG2PDF_DPI", "IMG2PDF_FONT_PATH",
		"IMG2PDF_CAPTIONS", "IMG2PDF_OUTPUT_DIR", "IMG2PDF_WORKERS", "WEB_HOST", "WEB_PORT",
		"WEB_ALLOWED_ORIGINS",
	} {
		os.Unsetenv(key)
	}

	cfg := Load()

	want := PageConfig{Paper: "A4", MarginMM: 10, DPI: 300}
	if diff := cmp.Diff(want, cfg.Page); diff != "" {
		t.Errorf("page config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Output.Dir != "" || cfg.Output.Workers != 4 {
		t.Errorf("unexpected output config %+v", cfg.Output)
	}
	if cfg.Web.Host != "0.0.0.0" || cfg.Web.Port != 8080 || len(cfg.Web.AllowedOrigins) != 0 {
		t.Errorf("unexpected web config %+v", cfg.Web)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("IMG2PDF_PAPER", "letter")
	t.Setenv("IMG2PDF_MARGIN_MM", "0")
	t.Setenv("IMG2PDF_DPI", "150")
	t.Setenv("IMG2PDF_FONT_PATH", "/fonts/DejaVuSans.ttf")
	t.Setenv("IMG2PDF_CAPTIONS", "true")
	t.Setenv("IMG2PDF_OUTPUT_DIR", "/tmp/pdf")
	t.Setenv("IMG2PDF_WORKERS", "12")
	t.Setenv("WEB_PORT", "9090")
	t.Setenv("WEB_ALLOWED_ORIGINS", " https://a.example.com,,https://b.example.com ")

	cfg := Load()

	want := PageConfig{Paper: "letter", MarginMM: 0, DPI: 150, FontPath: "/fonts/DejaVuSans.ttf", Captions: true}
	if diff := cmp.Diff(want, cfg.Page); diff != "" {
		t.Errorf("page config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Output.Dir != "/tmp/pdf" || cfg.Output.Workers != 12 {
		t.Errorf("unexpected output config %+v", cfg.Output)
	}
	if cfg.Web.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Web.Port)
	}
	if diff := cmp.Diff([]string{"https://a.example.com", "https://b.example.com"}, cfg.Web.AllowedOrigins); diff != "" {
		t.Errorf("allowed origins mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"IMG2PDF_DPI", "invalid"},
		{"IMG2PDF_DPI", "-300"},
		{"IMG2PDF_DPI", "NaN"},
		{"IMG2PDF_DPI", "+Inf"},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if dpi := Load().Page.DPI; dpi != 300 {
				t.Errorf("expected default DPI 300 for %q, got %v", tc.value, dpi)
			}
		})
	}

	t.Setenv("IMG2PDF_WORKERS", "0")
	if w := Load().Output.Workers; w != 4 {
		t.Errorf("expected default workers for zero, got %d", w)
	}
	t.Setenv("IMG2PDF_CAPTIONS", "maybe")
	if Load().Page.Captions {
		t.Error("expected captions to stay off for an invalid value")
	}
}

func TestLoad_PapersLoaded(t *testing.T) {
	cfg := Load()

	expected := []string{"A3", "A4", "A5", "B5", "Legal", "Letter"}
	if diff := cmp.Diff(expected, cfg.PaperNames()); diff != "" {
		t.Errorf("paper names mismatch (-want +got):\n%s", diff)
	}
}

func TestPaper(t *testing.T) {
	cfg := Load()

	p, err := cfg.Paper("a4")
	if err != nil {
		t.Fatalf("Paper failed: %v", err)
	}
	if p.Name != "A4" || p.WidthMM != 210 || p.HeightMM != 297 {
		t.Errorf("unexpected paper %+v", p)
	}

	p, err = cfg.Paper("LETTER")
	if err != nil {
		t.Fatalf("Paper failed: %v", err)
	}
	if p.WidthMM != 215.9 || p.HeightMM != 279.4 {
		t.Errorf("unexpected letter size %+v", p)
	}

	if _, err := cfg.Paper("napkin"); err == nil {
		t.Error("expected error for unknown paper")
	}
}

func TestPageSpec(t *testing.T) {
	cfg := Load()
	cfg.Page = PageConfig{Paper: "A4", MarginMM: 10, DPI: 300}

	spec, err := cfg.PageSpec()
	if err != nil {
		t.Fatalf("PageSpec failed: %v", err)
	}
	u := spec.Usable()
	if u.WidthMM != 190 || u.HeightMM != 277 {
		t.Errorf("usable = %vx%v; want 190x277", u.WidthMM, u.HeightMM)
	}

	cfg.Page.MarginMM = 200
	if _, err := cfg.PageSpec(); err == nil {
		t.Error("expected error when margins consume the page")
	}

	cfg.Page = PageConfig{Paper: "A4", MarginMM: 10, DPI: 0}
	if _, err := cfg.PageSpec(); err == nil {
		t.Error("expected error for zero DPI")
	}
}
