package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/img2pdf/internal/constants"
	"github.com/kozaktomas/img2pdf/internal/layout"
)

//go:embed papers.yaml
var papersYAML []byte

type Config struct {
	Page   PageConfig
	Output OutputConfig
	Web    WebConfig
	Papers PapersConfig
}

type PageConfig struct {
	Paper    string  // preset name from papers.yaml, defaults to A4
	MarginMM float64 // margin on every side, defaults to 10
	DPI      float64 // assumed pixel density, defaults to 300
	FontPath string  // TrueType font for captions, empty for the embedded font
	Captions bool    // print entry names below each image
}

type OutputConfig struct {
	Dir     string // output folder, empty means next to the input
	Workers int    // parallel conversions, defaults to constants.WorkerPoolSize
}

type WebConfig struct {
	Host           string   // defaults to 0.0.0.0
	Port           int      // defaults to 8080
	AllowedOrigins []string // CORS origins besides localhost, from WEB_ALLOWED_ORIGINS
}

type PapersConfig struct {
	Papers map[string]PaperSize `yaml:"papers"`
}

type PaperSize struct {
	WidthMM  float64 `yaml:"width_mm"`
	HeightMM float64 `yaml:"height_mm"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envFloat reads an environment variable and parses it as a finite,
// non-negative number. Returns the default value otherwise.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return defaultVal
	}
	return f
}

// envBool reads an environment variable as a boolean.
func envBool(key string, defaultVal bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// envList reads a comma-separated environment variable, dropping empty items.
func envList(key string) []string {
	var items []string
	for item := range strings.SplitSeq(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func Load() *Config {
	var papers PapersConfig
	if err := yaml.Unmarshal(papersYAML, &papers); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded papers.yaml: " + err.Error())
	}

	return &Config{
		Page: PageConfig{
			Paper:    envString("IMG2PDF_PAPER", constants.DefaultPaper),
			MarginMM: envFloat("IMG2PDF_MARGIN_MM", constants.DefaultMarginMM),
			DPI:      envFloat("IMG2PDF_DPI", constants.DefaultDPI),
			FontPath: os.Getenv("IMG2PDF_FONT_PATH"),
			Captions: envBool("IMG2PDF_CAPTIONS", false),
		},
		Output: OutputConfig{
			Dir:     os.Getenv("IMG2PDF_OUTPUT_DIR"),
			Workers: envInt("IMG2PDF_WORKERS", constants.WorkerPoolSize),
		},
		Web: WebConfig{
			Host: envString("WEB_HOST", "0.0.0.0"),
			Port: envInt("WEB_PORT", 8080),

			AllowedOrigins: envList("WEB_ALLOWED_ORIGINS"),
		},
		Papers: papers,
	}
}

// Paper looks up a preset by name, ignoring case.
func (c *Config) Paper(name string) (layout.Paper, error) {
	for key, size := range c.Papers.Papers {
		if strings.EqualFold(key, name) {
			return layout.Paper{Name: key, WidthMM: size.WidthMM, HeightMM: size.HeightMM}, nil
		}
	}
	return layout.Paper{}, fmt.Errorf("unknown paper %q (available: %s)", name, strings.Join(c.PaperNames(), ", "))
}

// PaperNames returns the preset names in alphabetical order.
func (c *Config) PaperNames() []string {
	names := make([]string, 0, len(c.Papers.Papers))
	for name := range c.Papers.Papers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PageSpec builds and validates the page geometry described by the config.
func (c *Config) PageSpec() (layout.PageSpec, error) {
	paper, err := c.Paper(c.Page.Paper)
	if err != nil {
		return layout.PageSpec{}, err
	}
	spec := layout.PageSpec{Paper: paper, MarginMM: c.Page.MarginMM, DPI: c.Page.DPI}
	if err := spec.Validate(); err != nil {
		return layout.PageSpec{}, err
	}
	return spec, nil
}
