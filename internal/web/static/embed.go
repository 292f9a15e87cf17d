package static

import "embed"

//go:embed all:dist/*
var distFS embed.FS

// IndexHTML returns the upload page.
func IndexHTML() ([]byte, error) {
	return distFS.ReadFile("dist/index.html")
}
