package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed assets/templates/*.tmpl assets/problems.md
var templateFS embed.FS

//go:embed all:assets/public
var publicFS embed.FS

func loadTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "assets/templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("server: parse templates: %w", err)
	}
	return tmpl, nil
}

// renderProblems converts the embedded problems page from markdown.
func renderProblems() (template.HTML, error) {
	src, err := templateFS.ReadFile("assets/problems.md")
	if err != nil {
		return "", fmt.Errorf("server: read problems page: %w", err)
	}
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("server: render problems page: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // rendered from an embedded file
}

// publicFiles returns the static file tree: dir on disk when set, the
// embedded files otherwise.
func publicFiles(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("server: public dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("server: public dir %s is not a directory", dir)
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(publicFS, "assets/public")
}
