package mdreport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultExportTool is the external HTML-to-PDF converter.
const defaultExportTool = "wkhtmltopdf"

// exportTempName is the fixed temporary file the wrapped HTML is
// staged in before conversion.
const exportTempName = "mdreport-export.html"

// Fixed page geometry and encoding for exported documents.
var exportArgs = []string{
	"--page-size", "A4",
	"--margin-top", "20mm",
	"--margin-bottom", "20mm",
	"--margin-left", "20mm",
	"--margin-right", "20mm",
	"--encoding", "utf-8",
}

// printTemplate wraps a rendered fragment in a complete document shell
// with the fixed print stylesheet.
const printTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Report</title>
<style>
body { font-family: Georgia, "Times New Roman", serif; font-size: 11pt; line-height: 1.5; color: #1a1a1a; margin: 0; }
h1, h2, h3, h4 { font-family: Helvetica, Arial, sans-serif; page-break-after: avoid; }
h1 { font-size: 20pt; border-bottom: 2px solid #1a1a1a; padding-bottom: 4px; }
h2 { font-size: 15pt; margin-top: 18pt; }
table { border-collapse: collapse; width: 100%%; page-break-inside: avoid; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
th { background: #eee; }
pre { background: #f5f5f5; padding: 8px; white-space: pre-wrap; page-break-inside: avoid; }
code { font-family: "Courier New", monospace; font-size: 10pt; }
blockquote { border-left: 3px solid #ccc; margin-left: 0; padding-left: 12px; color: #444; }
img { max-width: 100%%; }
.report-metadata { color: #555; font-size: 9pt; }
</style>
</head>
<body>
%s
</body>
</html>`

// ExportOption configures an Exporter.
type ExportOption func(*Exporter)

// WithTool overrides the converter binary invoked by Export.
func WithTool(name string) ExportOption {
	return func(e *Exporter) {
		if name != "" {
			e.tool = name
		}
	}
}

// WithRunner overrides command execution (used by tests).
func WithRunner(r CommandRunner) ExportOption {
	return func(e *Exporter) { e.runner = r }
}

// Exporter drives the external converter to produce print-ready PDF
// documents from report markdown.
type Exporter struct {
	renderer *Renderer
	runner   CommandRunner
	tool     string
}

// NewExporter creates an Exporter with the standard renderer and a
// real command runner.
func NewExporter(opts ...ExportOption) *Exporter {
	e := &Exporter{
		renderer: NewRenderer(),
		runner:   &ExecRunner{},
		tool:     defaultExportTool,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders report markdown with the print stylesheet and invokes
// the converter to write a PDF at destPath. The subprocess call is
// synchronous with no timeout: a hang in the external tool hangs the
// caller. Returns destPath on success.
func (e *Exporter) Export(text, destPath string) (string, error) {
	htmlContent, err := e.renderer.Render(text)
	if err != nil {
		return "", err
	}

	page := fmt.Sprintf(printTemplate, htmlContent)

	tmpPath := filepath.Join(os.TempDir(), exportTempName)
	if err := os.WriteFile(tmpPath, []byte(page), 0o600); err != nil {
		return "", fmt.Errorf("writing export HTML: %w", err)
	}
	defer func() { _ = os.Remove(tmpPath) }()

	// Probe the tool before the real invocation so its absence is
	// reported distinctly from a conversion failure.
	if _, _, err := e.runner.Run(e.tool, "--version"); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrToolNotFound, e.tool, err)
	}

	args := append(append([]string{}, exportArgs...), tmpPath, destPath)
	if _, stderr, err := e.runner.Run(e.tool, args...); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrToolFailed, strings.TrimSpace(stderr), err)
	}

	info, err := os.Stat(destPath)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrOutputMissing, destPath)
	}
	return destPath, nil
}
