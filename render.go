package mdreport

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// MaxContentSize caps input accepted for rendering and export (10 MiB).
const MaxContentSize = 10 << 20

// Superscript syntax ^text^, converted before Goldmark.
var superscriptPattern = regexp.MustCompile(`\^([^\s^][^\n^]*)\^`)

// markdownConverter abstracts the conversion engine so tests can inject
// failing implementations.
type markdownConverter interface {
	convert(content string) (string, error)
}

// goldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with GFM extensions
// and syntax highlighting.
func newGoldmarkConverter() *goldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes for external stylesheet control
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
			html.WithUnsafe(),    // Raw HTML passes through; Sanitize is the safety boundary
		),
	)
	return &goldmarkConverter{md: md}
}

func (c *goldmarkConverter) convert(content string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Renderer converts report markdown to HTML.
type Renderer struct {
	converter markdownConverter
}

// NewRenderer creates a Renderer with the standard conversion engine.
func NewRenderer() *Renderer {
	return &Renderer{converter: newGoldmarkConverter()}
}

// Render converts report markdown to an HTML fragment. Input is
// sanitized first so callers cannot bypass escape stripping. Success
// implies non-empty output.
func (r *Renderer) Render(text string) (string, error) {
	if len(text) > MaxContentSize {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrContentTooLarge, len(text), MaxContentSize)
	}

	text = Sanitize(text)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	text = convertSuperscripts(text)

	htmlContent, err := r.convertIsolated(text)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(htmlContent) == "" {
		return "", ErrEmptyOutput
	}
	return htmlContent, nil
}

// convertIsolated runs the conversion engine on a dedicated goroutine
// and converts an abnormal termination into an error value at the join
// point, so an engine defect cannot crash the caller.
func (r *Renderer) convertIsolated(content string) (string, error) {
	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrRenderPanic, rec)}
			}
		}()
		htmlContent, err := r.converter.convert(content)
		if err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: htmlContent}
	}()

	res := <-done
	return res.html, res.err
}

// convertSuperscripts transforms ^text^ to <sup>text</sup>.
func convertSuperscripts(content string) string {
	return superscriptPattern.ReplaceAllString(content, "<sup>$1</sup>")
}

// defaultRenderer backs the package-level Render function.
var defaultRenderer = NewRenderer()

// Render converts report markdown to HTML using a shared default
// Renderer. Safe for concurrent use.
func Render(text string) (string, error) {
	return defaultRenderer.Render(text)
}
