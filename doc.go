// Package mdreport turns raw markdown report documents into validated
// metadata, sanitized HTML, and durably stored artifacts.
//
// # Pipeline
//
// The processing stages, in order:
//
//  1. Sanitize strips terminal escape sequences: true ANSI control
//     bytes, their literal "ESC[" spellings, and anything else
//     control-sequence shaped.
//  2. ExtractFrontmatter and ExtractMetadata split a document into a
//     metadata block and body. The first treats a missing block as an
//     error; the second treats it as "no metadata" and proceeds.
//  3. Renderer converts the body to HTML via Goldmark (GFM tables,
//     strikethrough, autolinks, task lists, footnotes, syntax
//     highlighting). The conversion runs on its own goroutine so an
//     engine panic surfaces as an error, not a crash.
//  4. Store persists reports atomically under a root directory: a
//     reader never observes a half-written report.
//  5. Exporter wraps rendered HTML in a print shell and drives
//     wkhtmltopdf to produce a PDF.
//
// A Tracker can be shared between a generating goroutine and any
// number of observers to report progress.
//
// # Quick Start
//
//	store := mdreport.NewStore("reports")
//
//	meta, body, err := mdreport.ExtractFrontmatter(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	html, err := mdreport.Render(body)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	path, err := store.Save(name, raw)
//
// # External Tools
//
// Export requires wkhtmltopdf on PATH; a version probe runs before
// every conversion and the tool's own diagnostics are preserved in
// returned errors. OpenFile shells out to the platform's
// default-application dispatcher (open, xdg-open, or cmd /c start) as
// a single best-effort call.
package mdreport
