package mdreport

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput      = errors.New("report content cannot be empty")
	ErrContentTooLarge = errors.New("report content exceeds processing size limit")
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrRenderPanic     = errors.New("markdown renderer crashed")
	ErrEmptyOutput     = errors.New("markdown renderer produced no output")

	// Metadata extraction errors.
	ErrMissingFrontmatter      = errors.New("document has no frontmatter block")
	ErrUnterminatedFrontmatter = errors.New("frontmatter block is not terminated")
	ErrMetadataParse           = errors.New("failed to parse frontmatter")
	ErrMissingField            = errors.New("frontmatter missing required field")

	// Store errors.
	ErrReportNotFound = errors.New("report not found")
	ErrNotAFile       = errors.New("report path is not a regular file")
	ErrReportTooLarge = errors.New("report file exceeds maximum size")
	ErrStoreNotFound  = errors.New("reports directory does not exist")

	// Export errors.
	ErrToolNotFound  = errors.New("converter tool not found")
	ErrToolFailed    = errors.New("converter tool failed")
	ErrOutputMissing = errors.New("export completed but output file is missing")

	// Platform open dispatch errors.
	ErrOpenFailed = errors.New("failed to open file with default application")
)
