package mdreport

import (
	"regexp"
	"strings"
)

// Precompiled sanitization patterns. Each pass runs on the previous
// pass's output so a sequence revealed by stripping an outer wrapper
// is still caught.
var (
	// True ANSI escape sequences: ESC control byte, bracket, parameter
	// bytes, one command byte.
	ansiEscPattern = regexp.MustCompile("\x1B" + `\[(\d+;)*\d*[a-zA-Z]|` + "\x1B" + `\[\d+m|` + "\x1B" + `\[\d+;\d+m`)

	// The same grammar spelled out as literal "ESC[" text, seen when
	// the control byte was lost in transit.
	literalEscPattern = regexp.MustCompile(`ESC\[(\d+;)*\d*[a-zA-Z]|ESC\[\d+m|ESC\[\d+;\d+m`)

	// Catch-all: introducer, optional bracket or paren, any
	// non-terminator bytes, one terminator byte. The introducer alone
	// triggers a match, so the standalone word ESC inside ordinary text
	// is consumed through the next terminator byte ("ESCAPE" loses
	// "ESCA"). Over-matching is the accepted trade for never letting a
	// mangled sequence through.
	catchAllPattern = regexp.MustCompile(`(?:\x1B|\bESC)(?:\[|\(|\))?[^@-Z\\^_` + "`" + `a-z{|}~]*[@-Z\\^_` + "`" + `a-z{|}~]`)
)

// knownEscapeCodes are literal formatting tokens (reset, bold,
// underline) stripped explicitly in case the general patterns miss a
// variant.
var knownEscapeCodes = [...]string{
	"\x1B[0m", "\x1B[1m", "\x1B[4m",
	"ESC[0m", "ESC[1m", "ESC[4m",
}

// Sanitize removes terminal escape sequences from text: true control
// sequences, their literal text spellings, known formatting codes, and
// a broad catch-all for anything else control-sequence shaped.
// Total function; over-matching is preferred to under-matching since
// the output feeds a renderer or terminal display. Idempotent.
func Sanitize(text string) string {
	text = ansiEscPattern.ReplaceAllString(text, "")
	text = literalEscPattern.ReplaceAllString(text, "")
	for _, code := range knownEscapeCodes {
		text = strings.ReplaceAll(text, code, "")
	}
	return catchAllPattern.ReplaceAllString(text, "")
}
