package mdreport

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-mdreport/internal/yamlutil"
)

// Metadata holds the key/value fields extracted from a report's
// frontmatter block. Keys beyond the required ones pass through
// opaquely; values are stringified.
type Metadata map[string]string

// Required metadata fields. Extraction yields a map with both present
// or fails; never a partially valid one.
const (
	FieldTitle = "title"
	FieldDate  = "date"
)

// frontmatterDelimiter bounds the metadata block.
const frontmatterDelimiter = "---"

// permissiveBlockPattern matches an opening delimiter line, captures
// everything up to a line consisting only of the closing delimiter,
// and captures the remainder as body.
var permissiveBlockPattern = regexp.MustCompile(`(?s)\A\s*---[ \t]*\n(.*?)\n---[ \t]*\n?(.*)\z`)

// ExtractFrontmatter splits a document into metadata and body using the
// strict frontmatter grammar: the document must begin (after leading
// whitespace) with a delimiter line, and a second delimiter line closes
// the block. The enclosed text is parsed as YAML and must contain the
// title and date fields.
func ExtractFrontmatter(doc string) (Metadata, string, error) {
	lines := strings.Split(strings.TrimLeft(doc, " \t\r\n"), "\n")
	if strings.TrimRight(lines[0], " \t\r") != frontmatterDelimiter {
		return nil, "", ErrMissingFrontmatter
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t\r") == frontmatterDelimiter {
			closing = i
			break
		}
	}
	if closing < 0 {
		return nil, "", ErrUnterminatedFrontmatter
	}

	meta, err := parseMetadataBlock(strings.Join(lines[1:closing], "\n"))
	if err != nil {
		return nil, "", err
	}
	return meta, strings.Join(lines[closing+1:], "\n"), nil
}

// ExtractMetadata splits a document using the permissive grammar: a
// document without a recognizable metadata block is not an error; it
// yields empty metadata and the original document unchanged as body.
// A block that is present still parses as YAML and still requires the
// title and date fields.
func ExtractMetadata(doc string) (Metadata, string, error) {
	m := permissiveBlockPattern.FindStringSubmatch(doc)
	if m == nil {
		return Metadata{}, doc, nil
	}

	meta, err := parseMetadataBlock(m[1])
	if err != nil {
		return nil, "", err
	}
	return meta, m[2], nil
}

// parseMetadataBlock parses the delimited block as YAML, stringifies
// scalar values, and checks required fields. All absent required
// fields are reported at once, not just the first.
func parseMetadataBlock(block string) (Metadata, error) {
	raw := map[string]any{}
	if strings.TrimSpace(block) != "" {
		if err := yamlutil.Unmarshal([]byte(block), &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMetadataParse, err)
		}
	}

	meta := make(Metadata, len(raw))
	for k, v := range raw {
		meta[k] = fmt.Sprintf("%v", v)
	}

	// A required field present with an empty or blank value counts as
	// missing: a blank title or date is as unusable as an absent one.
	var missing []string
	for _, field := range []string{FieldTitle, FieldDate} {
		if strings.TrimSpace(meta[field]) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return meta, nil
}
