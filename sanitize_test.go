package mdreport

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "# Report\n\nNothing suspicious here.",
			want:  "# Report\n\nNothing suspicious here.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "true color sequence",
			input: "\x1B[31mred\x1B[0m",
			want:  "red",
		},
		{
			name:  "compound color sequence",
			input: "\x1B[1;32mgreen bold\x1B[0m",
			want:  "green bold",
		},
		{
			name:  "cursor movement sequence",
			input: "line\x1B[2Aup",
			want:  "lineup",
		},
		{
			name:  "literal ESC text",
			input: "ESC[1mbold textESC[0m",
			want:  "bold text",
		},
		{
			name:  "literal compound ESC text",
			input: "ESC[38;5mcolored",
			want:  "colored",
		},
		{
			name:  "known reset and bold codes",
			input: "ESC[0mstart ESC[1mmiddle ESC[4mend",
			want:  "start middle end",
		},
		{
			name:  "paren variant caught by catch-all",
			input: "\x1B(Bswitched charset",
			want:  "switched charset",
		},
		{
			name:  "bare introducer with command byte",
			input: "before\x1BMafter",
			want:  "beforeafter",
		},
		{
			// The bare word ESC is treated as an introducer and
			// consumed through the next terminator byte.
			name:  "bare ESC word inside ordinary text",
			input: "ESCAPE",
			want:  "PE",
		},
		{
			name:  "mixed true and literal sequences",
			input: "\x1B[1mESC[31mdouble\x1B[0mESC[0m",
			want:  "double",
		},
		{
			name:  "sequences across lines",
			input: "\x1B[36m## Section\x1B[0m\n\nESC[1mImportant.ESC[0m\n",
			want:  "## Section\n\nImportant.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"\x1B[31mred\x1B[0m and ESC[1mbold",
		"\x1B[1;32m\x1B(Bnested\x1B[0m",
		"ESC[38;5;196mdeep colorESC[0m\nmore\x1B[2K",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSanitizeRemovesAllShapes(t *testing.T) {
	input := "\x1B[31ma\x1B[0m ESC[1mb ESC[0m \x1B(Bc \x1B[38;5;10md"
	got := Sanitize(input)

	if strings.ContainsRune(got, 0x1B) {
		t.Errorf("output still contains a raw escape byte: %q", got)
	}
	if strings.Contains(got, "ESC[") {
		t.Errorf("output still contains literal ESC[ text: %q", got)
	}
}
