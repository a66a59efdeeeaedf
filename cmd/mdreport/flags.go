package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds flags shared across commands.
type cliFlags struct {
	config  string
	dir     string
	tool    string
	open    bool
	version bool
	verbose bool
}

const usageText = `Usage: mdreport [flags] <command> [args]

Commands:
  list                    List stored reports
  view <name>             Print a report with metadata header
  render <name>           Print a report rendered to HTML
  export <name> <out.pdf> Export a report to PDF via wkhtmltopdf
  delete <name>           Delete a stored report

Flags:
`

// parseFlags parses command-line flags and returns the remaining
// positional arguments (command and its operands).
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("mdreport", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	fs.StringVarP(&flags.config, "config", "c", "", "config name or path")
	fs.StringVarP(&flags.dir, "dir", "d", "", "reports directory (overrides config)")
	fs.StringVar(&flags.tool, "tool", "", "HTML-to-PDF converter binary (overrides config)")
	fs.BoolVar(&flags.open, "open", false, "open the exported file with the default application")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
