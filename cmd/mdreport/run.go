package main

import (
	"errors"
	"fmt"
	"io"

	mdreport "github.com/alnah/go-mdreport"
	"github.com/alnah/go-mdreport/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoCommand      = errors.New("no command given, try: list, view, render, export, delete")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingName    = errors.New("report name is required")
	ErrMissingOutput  = errors.New("output path is required")
)

// run dispatches the parsed command against a Store and Exporter built
// from flags and config.
func run(flags *cliFlags, args []string, out io.Writer) error {
	if flags.version {
		fmt.Fprintln(out, Version)
		return nil
	}
	if len(args) == 0 {
		return ErrNoCommand
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	store := mdreport.NewStore(cfg.Reports.Dir)

	switch cmd := args[0]; cmd {
	case "list":
		return runList(store, out)
	case "view":
		return runView(store, args[1:], out)
	case "render":
		return runRender(store, args[1:], out)
	case "export":
		return runExport(store, cfg, flags, args[1:], out)
	case "delete":
		return runDelete(store, args[1:], out)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// resolveConfig loads the named config, or defaults when none given.
// Flags override config values.
func resolveConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flags.dir != "" {
		cfg.Reports.Dir = flags.dir
	}
	if flags.tool != "" {
		cfg.Export.Tool = flags.tool
	}
	return cfg, nil
}

func runList(store *mdreport.Store, out io.Writer) error {
	names, err := store.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func runView(store *mdreport.Store, args []string, out io.Writer) error {
	if len(args) < 1 {
		return ErrMissingName
	}

	content, err := store.Read(args[0])
	if err != nil {
		return err
	}

	// Permissive extraction: a report without a metadata block is
	// still viewable.
	meta, body, err := mdreport.ExtractMetadata(content)
	if err != nil {
		return err
	}

	if title := meta[mdreport.FieldTitle]; title != "" {
		fmt.Fprintf(out, "Title: %s\n", title)
	}
	if date := meta[mdreport.FieldDate]; date != "" {
		fmt.Fprintf(out, "Generated: %s\n", date)
	}
	fmt.Fprintln(out, mdreport.Sanitize(body))
	return nil
}

func runRender(store *mdreport.Store, args []string, out io.Writer) error {
	if len(args) < 1 {
		return ErrMissingName
	}

	content, err := store.Read(args[0])
	if err != nil {
		return err
	}

	_, body, err := mdreport.ExtractMetadata(content)
	if err != nil {
		return err
	}

	html, err := mdreport.Render(body)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, html)
	return nil
}

func runExport(store *mdreport.Store, cfg *config.Config, flags *cliFlags, args []string, out io.Writer) error {
	if len(args) < 1 {
		return ErrMissingName
	}
	if len(args) < 2 {
		return ErrMissingOutput
	}

	content, err := store.Read(args[0])
	if err != nil {
		return err
	}

	_, body, err := mdreport.ExtractMetadata(content)
	if err != nil {
		return err
	}

	exporter := mdreport.NewExporter(mdreport.WithTool(cfg.Export.Tool))
	path, err := exporter.Export(body, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Created %s\n", path)

	if flags.open {
		if err := mdreport.OpenFile(path); err != nil {
			// Best effort: the export itself succeeded.
			fmt.Fprintf(out, "Could not open %s: %v\n", path, err)
		}
	}
	return nil
}

func runDelete(store *mdreport.Store, args []string, out io.Writer) error {
	if len(args) < 1 {
		return ErrMissingName
	}

	deleted, err := store.Delete(args[0])
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintf(out, "Deleted %s\n", args[0])
	} else {
		fmt.Fprintf(out, "No such report: %s\n", args[0])
	}
	return nil
}
