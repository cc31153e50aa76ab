package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dusk-indust/sample/internal/config"
	"github.com/dusk-indust/sample/internal/demo"
	"github.com/dusk-indust/sample/internal/export"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigPath string
	Format     string
	Verbose    bool
	Version    bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flags.ConfigPath, "config", "", "YAML run file overriding users and operands")
	fs.StringVar(&flags.Format, "format", "text", "output format: text or json")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if flags.Version {
		_, err := fmt.Fprintln(stdout, version)
		return err
	}

	logger := log.New(io.Discard, "sample: ", 0)
	if flags.Verbose {
		logger.SetOutput(stderr)
	}

	result := demo.Default()
	if flags.ConfigPath != "" {
		cfg, err := config.Load(flags.ConfigPath)
		if err != nil {
			return err
		}
		roster := cfg.Roster()
		a, b := cfg.Addends()
		logger.Printf("config %s: users=%d operands=%d,%d", flags.ConfigPath, roster.Len(), a, b)
		result, err = demo.Build(roster, a, b)
		if err != nil {
			return err
		}
	}
	logger.Printf("first=%v sum=%d format=%s", result.First, result.Sum, flags.Format)

	switch flags.Format {
	case "text":
		return demo.WriteText(stdout, result)
	case "json":
		return export.WriteJSON(stdout, result)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", flags.Format)
	}
}
