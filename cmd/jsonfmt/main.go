// Package main provides the CLI entry point for jsonfmt, a pretty-printer
// for JSON (and relaxed-JSON-extension) documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	pjson "github.com/mcvoid/pjson"
	"github.com/mcvoid/pjson/dom"
	"github.com/mcvoid/pjson/emit"
	"github.com/mcvoid/pjson/internal/cliconfig"
	"github.com/mcvoid/pjson/internal/clog"
)

var ErrReadInput = errors.New("jsonfmt: read input")
var ErrWriteOutput = errors.New("jsonfmt: write output")

type flags struct {
	cli    *cliconfig.Config
	output string
	indent string
	compact bool
}

func main() {
	f := &flags{cli: cliconfig.NewConfig()}

	rootCmd := &cobra.Command{
		Use:   "jsonfmt [flags] <file.json> [file2.json ...]",
		Short: "Pretty-print JSON documents, with opt-in relaxed-JSON extensions",
		Long: `jsonfmt parses each input document with the pjson incremental parser and
re-emits it in canonical form. Pass "-" for an argument to read that
document from stdin.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(f, args, os.Stdout, os.Stderr)
		},
	}

	registerFlags(rootCmd.Flags(), f)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func registerFlags(fs *pflag.FlagSet, f *flags) {
	f.cli.RegisterFlags(fs)
	fs.StringVarP(&f.output, "output", "o", "-", "output file, or - for stdout")
	fs.StringVar(&f.indent, "indent", "  ", "indent string used for each nesting level")
	fs.BoolVar(&f.compact, "compact", false, "emit without any whitespace, ignoring --indent")
}

func run(f *flags, args []string, stdout, stderr io.Writer) error {
	logger, err := clog.New(stderr, f.cli.LogLevel, f.cli.LogFormat)
	if err != nil {
		return err
	}

	ext, err := f.cli.ResolveExtensions()
	if err != nil {
		return err
	}
	opts := append(f.cli.ParserOptions(), pjson.WithExtensions(ext))

	cfg := emit.DefaultConfig
	cfg.Indent = f.indent
	if f.compact {
		cfg = emit.Compact
	}

	var out []byte
	for _, arg := range args {
		data, err := readInput(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		node, err := dom.ParseBytes(data, opts...)
		if err != nil {
			logger.Error("parse failed", "input", arg, "error", err)
			return fmt.Errorf("%s: %w", arg, err)
		}

		formatted, err := emit.String(node, cfg)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		out = append(out, formatted...)
		out = append(out, '\n')
	}

	return writeOutput(f.output, out, stdout)
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

func writeOutput(path string, out []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
