// Package main provides the CLI entry point for jsonschema, a validator
// that checks JSON instance documents against a JSON Schema document.
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
	"github.com/mcvoid/pjson/internal/cliconfig"
	"github.com/mcvoid/pjson/internal/clog"
	"github.com/mcvoid/pjson/schema"
)

var ErrReadInput = errors.New("jsonschema: read input")
var ErrValidation = errors.New("jsonschema: instance does not satisfy schema")

type flags struct {
	cli        *cliconfig.Config
	schemaPath string
}

func main() {
	f := &flags{cli: cliconfig.NewConfig()}

	rootCmd := &cobra.Command{
		Use:   "jsonschema --schema <schema.json> <instance.json> [instance2.json ...]",
		Short: "Validate JSON instance documents against a JSON Schema document",
		Long: `jsonschema parses a schema document and one or more instance documents with
the pjson incremental parser, then checks each instance against the schema.
Pass "-" for an instance argument to read it from stdin.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(f, args, os.Stderr)
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
	fs.StringVar(&f.schemaPath, "schema", "", "path to the JSON Schema document (required)")
}

func run(f *flags, args []string, stderr io.Writer) error {
	logger, err := clog.New(stderr, f.cli.LogLevel, f.cli.LogFormat)
	if err != nil {
		return err
	}
	if f.schemaPath == "" {
		return errors.New("jsonschema: --schema is required")
	}

	ext, err := f.cli.ResolveExtensions()
	if err != nil {
		return err
	}
	opts := append(f.cli.ParserOptions(), pjson.WithExtensions(ext))

	schemaData, err := readInput(f.schemaPath)
	if err != nil {
		return fmt.Errorf("%w: schema: %w", ErrReadInput, err)
	}
	schemaNode, err := dom.ParseBytes(schemaData, opts...)
	if err != nil {
		return fmt.Errorf("jsonschema: invalid schema document: %w", err)
	}

	failed := false
	for _, arg := range args {
		data, err := readInput(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		instance, err := dom.ParseBytes(data, opts...)
		if err != nil {
			logger.Error("invalid instance document", "input", arg, "error", err)
			failed = true
			continue
		}

		if verr := schema.Validate(schemaNode, instance); verr != nil {
			logger.Error("schema validation failed", "input", arg, "error", verr)
			failed = true
			continue
		}
		logger.Info("valid", "input", arg)
	}

	if failed {
		return ErrValidation
	}
	return nil
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}
