// Package cliconfig is the flag/config pair shared by cmd/jsonfmt and
// cmd/jsonschema, modeled on MacroPower-x's magicschema.Flags/Config:
// a Flags struct holding flag *names* and a Config struct holding the
// parsed values, wired together by RegisterFlags.
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"

	pjson "github.com/mcvoid/pjson"
)

// Flags names the pflag flags RegisterFlags installs, so a command can
// reference them (e.g. for shell completion) without repeating string
// literals.
type Flags struct {
	Extensions     string
	ExtensionsFile string
	MaxDepth       string
	MaxStringLen   string
	LogLevel       string
	LogFormat      string
}

// Config holds the resolved flag values plus the derived pjson settings.
type Config struct {
	Flags Flags

	Extensions     []string
	ExtensionsFile string
	MaxDepth       int
	MaxStringLen   int
	LogLevel       string
	LogFormat      string
}

// NewConfig returns a Config with default flag names and default
// parser bounds pre-filled.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Extensions:     "ext",
			ExtensionsFile: "ext-file",
			MaxDepth:       "max-depth",
			MaxStringLen:   "max-string-length",
			LogLevel:       "log-level",
			LogFormat:      "log-format",
		},
		MaxDepth:     200,
		MaxStringLen: 1 << 16,
		LogLevel:     "info",
		LogFormat:    "json",
	}
}

// RegisterFlags installs c's flags on flags, binding each to the
// corresponding Config field.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringSliceVar(&c.Extensions, c.Flags.Extensions, nil,
		"grammar extension to enable (repeatable); see --ext=all for every extension")
	flags.StringVar(&c.ExtensionsFile, c.Flags.ExtensionsFile, "",
		"YAML file with an `extensions:` list, merged with --ext")
	flags.IntVar(&c.MaxDepth, c.Flags.MaxDepth, c.MaxDepth, "maximum container nesting depth")
	flags.IntVar(&c.MaxStringLen, c.Flags.MaxStringLen, c.MaxStringLen,
		"maximum string or identifier length, in code points")
	flags.StringVar(&c.LogLevel, c.Flags.LogLevel, c.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&c.LogFormat, c.Flags.LogFormat, c.LogFormat, "log format: json, logfmt")
}

// ErrUnknownExtension reports an --ext or extensions-file entry that
// doesn't name a known pjson.Extensions flag.
var ErrUnknownExtension = errors.New("unknown extension")

var extensionNames = map[string]pjson.Extensions{
	"bash-comments":         pjson.BashComments,
	"line-comments":         pjson.SingleLineComments,
	"block-comments":        pjson.MultiLineComments,
	"single-quote-string":   pjson.SingleQuoteString,
	"object-trailing-comma": pjson.ObjectTrailingComma,
	"array-trailing-comma":  pjson.ArrayTrailingComma,
	"identifier-object-key": pjson.IdentifierObjectKey,
	"leading-plus":          pjson.LeadingPlus,
	"hex-numbers":           pjson.HexNumbers,
	"numeric-infinity":      pjson.NumericInfinity,
	"numeric-nan":           pjson.NumericNaN,
	"all":                   pjson.All,
}

// extensionsYAML is the shape of the ExtensionsFile document.
type extensionsYAML struct {
	Extensions []string `yaml:"extensions"`
}

// ResolveExtensions merges --ext with the extensions file (if any) and
// resolves the combined name list to a pjson.Extensions bitmask.
func (c *Config) ResolveExtensions() (pjson.Extensions, error) {
	names := append([]string(nil), c.Extensions...)
	if c.ExtensionsFile != "" {
		fromFile, err := loadExtensionsFile(c.ExtensionsFile)
		if err != nil {
			return 0, err
		}
		names = append(names, fromFile...)
	}

	var ext pjson.Extensions
	for _, name := range names {
		flag, ok := extensionNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
		}
		ext |= flag
	}
	return ext, nil
}

func loadExtensionsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading extensions file: %w", err)
	}
	var doc extensionsYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing extensions file: %w", err)
	}
	return doc.Extensions, nil
}

// ParserOptions returns the pjson.Option list derived from c's bounds.
// It does not include extensions; pass ResolveExtensions's result as
// pjson.New's second argument (or via pjson.WithExtensions) separately,
// since dom.Parse's family takes extensions as an Option too.
func (c *Config) ParserOptions() []pjson.Option {
	return []pjson.Option{
		pjson.WithMaxStackDepth(c.MaxDepth),
		pjson.WithMaxStringLength(c.MaxStringLen),
	}
}
