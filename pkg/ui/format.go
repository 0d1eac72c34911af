package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
)

// Format selects how command results are written
type Format int

const (
	// FormatAuto picks term or text from the output stream
	FormatAuto Format = iota
	// FormatTerminal is styled output with tables and colors
	FormatTerminal
	// FormatText is unstyled, tab aligned output
	FormatText
	// FormatJSON is indented JSON for scripts
	FormatJSON
	// FormatYAML is YAML for scripts
	FormatYAML
)

// formatNames holds the canonical name of each format first, then its
// accepted aliases
var formatNames = map[Format][]string{
	FormatAuto:     {"auto"},
	FormatTerminal: {"term", "terminal"},
	FormatText:     {"text", "plain"},
	FormatJSON:     {"json"},
	FormatYAML:     {"yaml", "yml"},
}

// FormatNames lists the canonical format names in flag order
func FormatNames() []string {
	names := make([]string, 0, len(formatNames))
	for f := FormatAuto; f <= FormatYAML; f++ {
		names = append(names, formatNames[f][0])
	}
	return names
}

func (f Format) String() string {
	if names, ok := formatNames[f]; ok {
		return names[0]
	}
	return "unknown"
}

// IsMachine reports whether the format is meant to be read by another
// program. Machine formats get results instead of status messages.
func (f Format) IsMachine() bool {
	return f == FormatJSON || f == FormatYAML
}

// ParseFormat resolves a --format value, case-insensitively. An empty
// value means auto.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatAuto, nil
	}
	for f, names := range formatNames {
		for _, n := range names {
			if n == name {
				return f, nil
			}
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput,
		"unknown output format '%s', expected one of: %s", s, strings.Join(FormatNames(), ", "))
}

// DetectFormat resolves auto for the given output file
func DetectFormat(output *os.File) Format {
	// NO_COLOR wins over everything, see no-color.org
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}

	// dumb terminals and TERM=dumb report an ascii profile
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
