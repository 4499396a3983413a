// pkg/emit/emit.go
package emit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/fplan/pkg/plan"
)

// Format names an output encoding for a build plan
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatTOML     Format = "toml"
	FormatStarlark Format = "starlark"
)

// ErrUnknownFormat indicates an unsupported output format
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats
func Formats() []Format {
	return []Format{FormatYAML, FormatJSON, FormatTOML, FormatStarlark}
}

// ParseFormat maps a user-supplied name to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml", "":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "starlark", "bzl", "build":
		return FormatStarlark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write encodes cfg to w in the given format
func Write(w io.Writer, cfg *plan.BuildConfig, format Format) error {
	if cfg == nil {
		return fmt.Errorf("emit: nil build config")
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	case FormatStarlark:
		_, err := w.Write(Starlark(cfg))
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
