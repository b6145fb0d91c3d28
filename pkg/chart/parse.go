package chart

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/timesnake/pkg/errors"
)

// Format is a chart file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

//go:embed reference.toml
var referenceTOML []byte

// Reference returns the built-in chart: 1066 to 2024 with both world wars
// highlighted, a dot on every year on three tracks and a label every two
// years.
func Reference() *Chart {
	c, err := Parse(referenceTOML, FormatTOML)
	if err != nil {
		panic("chart: invalid reference chart: " + err.Error())
	}
	return c
}

// ReferenceSource returns the TOML source of [Reference].
func ReferenceSource() []byte { return bytes.Clone(referenceTOML) }

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown chart file type %q (want .toml, .yaml or .json)", filepath.Ext(path))
}

// ParseFormat accepts a format name or a MIME type such as application/json.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	switch s {
	case "toml", "application/toml":
		return FormatTOML, nil
	case "yaml", "yml", "application/yaml", "application/x-yaml", "text/yaml":
		return FormatYAML, nil
	case "json", "application/json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", s)
}

// Load reads and validates a chart file.
func Load(path string) (*Chart, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "chart file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidChart, err, "read %s", path)
	}
	return Parse(data, format)
}

// Parse decodes and validates a chart. Fields the document leaves out keep
// their defaults; unknown fields are rejected.
func Parse(data []byte, format Format) (*Chart, error) {
	c := New()
	if err := decode(data, format, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(data []byte, format Format, c *Chart) error {
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "decode TOML")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return errors.New(errors.ErrCodeInvalidChart, "unknown field %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "decode YAML")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "decode JSON")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", format)
	}
	return nil
}

// Encode writes the chart in the given format.
func (c *Chart) Encode(format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode TOML")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode YAML")
		}
		enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode JSON")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", format)
	}
	return buf.Bytes(), nil
}
