package joystick

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by LoadOptions for file extensions other
// than .toml, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported options format")

// LoadOptions reads Options from a TOML or YAML file, chosen by extension.
// Keys missing from the file keep their DefaultOptions values.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("load options: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return DecodeTOML(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return Options{}, fmt.Errorf("load options %s: %w", path, ErrUnsupportedFormat)
	}
}

// DecodeTOML parses TOML-encoded Options on top of DefaultOptions.
func DecodeTOML(data []byte) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&opts)
	if err != nil {
		return Options{}, fmt.Errorf("decode toml options: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Options{}, fmt.Errorf("decode toml options: unknown key %q", undec[0].String())
	}
	return opts, nil
}

// DecodeYAML parses YAML-encoded Options on top of DefaultOptions.
func DecodeYAML(data []byte) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("decode yaml options: %w", err)
	}
	return opts, nil
}

// EncodeTOML writes opts as TOML.
func EncodeTOML(opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(opts); err != nil {
		return nil, fmt.Errorf("encode toml options: %w", err)
	}
	return buf.Bytes(), nil
}
