package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/matzehuels/treeflow/pkg/errors"
	"github.com/matzehuels/treeflow/pkg/tree"
)

// Format identifies an input encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported input extension %q (want .json, .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Read decodes one tree from r in the given format.
// A document without a name or children key is rejected as empty; a leaf with
// an empty name is a valid tree. Read does not close r.
func Read(r io.Reader, f Format) (*tree.Node, error) {
	if f != JSON && f != YAML && f != TOML {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported input format %q", f)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f, err)
	}

	var keys map[string]any
	if err := unmarshal(data, f, &keys); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", f)
	}
	_, hasName := keys["name"]
	_, hasChildren := keys["children"]
	if !hasName && !hasChildren {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty %s document", f)
	}

	var root tree.Node
	if err := unmarshal(data, f, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", f)
	}
	return &root, nil
}

func unmarshal(data []byte, f Format, v any) error {
	switch f {
	case JSON:
		return json.Unmarshal(data, v)
	case YAML:
		return yaml.Unmarshal(data, v)
	default:
		return toml.Unmarshal(data, v)
	}
}

// Import reads the tree file at path, choosing the decoder by extension.
func Import(path string) (*tree.Node, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	root, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
