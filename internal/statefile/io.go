package statefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// Format is a document serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for anything other than JSON or YAML.
var ErrUnsupportedFormat = errors.New("statefile: unsupported format")

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

var documentSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	schema, err := jsonschema.For[Document](nil)
	if err != nil {
		return nil, fmt.Errorf("failed to infer document schema: %w", err)
	}
	return schema.Resolve(nil)
})

// Schema returns the JSON schema documents are validated against.
func Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[Document](nil)
}

// Load reads a document, validates it against the document schema and
// decodes it.
func Load(r io.Reader, format Format) (Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read document: %w", err)
	}

	jsonRaw, err := toJSON(raw, format)
	if err != nil {
		return Document{}, err
	}

	var instance any
	if err := json.Unmarshal(jsonRaw, &instance); err != nil {
		return Document{}, fmt.Errorf("failed to parse document: %w", err)
	}

	resolved, err := documentSchema()
	if err != nil {
		return Document{}, err
	}
	if err := resolved.Validate(instance); err != nil {
		return Document{}, fmt.Errorf("invalid document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(jsonRaw, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

// Marshal renders the document in the given format.
func Marshal(doc Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// toJSON normalizes YAML input to JSON so both formats validate the same way.
func toJSON(raw []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return raw, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to convert yaml to json: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
