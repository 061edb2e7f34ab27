package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"sigs.k8s.io/yaml"
)

// Format selects a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatHCL}
}

// ParseFormat accepts a format name or a common file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl", "tf":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("unsupported format %q (supported: json, yaml, hcl)", s)
}

// Extension is the file extension of documents in this format.
func (f Format) Extension() string {
	return string(f)
}

// ContentType is the media type used when documents are stored.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatHCL:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Encode renders doc in format f.
func Encode(doc *Document, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(doc)
	case FormatYAML:
		return EncodeYAML(doc)
	case FormatHCL:
		return EncodeHCL(doc)
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

// EncodeJSON renders doc as indented JSON with a trailing newline.
func EncodeJSON(doc *Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan as JSON: %w", err)
	}
	return append(b, '\n'), nil
}

// EncodeYAML renders doc as YAML using the JSON field names.
func EncodeYAML(doc *Document) ([]byte, error) {
	b, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan as YAML: %w", err)
	}
	return b, nil
}
