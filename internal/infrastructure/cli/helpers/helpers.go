package helpers

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/envctx/internal/domain"
)

// StdinPath selects standard input as the document source.
const StdinPath = "-"

// ErrEmptyDocument is returned when the input holds no YAML or JSON object.
var ErrEmptyDocument = errors.New("document is empty")

// ReadDocument decodes the YAML or JSON object at path ("-" reads stdin).
func ReadDocument(path string, stdin io.Reader) (domain.Document, error) {
	if path == "" || path == StdinPath {
		return DecodeDocument(stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}
	defer file.Close()

	doc, err := DecodeDocument(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}
	return doc, nil
}

// DecodeDocument decodes a single YAML or JSON object.
func DecodeDocument(r io.Reader) (domain.Document, error) {
	var doc domain.Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}
	if doc == nil {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// WriteStructured renders v as JSON or YAML.
func WriteStructured(out io.Writer, format domain.OutputFormat, v interface{}) error {
	switch format {
	case domain.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case domain.OutputYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = fmt.Fprint(out, string(data))
		return err
	default:
		return fmt.Errorf("unsupported structured output %q", format)
	}
}

// TraverseNestedMap walks through nested maps following the key path
func TraverseNestedMap(data interface{}, keyPath []string) (interface{}, bool) {
	if len(keyPath) == 0 {
		return data, true
	}

	switch node := data.(type) {
	case map[string]interface{}:
		next, exists := node[keyPath[0]]
		if !exists {
			return nil, false
		}
		return TraverseNestedMap(next, keyPath[1:])
	default:
		return nil, false
	}
}
