package domain

import (
	"fmt"
	"strings"
)

// Document is a decoded YAML or JSON object.
type Document = map[string]any

// Keys under which nested model values appear in a document.
const (
	DocumentKeyExecEnvs     = "execEnvs"
	DocumentKeyEnvironments = "environments"
)

// TagMode decides when a document key counts as a discriminant.
type TagMode string

const (
	// TagModeStrict requires the key to hold boolean true.
	TagModeStrict TagMode = "strict"
	// TagModePresence accepts the key whatever its value.
	TagModePresence TagMode = "presence"
)

// ParseTagMode parses a mode name; empty selects strict.
func ParseTagMode(raw string) (TagMode, error) {
	switch TagMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", TagModeStrict:
		return TagModeStrict, nil
	case TagModePresence:
		return TagModePresence, nil
	default:
		return "", fmt.Errorf("tag mode must be strict|presence, got %s", raw)
	}
}

// Classifier recovers discriminant tags from documents.
type Classifier struct {
	Mode TagMode
}

// StrictClassifier is the classifier used by the Is* predicates.
var StrictClassifier = Classifier{Mode: TagModeStrict}

// Tags returns the tags carried directly by doc.
func (c Classifier) Tags(doc Document) TagSet {
	var tags TagSet
	for key, value := range doc {
		tag, ok := ParseTag(key)
		if !ok {
			continue
		}
		if c.Mode == TagModePresence {
			tags = tags.With(tag)
			continue
		}
		if b, isBool := value.(bool); isBool && b {
			tags = tags.With(tag)
		}
	}
	return tags
}

// Classification is the tag set of a document and of the model values
// nested in it.
type Classification struct {
	Tags         TagSet
	ExecEnvs     *Classification
	Environments []Classification
}

// Classify classifies doc and its nested execEnvs and environments.
// Nested entries that are not objects classify as empty.
func (c Classifier) Classify(doc Document) Classification {
	result := Classification{Tags: c.Tags(doc)}
	if nested, ok := doc[DocumentKeyExecEnvs].(Document); ok {
		inner := c.Classify(nested)
		result.ExecEnvs = &inner
	}
	if items, ok := doc[DocumentKeyEnvironments].([]any); ok {
		result.Environments = make([]Classification, 0, len(items))
		for _, item := range items {
			entry, _ := item.(Document)
			result.Environments = append(result.Environments, c.Classify(entry))
		}
	}
	return result
}
