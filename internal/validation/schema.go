package validation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrContentInvalid is returned when a content object fails its section
// schema.
var ErrContentInvalid = errors.New("validation: content does not match section schema")

// ContentError reports which section type rejected the content and why.
type ContentError struct {
	SectionType string
	Reason      error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("validation: invalid %q content: %v", e.SectionType, e.Reason)
}

func (e *ContentError) Unwrap() error {
	return ErrContentInvalid
}

// ContentValidator validates section content objects against per section-type
// JSON Schemas. Section types without a registered schema pass through
// unchecked, so the validator never rejects catalog extensions it does not
// know about.
type ContentValidator struct {
	schemas map[string]*jsonschema.Schema
}

// NewContentValidator compiles the built-in section schemas. Compilation of
// the embedded documents cannot fail at runtime, so errors surface only for
// schemas registered afterwards.
func NewContentValidator() (*ContentValidator, error) {
	v := &ContentValidator{schemas: make(map[string]*jsonschema.Schema, len(sectionSchemas))}
	for sectionType, document := range sectionSchemas {
		if err := v.Register(sectionType, document); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Register compiles and installs a schema for a section type, replacing any
// previous registration.
func (v *ContentValidator) Register(sectionType, document string) error {
	schema, err := jsonschema.CompileString(sectionType+".schema.json", document)
	if err != nil {
		return fmt.Errorf("validation: compile %q schema: %w", sectionType, err)
	}
	v.schemas[sectionType] = schema
	return nil
}

// Validate checks one locale's content object against the schema registered
// for the section type.
func (v *ContentValidator) Validate(sectionType string, content map[string]any) error {
	schema, ok := v.schemas[sectionType]
	if !ok {
		return nil
	}
	normalized, err := normalize(content)
	if err != nil {
		return &ContentError{SectionType: sectionType, Reason: err}
	}
	if err := schema.Validate(normalized); err != nil {
		return &ContentError{SectionType: sectionType, Reason: err}
	}
	return nil
}

// normalize round-trips the content through encoding/json; the schema library
// only accepts the value shapes json.Unmarshal produces, while catalog content
// arrives with typed nested slices and maps.
func normalize(content map[string]any) (any, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// sectionSchemas constrains the known content shapes: text fields must be
// strings and item lists must be arrays of objects. Additional properties are
// allowed so templates can carry extra fields without a schema change.
var sectionSchemas = map[string]string{
	"hero": `{
		"type": "object",
		"required": ["heading"],
		"properties": {
			"heading": {"type": "string", "minLength": 1},
			"subheading": {"type": "string"},
			"text": {"type": "string"},
			"buttonText": {"type": "string"},
			"buttonLink": {"type": "string"}
		}
	}`,
	"about": `{
		"type": "object",
		"required": ["heading"],
		"properties": {
			"heading": {"type": "string", "minLength": 1},
			"text": {"type": "string"}
		}
	}`,
	"services": `{
		"type": "object",
		"properties": {
			"heading": {"type": "string"},
			"subheading": {"type": "string"},
			"items": {"type": "array", "items": {"type": "object"}}
		}
	}`,
	"menu": `{
		"type": "object",
		"required": ["heading"],
		"properties": {
			"heading": {"type": "string", "minLength": 1},
			"subheading": {"type": "string"},
			"items": {"type": "array", "items": {"type": "object"}}
		}
	}`,
	"pricing": `{
		"type": "object",
		"required": ["heading"],
		"properties": {
			"heading": {"type": "string", "minLength": 1},
			"subheading": {"type": "string"},
			"items": {"type": "array", "items": {"type": "object"}}
		}
	}`,
	"contact": `{
		"type": "object",
		"properties": {
			"heading": {"type": "string"},
			"text": {"type": "string"}
		}
	}`,
	"footer": `{
		"type": "object",
		"properties": {
			"heading": {"type": "string"},
			"text": {"type": "string"}
		}
	}`,
}
