// Package schema describes the JSON shape expected from a generative call.
// One descriptor serves both sides of the contract: it serializes to the
// wire format the Gemini API expects (responseSchema) and to a standard
// JSON Schema document used to validate whatever the model actually returned.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonschema"
)

// Kind is the tag of a Descriptor variant.
type Kind string

const (
	KindObject Kind = "object"
	KindArray  Kind = "array"
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindEnum   Kind = "enum"
)

// Fields maps property names to their descriptors.
type Fields map[string]*Descriptor

// Descriptor is a tagged-variant description of an expected JSON shape.
type Descriptor struct {
	Kind     Kind
	Fields   Fields
	Required []string
	Items    *Descriptor
	Values   []string
}

// Object describes a JSON object. Properties not listed in required are
// optional.
func Object(fields Fields, required ...string) *Descriptor {
	return &Descriptor{Kind: KindObject, Fields: fields, Required: required}
}

// Array describes a JSON array of homogeneous items.
func Array(items *Descriptor) *Descriptor {
	return &Descriptor{Kind: KindArray, Items: items}
}

// String describes a JSON string.
func String() *Descriptor { return &Descriptor{Kind: KindString} }

// Number describes a JSON number.
func Number() *Descriptor { return &Descriptor{Kind: KindNumber} }

// Enum describes a string restricted to the given values.
func Enum(values ...string) *Descriptor {
	return &Descriptor{Kind: KindEnum, Values: values}
}

// Wire serializes the descriptor to the Gemini generationConfig.responseSchema
// form. Type names follow the API's OpenAPI-style enum (OBJECT, ARRAY, ...).
func (d *Descriptor) Wire() map[string]any {
	switch d.Kind {
	case KindObject:
		props := make(map[string]any, len(d.Fields))
		for name, field := range d.Fields {
			props[name] = field.Wire()
		}
		out := map[string]any{"type": "OBJECT", "properties": props}
		if len(d.Required) > 0 {
			out["required"] = d.Required
		}
		return out
	case KindArray:
		return map[string]any{"type": "ARRAY", "items": d.Items.Wire()}
	case KindNumber:
		return map[string]any{"type": "NUMBER"}
	case KindEnum:
		return map[string]any{"type": "STRING", "enum": d.Values}
	default:
		return map[string]any{"type": "STRING"}
	}
}

// JSONSchema serializes the descriptor to a standard JSON Schema document.
// This form is validated locally and, for the inline-schema tier, embedded
// into the prompt text.
func (d *Descriptor) JSONSchema() map[string]any {
	switch d.Kind {
	case KindObject:
		props := make(map[string]any, len(d.Fields))
		for name, field := range d.Fields {
			props[name] = field.JSONSchema()
		}
		out := map[string]any{"type": "object", "properties": props}
		if len(d.Required) > 0 {
			out["required"] = d.Required
		}
		return out
	case KindArray:
		return map[string]any{"type": "array", "items": d.Items.JSONSchema()}
	case KindNumber:
		return map[string]any{"type": "number"}
	case KindEnum:
		return map[string]any{"type": "string", "enum": d.Values}
	default:
		return map[string]any{"type": "string"}
	}
}

// MarshalText renders the JSON Schema form as compact JSON, for embedding
// into prompt text.
func (d *Descriptor) MarshalText() ([]byte, error) {
	return json.Marshal(d.JSONSchema())
}

// Validate checks parsed response data against the descriptor. A nil error
// means every required field is present and every value has the declared
// type. This closes the gap where a parseable-but-incomplete response would
// otherwise flow downstream unchecked.
func (d *Descriptor) Validate(data any) error {
	raw, err := json.Marshal(d.JSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	compiled, err := jsonschema.NewCompiler().Compile(raw)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	result := compiled.Validate(data)
	if result.IsValid() {
		return nil
	}

	msg := ""
	for field, ve := range result.Errors {
		if msg != "" {
			msg += "; "
		}
		msg += fmt.Sprintf("%s: %s", field, ve.Message)
	}
	return fmt.Errorf("schema validation failed: %s", msg)
}
