package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

// O is a configuration object represented as a nested map, as produced by
// yaml.Unmarshal. Values are addressed with dot-notation paths.
type O map[string]any

// Set stores value at the given dot-notation path, creating intermediate
// maps as needed. A non-map value in the way is replaced.
func (this O) Set(path string, value any) {
	parts := strings.Split(path, ".")
	m := map[string]any(this)
	for _, p := range parts[:len(parts)-1] {
		next, ok := asMap(m[p])
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case O:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

// DecodeOption is a functional option for DecodeInto.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	validate bool
}

// WithValidation enables struct validation using "validate" tags after decoding.
func WithValidation() DecodeOption {
	return func(o *decodeOptions) {
		o.validate = true
	}
}

// DecodeInto decodes the object over target, a pointer to a struct. Fields
// missing from the object keep their current value, so decoding a partial
// object acts as an overlay. Uses "yaml" struct tags, accepts weakly-typed
// input (e.g. "4" for an int) and rejects unknown keys.
func (this O) DecodeInto(target any, opts ...DecodeOption) error {
	options := decodeOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(map[string]any(this)); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	if options.validate {
		if err := validate.Struct(target); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}
