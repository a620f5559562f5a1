package fixedarray

import (
	"bytes"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the array as a JSON array of Size() elements. It has a
// value receiver so FixedArray values held by value in a struct still encode.
func (a FixedArray[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.elems())
}

// UnmarshalJSON decodes a JSON array into a. The input must hold exactly
// Size() elements; on any error a is left unchanged. null is a no-op.
func (a *FixedArray[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var values []T
	if err := json.Unmarshal(b, &values); err != nil {
		return err
	}
	return a.load(values)
}

// MarshalYAML encodes the array as a YAML sequence.
func (a FixedArray[T]) MarshalYAML() (interface{}, error) {
	return a.elems(), nil
}

// UnmarshalYAML follows the same length rule as UnmarshalJSON.
func (a *FixedArray[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		return nil
	}
	var values []T
	if err := value.Decode(&values); err != nil {
		return err
	}
	return a.load(values)
}

func (a FixedArray[T]) elems() []T {
	if a.data == nil {
		return []T{}
	}
	return a.data
}

func (a *FixedArray[T]) load(values []T) error {
	if len(values) != len(a.data) {
		return sizeMismatch(len(a.data), len(values))
	}
	copy(a.data, values)
	return nil
}
