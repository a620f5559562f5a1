package fixedarray

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type window struct {
	Name    string               `yaml:"name"`
	Samples *FixedArray[float64] `yaml:"samples"`
}

func TestJSONRoundTrip(t *testing.T) {
	arr := From(1, 2, 3)
	b, err := json.Marshal(arr)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(b))

	out := New[int](3)
	require.NoError(t, json.Unmarshal(b, out))
	assert.Equal(t, []int{1, 2, 3}, out.Data())
}

func TestJSONEmpty(t *testing.T) {
	b, err := json.Marshal(New[int](0))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	var zero FixedArray[int]
	b, err = zero.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestJSONLengthEnforced(t *testing.T) {
	arr := From(1, 2, 3)
	err := arr.UnmarshalJSON([]byte(`[4,5]`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
	assert.Equal(t, []int{1, 2, 3}, arr.Data())
}

func TestJSONNull(t *testing.T) {
	arr := From(1, 2)
	require.NoError(t, arr.UnmarshalJSON([]byte(` null `)))
	assert.Equal(t, []int{1, 2}, arr.Data())
}

func TestJSONSyntaxError(t *testing.T) {
	arr := From(1, 2)
	require.Error(t, arr.UnmarshalJSON([]byte(`[1,`)))
	assert.Equal(t, []int{1, 2}, arr.Data())
}

type reading struct {
	Sensor string          `json:"sensor" yaml:"sensor"`
	Values FixedArray[int] `json:"values" yaml:"values"`
}

func TestMarshalByValueField(t *testing.T) {
	r := reading{Sensor: "t1", Values: *From(3, 4)}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sensor":"t1","values":[3,4]}`, string(b))

	y, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "sensor: t1\nvalues:\n    - 3\n    - 4\n", string(y))
}

func TestYAMLRoundTrip(t *testing.T) {
	arr := From("a", "b", "c")
	b, err := yaml.Marshal(arr)
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n- c\n", string(b))

	out := New[string](3)
	require.NoError(t, yaml.Unmarshal(b, out))
	assert.Equal(t, []string{"a", "b", "c"}, out.Data())
}

func TestYAMLNestedField(t *testing.T) {
	src := []byte("name: mem\nsamples: [1.5, 2.5]\n")
	out := window{Samples: New[float64](2)}
	require.NoError(t, yaml.Unmarshal(src, &out))
	assert.Equal(t, "mem", out.Name)
	assert.Equal(t, []float64{1.5, 2.5}, out.Samples.Data())
}

func TestYAMLLengthEnforced(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("[1, 2, 3, 4]"), &doc))
	require.Len(t, doc.Content, 1)

	arr := From(9, 9, 9)
	err := arr.UnmarshalYAML(doc.Content[0])
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
	assert.Equal(t, []int{9, 9, 9}, arr.Data())
}

func TestYAMLNull(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("~"), &doc))
	require.Len(t, doc.Content, 1)

	arr := From(1)
	require.NoError(t, arr.UnmarshalYAML(doc.Content[0]))
	assert.Equal(t, []int{1}, arr.Data())
}
