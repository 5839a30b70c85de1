package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessAndFailure(t *testing.T) {
	res, err := Success(map[string]interface{}{"result": 1.0})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Nil(t, res.Error)

	res, err = Failuref("unknown unit: %s", "parsec")
	require.NoError(t, err)
	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, "unknown unit: parsec", *res.Error)
}

func TestGetNumber(t *testing.T) {
	params := map[string]interface{}{
		"f":   2.5,
		"i":   3,
		"s":   " 4.5 ",
		"bad": "abc",
		"b":   true,
	}

	tests := []struct {
		key  string
		want float64
		ok   bool
	}{
		{"f", 2.5, true},
		{"i", 3, true},
		{"s", 4.5, true},
		{"bad", 0, false},
		{"b", 0, false},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := GetNumber(params, tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetStringMap(t *testing.T) {
	params := map[string]interface{}{
		"bindings": map[string]interface{}{"a": 2.0, "b": "-3", "c": 7},
		"nested":   map[string]interface{}{"a": []interface{}{1}},
	}

	got, ok := GetStringMap(params, "bindings")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"a": "2", "b": "-3", "c": "7"}, got)

	_, ok = GetStringMap(params, "nested")
	assert.False(t, ok)

	_, ok = GetStringMap(params, "missing")
	assert.False(t, ok)
}
