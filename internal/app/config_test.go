package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Selectors: []string{"int"}})
	require.NoError(t, err)
	assert.Equal(t, OutputText, cfg.Output)

	_, err = NewConfig(Config{Output: "yaml"})
	assert.EqualError(t, err, "output must be 'text' or 'json'")

	_, err = NewConfig(Config{Selectors: []string{"int", " "}})
	assert.EqualError(t, err, "type selectors cannot be empty")
}

func TestModuleLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		r    typeReport
		want string
	}{
		{name: "none", r: typeReport{}, want: "-"},
		{name: "same", r: typeReport{Module: "builtins", DeclaringModule: "builtins"}, want: "builtins"},
		{name: "unpublished", r: typeReport{Module: "types"}, want: "types (unpublished)"},
		{name: "private", r: typeReport{DeclaringModule: "posix"}, want: "- (published in posix)"},
		{name: "moved", r: typeReport{Module: "collections", DeclaringModule: "_collections"}, want: "collections (published in _collections)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, moduleLine(&tc.r))
		})
	}
}
