package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"analyse", "analyze"},
		{"anlyze", "analyze"},
		{"metric", "metrics"},
		{"mterics", "metrics"},
		{"cdp", "cpd"},
		{"rule", "rules"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"analyzation", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input))
		})
	}
}

func TestRun(t *testing.T) {
	assert.Equal(t, 1, run(nil))
	assert.Equal(t, 0, run([]string{"version"}))
	assert.Equal(t, 0, run([]string{"help"}))
	assert.Equal(t, 1, run([]string{"analyse"}))
	assert.Equal(t, 0, run([]string{"analyze", "--help"}))
}

func TestRun_Analyze(t *testing.T) {
	t.Setenv("OASLINT_FORMAT", "")
	t.Setenv("OASLINT_DISABLE", "")
	out := filepath.Join(t.TempDir(), "out.json")

	code := run([]string{"analyze", "--format", "json", "-o", out, "../../testdata/petstore-3.0.json"})
	assert.Equal(t, 0, code, "a clean document exits 0")

	code = run([]string{"analyze", "--format", "json", "-o", out, "../../testdata/petstore-2.0.yaml"})
	assert.Equal(t, 1, code, "remaining issues exit 1")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rule": "DefaultResponse"`)

	assert.Equal(t, 1, run([]string{"analyze", "--format", "xml", "../../testdata/petstore-2.0.yaml"}))
}
