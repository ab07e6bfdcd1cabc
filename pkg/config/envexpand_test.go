package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_TEST_KEY", "sk-secret")
	t.Setenv("EXPAND_TEST_HOST", "db.internal")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single variable",
			input: "api_key: {{.EXPAND_TEST_KEY}}",
			want:  "api_key: sk-secret",
		},
		{
			name:  "multiple variables on one line",
			input: "url: {{.EXPAND_TEST_HOST}}:{{.EXPAND_TEST_KEY}}",
			want:  "url: db.internal:sk-secret",
		},
		{
			name:  "missing variable expands to empty",
			input: "value: {{.EXPAND_TEST_DOES_NOT_EXIST}}",
			want:  "value: ",
		},
		{
			name:  "dollar signs pass through untouched",
			input: `pattern: "^secret.*$"`,
			want:  `pattern: "^secret.*$"`,
		},
		{
			name:  "no template syntax is a no-op",
			input: "plain: value",
			want:  "plain: value",
		},
		{
			name:  "malformed template returns original",
			input: "broken: {{.UNCLOSED",
			want:  "broken: {{.UNCLOSED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}
