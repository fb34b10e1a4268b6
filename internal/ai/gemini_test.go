// README: Response cleanup helper tests.
package ai

import (
	"context"
	"testing"
)

func TestCleanFencedString(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `["cafe"]`, `["cafe"]`},
		{"json fence", "```json\n[\"cafe\"]\n```", `["cafe"]`},
		{"bare fence", "```\n[\"cafe\"]\n```", `["cafe"]`},
		{"surrounding whitespace", "  hello  ", "hello"},
	}
	for _, tc := range cases {
		if got := cleanFencedString(tc.input); got != tc.want {
			t.Errorf("%s: cleanFencedString(%q) = %q, want %q", tc.name, tc.input, got, tc.want)
		}
	}
}

func TestNewGeminiProvider_MissingKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), "  "); err == nil {
		t.Error("expected an error for a blank api key")
	}
}
