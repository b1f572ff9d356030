package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prpm-io/prpm/pkg/canonical"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    canonical.Format
	}{
		{
			name:    "kiro steering front matter",
			content: "---\ninclusion: always\n---\n\n# Steering\n",
			want:    canonical.FormatKiro,
		},
		{
			name:    "kiro by fileMatchPattern alone",
			content: "---\nfileMatchPattern: \"*.go\"\n---\n\n# Doc\n",
			want:    canonical.FormatKiro,
		},
		{
			name:    "cursor rule front matter",
			content: "---\ndescription: a rule\nglobs: src/**\nalwaysApply: false\n---\n\n# Rule\n",
			want:    canonical.FormatCursor,
		},
		{
			name:    "continue json document",
			content: `{"systemMessage": "You are a helpful assistant"}`,
			want:    canonical.FormatContinue,
		},
		{
			name:    "copilot mentioned in markdown",
			content: "# Copilot Instructions\n\nRules for GitHub Copilot.\n",
			want:    canonical.FormatCopilot,
		},
		{
			name:    "plain markdown defaults to claude",
			content: "# Project Memory\n\n## Build\n\nUse make.\n",
			want:    canonical.FormatClaude,
		},
		{
			name:    "empty input",
			content: "",
			want:    canonical.FormatUnknown,
		},
		{
			name:    "unstructured text",
			content: "just some words without any structure",
			want:    canonical.FormatUnknown,
		},
		{
			name:    "invalid json is not continue",
			content: "{not valid json",
			want:    canonical.FormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.content))
		})
	}
}
