package converters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prpm-io/prpm/pkg/canonical"
)

func TestConvertCopilotPlainMarkdown(t *testing.T) {
	pkg := testPackage(
		canonical.MetadataSection{Title: "Project Rules", Description: "How we work"},
		canonical.InstructionsSection{Title: "Behavior", Content: "Be concise."},
	)

	result, err := ConvertCopilot(pkg)
	require.NoError(t, err)

	assert.False(t, strings.HasPrefix(result.Content, "---"))
	assert.Contains(t, result.Content, "# Project Rules\n\nHow we work\n")
	assert.Contains(t, result.Content, "## Behavior\n\nBe concise.")
	assert.Equal(t, 100, result.QualityScore)
}

func TestConvertCopilotSkipsTools(t *testing.T) {
	pkg := testPackage(
		canonical.MetadataSection{Title: "Doc"},
		canonical.ToolsSection{Items: []string{"terminal"}},
	)
	pkg.SourceFormat = canonical.FormatCursor

	result, err := ConvertCopilot(pkg)
	require.NoError(t, err)

	assert.NotContains(t, result.Content, "terminal")
	assert.Contains(t, result.Warnings, "Tools section skipped (cursor-specific)")
	assert.True(t, result.LossyConversion)
	assert.Equal(t, 90, result.QualityScore)
}

func TestConvertClaudeRendersTools(t *testing.T) {
	pkg := testPackage(
		canonical.MetadataSection{Title: "Doc"},
		canonical.ToolsSection{Items: []string{"terminal", "browser"}},
	)

	result, err := ConvertClaude(pkg)
	require.NoError(t, err)

	assert.Contains(t, result.Content, "## Available Tools\n\n- terminal\n- browser\n")
	assert.Empty(t, result.Warnings)
	assert.False(t, result.LossyConversion)
	assert.Equal(t, 100, result.QualityScore)
}

func TestConvertClaudeCustomForeignSkipped(t *testing.T) {
	pkg := testPackage(
		canonical.MetadataSection{Title: "Doc"},
		canonical.CustomSection{OwningEcosystem: "cursor", Content: "cursor-only"},
	)

	result, err := ConvertClaude(pkg)
	require.NoError(t, err)

	assert.NotContains(t, result.Content, "cursor-only")
	assert.Contains(t, result.Warnings, "Custom section skipped (cursor-specific)")
	assert.True(t, result.LossyConversion)
}

func TestConvertClaudeIdempotent(t *testing.T) {
	pkg := testPackage(
		canonical.MetadataSection{Title: "Doc", Description: "desc"},
		canonical.ExamplesSection{Title: "Examples", Items: []canonical.Example{
			{Description: "fine", Code: "x := 1", Language: "go", Good: true},
		}},
	)

	first, err := ConvertClaude(pkg)
	require.NoError(t, err)
	second, err := ConvertClaude(pkg)
	require.NoError(t, err)
	assert.Equal(t, first.Content, second.Content)
}
