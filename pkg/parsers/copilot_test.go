package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prpm-io/prpm/pkg/canonical"
)

func TestParseCopilotRulesWithRationale(t *testing.T) {
	content := "# My Rules\n\nIntro text.\n\n## Guidelines\n\n- Use strict types\n   - Rationale: fewer runtime errors\n"

	pkg := ParseCopilot(content, Metadata{ID: "pkg-1", Name: "my-rules"})
	require.NotNil(t, pkg)
	assert.Equal(t, canonical.FormatCopilot, pkg.SourceFormat)

	sections := pkg.Content.Sections
	require.Len(t, sections, 3)

	meta, ok := sections[0].(canonical.MetadataSection)
	require.True(t, ok)
	assert.Equal(t, "my-rules", meta.Title)

	context, ok := sections[1].(canonical.ContextSection)
	require.True(t, ok)
	assert.Equal(t, "Project Overview", context.Title)
	assert.Contains(t, context.Content, "My Rules")

	rules, ok := sections[2].(canonical.RulesSection)
	require.True(t, ok)
	assert.Equal(t, "Guidelines", rules.Title)
	require.Len(t, rules.Items, 1)
	assert.Equal(t, "Use strict types", rules.Items[0].Content)
	assert.Equal(t, "fewer runtime errors", rules.Items[0].Rationale)
	assert.False(t, rules.Ordered)
}

func TestParseCopilotOrderedRules(t *testing.T) {
	content := `# Doc

## Requirements

1. First requirement
2. Second requirement
   - Why: it matters
   - Example: call ` + "`setup()`" + ` first
`
	pkg := ParseCopilot(content, Metadata{Name: "doc"})

	var rules canonical.RulesSection
	for _, sec := range pkg.Content.Sections {
		if r, ok := sec.(canonical.RulesSection); ok {
			rules = r
		}
	}
	require.Len(t, rules.Items, 2)
	assert.True(t, rules.Ordered)
	assert.Equal(t, "it matters", rules.Items[1].Rationale)
	require.Len(t, rules.Items[1].Examples, 1)
	assert.Equal(t, "setup()", rules.Items[1].Examples[0])
}

func TestParseCopilotExamplePolarity(t *testing.T) {
	content := "# Doc\n\n## Examples\n\n### ❌ Bad: missing assertions\n\n```go\nfunc TestX(t *testing.T) {}\n```\n\n### ✅ Good: assert results\n\n```go\nfunc TestY(t *testing.T) { assert.True(t, true) }\n```\n"

	pkg := ParseCopilot(content, Metadata{Name: "doc"})

	var examples canonical.ExamplesSection
	for _, sec := range pkg.Content.Sections {
		if e, ok := sec.(canonical.ExamplesSection); ok {
			examples = e
		}
	}
	require.Len(t, examples.Items, 2)

	bad := examples.Items[0]
	assert.Equal(t, "missing assertions", bad.Description)
	assert.False(t, bad.Good)
	assert.Equal(t, "go", bad.Language)
	assert.Contains(t, bad.Code, "func TestX")

	good := examples.Items[1]
	assert.Equal(t, "assert results", good.Description)
	assert.True(t, good.Good)
}

func TestParseCopilotCodeOutsideExamples(t *testing.T) {
	content := "# Doc\n\n## Setup Notes\n\nRun the following:\n\n```bash\nmake install\n```\n"

	pkg := ParseCopilot(content, Metadata{Name: "doc"})

	var instructions canonical.InstructionsSection
	for _, sec := range pkg.Content.Sections {
		if ins, ok := sec.(canonical.InstructionsSection); ok {
			instructions = ins
		}
	}
	// The fenced block is re-fenced verbatim inside the free text.
	assert.Contains(t, instructions.Content, "```bash\nmake install\n```")
}

func TestParseCopilotDerivedDescription(t *testing.T) {
	content := "# Title\n\nFirst paragraph line one\nline two.\n\nSecond paragraph is not included.\n"
	pkg := ParseCopilot(content, Metadata{Name: "doc"})
	assert.Equal(t, "First paragraph line one line two.", pkg.Description)
}

func TestParseCopilotDescriptionTruncated(t *testing.T) {
	long := strings.Repeat("word ", 100)
	content := "# Title\n\n" + long + "\n"
	pkg := ParseCopilot(content, Metadata{Name: "doc"})
	assert.Len(t, []rune(pkg.Description), 200)
}

func TestParseCopilotSuppliedDescriptionWins(t *testing.T) {
	content := "# Title\n\nBody paragraph.\n"
	pkg := ParseCopilot(content, Metadata{Name: "doc", Description: "supplied"})
	assert.Equal(t, "supplied", pkg.Description)
}

func TestParseCopilotGracefulDegradation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"front matter only", "---\ndescription: just this\n---\n"},
		{"unclosed front matter", "---\ndescription: never closed\n"},
		{"unmatched fence", "# Doc\n\n## Notes\n\n```go\nnever closed\n"},
		{"plain text no headings", "no structure at all, just text\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := ParseCopilot(tt.content, Metadata{Name: "doc"})
			require.NotNil(t, pkg)
			require.NotEmpty(t, pkg.Content.Sections)
			_, ok := pkg.Content.Sections[0].(canonical.MetadataSection)
			assert.True(t, ok)
		})
	}
}

func TestParseCopilotEmptyRulesHeadingDowngrades(t *testing.T) {
	// A heading classified as rules but with no list items must not produce
	// an empty rules section.
	content := "# Doc\n\n## Guidelines\n\nProse only, no list items here.\n"
	pkg := ParseCopilot(content, Metadata{Name: "doc"})

	for _, sec := range pkg.Content.Sections {
		if _, ok := sec.(canonical.RulesSection); ok {
			t.Fatal("expected no rules section for a heading without items")
		}
	}
}

func TestParseCopilotTagsUnionAndCap(t *testing.T) {
	content := "# Doc\n\nWe use typescript javascript python rust java react here.\n"
	pkg := ParseCopilot(content, Metadata{Name: "doc", Tags: []string{"custom"}})

	assert.Contains(t, pkg.Tags, "custom")
	// 1 supplied + at most 5 inferred.
	assert.LessOrEqual(t, len(pkg.Tags), 6)
}

func TestParseCopilotTaxonomyConstant(t *testing.T) {
	pkg := ParseCopilot("# Doc\n", Metadata{Name: "doc"})
	assert.Equal(t, "copilot", pkg.Metadata["ecosystem"])
	assert.Equal(t, "project-instructions", pkg.Metadata["kind"])
}

func TestParseCopilotGeneratesID(t *testing.T) {
	pkg := ParseCopilot("# Doc\n", Metadata{Name: "doc"})
	assert.NotEmpty(t, pkg.ID)

	withID := ParseCopilot("# Doc\n", Metadata{ID: "fixed", Name: "doc"})
	assert.Equal(t, "fixed", withID.ID)
}
