package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	content := `---
description: A test rule
alwaysApply: true
---

# Body

Some text.
`
	meta, body := Parse(content)
	require.NotNil(t, meta)
	assert.Equal(t, "A test rule", meta["description"])
	assert.Equal(t, true, meta["alwaysApply"])
	assert.True(t, strings.HasPrefix(body, "# Body"))
}

func TestParseNoFrontMatter(t *testing.T) {
	content := "# Just a document\n\nNo front matter here.\n"
	meta, body := Parse(content)
	assert.Nil(t, meta)
	assert.Equal(t, content, body)
}

func TestParseMalformedDegradesGracefully(t *testing.T) {
	content := "---\n: [unbalanced\n  bad yaml: ::\n---\n\nBody text.\n"
	meta, body := Parse(content)
	assert.Nil(t, meta)
	assert.Equal(t, content, body)
}

func TestParseUnclosedFrontMatter(t *testing.T) {
	content := "---\ndescription: never closed\n"
	meta, body := Parse(content)
	assert.Nil(t, meta)
	assert.Equal(t, content, body)
}

func TestExtensionFields(t *testing.T) {
	content := `---
description: A rule
# prpm:title My Rule
# prpm:version 2.1.0
# prpm:tags go,testing
---

Body.
`
	fields := ExtensionFields(content)
	require.NotNil(t, fields)
	assert.Equal(t, "My Rule", fields["title"])
	assert.Equal(t, "2.1.0", fields["version"])
	assert.Equal(t, "go,testing", fields["tags"])
}

func TestExtensionFieldsAbsent(t *testing.T) {
	assert.Nil(t, ExtensionFields("# No front matter\n"))
	assert.Nil(t, ExtensionFields("---\ndescription: plain\n---\nbody\n"))
}

func TestRender(t *testing.T) {
	out := Render(
		[]Field{
			{Key: "description", Value: "Use strict TypeScript"},
			{Key: "globs", Value: []string{"src/**/*.ts", "*.tsx"}},
			{Key: "alwaysApply", Value: false},
		},
		[]Field{
			{Key: "title", Value: "TS Rules"},
			{Key: "version", Value: "1.0.0"},
		},
	)

	assert.Equal(t, `---
description: Use strict TypeScript
globs: src/**/*.ts,*.tsx
alwaysApply: false
# prpm:title TS Rules
# prpm:version 1.0.0
---
`, out)
}

// A rendered block must parse back: the recognized fields through the YAML
// path and the extension fields through the comment path.
func TestRenderRoundTrip(t *testing.T) {
	block := Render(
		[]Field{{Key: "description", Value: "has: a colon"}},
		[]Field{{Key: "author", Value: "someone"}},
	)
	doc := block + "\nbody\n"

	meta, _ := Parse(doc)
	require.NotNil(t, meta)
	assert.Equal(t, "has: a colon", meta["description"])

	ext := ExtensionFields(doc)
	require.NotNil(t, ext)
	assert.Equal(t, "someone", ext["author"])
}
