package parsers

import (
	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/heuristics"
)

// ParseClaude parses a CLAUDE.md memory file: plain heading-structured
// markdown with no front matter.
func ParseClaude(content string, meta Metadata) *canonical.Package {
	description := meta.Description
	if description == "" {
		description = deriveDescription(content)
	}

	sections := []canonical.Section{
		canonical.MetadataSection{Title: displayTitle(meta), Description: description},
	}
	sections = append(sections, scanBody(content)...)

	tags := heuristics.MergeTags(meta.Tags, heuristics.InferTags(content, maxInferredTags, "claude"))

	bag := map[string]any{
		"ecosystem": "claude",
		"kind":      "instructions",
	}
	return newPackage(meta, canonical.FormatClaude, description, tags, sections, bag)
}
