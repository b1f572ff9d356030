package parsers

import (
	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/frontmatter"
	"github.com/prpm-io/prpm/pkg/heuristics"
)

// ParseCopilot parses a GitHub Copilot project-instructions document
// (heading-structured markdown, no front matter) into a canonical package.
// The returned package always carries exactly one metadata section, first.
func ParseCopilot(content string, meta Metadata) *canonical.Package {
	fm, body := frontmatter.Parse(content)

	description := meta.Description
	if description == "" {
		description, _ = fm["description"].(string)
	}
	if description == "" {
		description = deriveDescription(body)
	}

	sections := []canonical.Section{
		canonical.MetadataSection{Title: displayTitle(meta), Description: description},
	}
	sections = append(sections, scanBody(body)...)

	tags := heuristics.MergeTags(meta.Tags, heuristics.InferTags(body, maxInferredTags, "copilot"))

	// The editor-facing taxonomy is a parser constant, never inferred.
	bag := map[string]any{
		"ecosystem": "copilot",
		"kind":      "project-instructions",
	}
	return newPackage(meta, canonical.FormatCopilot, description, tags, sections, bag)
}

// displayTitle picks the document title shown in the metadata section.
func displayTitle(meta Metadata) string {
	if meta.Name != "" {
		return meta.Name
	}
	return "Untitled"
}
