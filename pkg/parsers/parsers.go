// Package parsers turns native editor files (Copilot project instructions,
// Cursor rules, Kiro steering documents, CLAUDE.md files) into canonical
// packages. Parsing is a single forward scan over lines and never fails:
// malformed input degrades to a document carrying only its metadata section.
package parsers

import (
	"strings"

	"github.com/google/uuid"

	"github.com/prpm-io/prpm/pkg/canonical"
)

// maxInferredTags caps how many technology tags a body scan may contribute
// on top of the caller-supplied ones.
const maxInferredTags = 5

// descriptionLimit bounds descriptions derived from document bodies.
const descriptionLimit = 200

// Metadata is the package identity supplied by the caller alongside the raw
// document text. Parsers fill in what is missing (a generated id, a derived
// description) but never override what the caller provides.
type Metadata struct {
	ID          string
	Name        string
	Version     string
	Description string
	Author      string
	Tags        []string
}

// newPackage assembles a canonical package from parsed sections, applying
// identity defaults. sections must already start with the metadata section.
func newPackage(meta Metadata, source canonical.Format, description string, tags []string, sections []canonical.Section, bag map[string]any) *canonical.Package {
	id := meta.ID
	if id == "" {
		id = uuid.NewString()
	}
	version := meta.Version
	if version == "" {
		version = "1.0.0"
	}
	name := meta.Name
	if name == "" {
		name = id
	}

	return &canonical.Package{
		ID:           id,
		Version:      version,
		Name:         name,
		Description:  description,
		Author:       meta.Author,
		Tags:         tags,
		SourceFormat: source,
		Metadata:     bag,
		Content: canonical.Content{
			Format:   canonical.FormatCanonical,
			Version:  canonical.ContentVersion,
			Sections: sections,
		},
	}
}

// deriveDescription extracts the first paragraph after the document's
// top-level heading: non-blank lines are concatenated until the paragraph
// ends or the next heading starts, then truncated to descriptionLimit runes.
func deriveDescription(body string) string {
	lines := strings.Split(body, "\n")
	started := false
	collecting := false
	var parts []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !started {
			if strings.HasPrefix(trimmed, "# ") {
				started = true
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			break
		}
		if trimmed == "" {
			if collecting {
				break
			}
			continue
		}
		collecting = true
		parts = append(parts, trimmed)
	}

	description := strings.Join(parts, " ")
	if runes := []rune(description); len(runes) > descriptionLimit {
		description = string(runes[:descriptionLimit])
	}
	return description
}

// headingText strips the leading hash markers from a heading line.
func headingText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}
