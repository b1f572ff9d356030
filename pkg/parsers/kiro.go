package parsers

import (
	"github.com/mitchellh/mapstructure"

	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/frontmatter"
	"github.com/prpm-io/prpm/pkg/heuristics"
)

// kiroFrontMatter mirrors the steering fields Kiro reads from a document in
// .kiro/steering.
type kiroFrontMatter struct {
	Inclusion        string `mapstructure:"inclusion"`
	FileMatchPattern string `mapstructure:"fileMatchPattern"`
	Domain           string `mapstructure:"domain"`
}

// ParseKiro parses a Kiro steering document. The inclusion mode, file-match
// pattern and domain are passthrough metadata: the canonical model does not
// interpret them, it only guarantees they survive into a kiro-targeted
// conversion.
func ParseKiro(content string, meta Metadata) *canonical.Package {
	raw, body := frontmatter.Parse(content)

	var fm kiroFrontMatter
	if raw != nil {
		_ = mapstructure.Decode(raw, &fm)
	}

	description := meta.Description
	if description == "" {
		description = deriveDescription(body)
	}

	sections := []canonical.Section{
		canonical.MetadataSection{Title: displayTitle(meta), Description: description},
	}
	sections = append(sections, scanBody(body)...)

	tags := heuristics.MergeTags(meta.Tags, heuristics.InferTags(body, maxInferredTags, "kiro"))

	bag := map[string]any{
		"ecosystem": "kiro",
		"kind":      "steering",
	}
	if fm.Inclusion != "" {
		bag["inclusion"] = fm.Inclusion
	}
	if fm.FileMatchPattern != "" {
		bag["fileMatchPattern"] = fm.FileMatchPattern
	}
	if fm.Domain != "" {
		bag["domain"] = fm.Domain
	}
	return newPackage(meta, canonical.FormatKiro, description, tags, sections, bag)
}
