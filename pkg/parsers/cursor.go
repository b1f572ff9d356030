package parsers

import (
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/frontmatter"
	"github.com/prpm-io/prpm/pkg/heuristics"
)

// cursorFrontMatter mirrors the fields Cursor's own tooling reads from a
// .mdc rule file. Globs stays untyped because authors write both a YAML list
// and a comma-separated string.
type cursorFrontMatter struct {
	Description string `mapstructure:"description"`
	Globs       any    `mapstructure:"globs"`
	AlwaysApply bool   `mapstructure:"alwaysApply"`
}

// ParseCursor parses a Cursor .mdc rule file. Front-matter fields Cursor
// recognizes land in the package's passthrough metadata; "# prpm:" comment
// lines written by the cursor converter are recovered so a converted file
// round-trips its title, version, tags and author.
func ParseCursor(content string, meta Metadata) *canonical.Package {
	raw, body := frontmatter.Parse(content)

	var fm cursorFrontMatter
	if raw != nil {
		// Best effort: a front-matter block that does not decode leaves the
		// zero value, which reads as "no recognized fields".
		_ = mapstructure.Decode(raw, &fm)
	}

	if ext := frontmatter.ExtensionFields(content); ext != nil {
		if meta.Name == "" {
			meta.Name = ext["title"]
		}
		if meta.Version == "" {
			meta.Version = ext["version"]
		}
		if meta.Author == "" {
			meta.Author = ext["author"]
		}
		if len(meta.Tags) == 0 && ext["tags"] != "" {
			meta.Tags = splitList(ext["tags"])
		}
	}

	description := meta.Description
	if description == "" {
		description = fm.Description
	}
	if description == "" {
		description = deriveDescription(body)
	}

	sections := []canonical.Section{
		canonical.MetadataSection{Title: displayTitle(meta), Description: description},
	}
	sections = append(sections, scanBody(body)...)

	tags := heuristics.MergeTags(meta.Tags, heuristics.InferTags(body, maxInferredTags, "cursor"))

	bag := map[string]any{
		"ecosystem": "cursor",
		"kind":      "rule",
	}
	if globs := normalizeGlobs(fm.Globs); len(globs) > 0 {
		bag["globs"] = globs
	}
	if fm.AlwaysApply {
		bag["alwaysApply"] = true
	}
	return newPackage(meta, canonical.FormatCursor, description, tags, sections, bag)
}

// normalizeGlobs accepts a YAML list or a comma-separated string.
func normalizeGlobs(v any) []string {
	switch globs := v.(type) {
	case string:
		return splitList(globs)
	case []any:
		var out []string
		for _, g := range globs {
			if s, ok := g.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case []string:
		return globs
	default:
		return nil
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
