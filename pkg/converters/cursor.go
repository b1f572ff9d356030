package converters

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/frontmatter"
	"github.com/prpm-io/prpm/pkg/quality"
)

// CursorOptions overrides the glob list and always-apply flag a parser may
// have carried over in the package metadata. All fields are optional.
type CursorOptions struct {
	Globs       []string
	AlwaysApply bool
}

// ConvertCursor renders a canonical package as a Cursor .mdc rule file. The
// front-matter block holds only the fields Cursor's tooling recognizes
// (description, globs, alwaysApply); the package's own identity fields are
// preserved as "# prpm:" comment lines inside the same block so a round trip
// back into canonical form recovers them.
func ConvertCursor(pkg *canonical.Package, opts *CursorOptions) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = faultResult(canonical.FormatCursor, r), nil
		}
	}()

	var warnings []string

	globs := metadataGlobs(pkg)
	alwaysApply := metadataBool(pkg, "alwaysApply")
	if opts != nil {
		if len(opts.Globs) > 0 {
			globs = opts.Globs
		}
		if opts.AlwaysApply {
			alwaysApply = true
		}
	}
	globs, globWarnings := validGlobs(globs)
	warnings = append(warnings, globWarnings...)

	fields := []frontmatter.Field{
		{Key: "description", Value: pkg.Description},
		{Key: "globs", Value: globs},
		{Key: "alwaysApply", Value: alwaysApply},
	}
	var extensions []frontmatter.Field
	if pkg.Name != "" {
		extensions = append(extensions, frontmatter.Field{Key: "title", Value: pkg.Name})
	}
	if pkg.Version != "" {
		extensions = append(extensions, frontmatter.Field{Key: "version", Value: pkg.Version})
	}
	if len(pkg.Tags) > 0 {
		extensions = append(extensions, frontmatter.Field{Key: "tags", Value: strings.Join(pkg.Tags, ",")})
	}
	if pkg.Author != "" {
		extensions = append(extensions, frontmatter.Field{Key: "author", Value: pkg.Author})
	}

	parts := []string{frontmatter.Render(fields, extensions)}

	for _, sec := range pkg.Content.Sections {
		var b strings.Builder
		switch s := sec.(type) {
		case canonical.MetadataSection:
			renderMetadata(&b, s)
		case canonical.InstructionsSection:
			renderInstructions(&b, s)
		case canonical.RulesSection:
			if err := renderRules(&b, s); err != nil {
				return faultResult(canonical.FormatCursor, err), nil
			}
		case canonical.ExamplesSection:
			renderExamples(&b, s)
		case canonical.PersonaSection:
			renderPersona(&b, s)
		case canonical.ContextSection:
			renderContext(&b, s)
		case canonical.ToolsSection:
			warnings = append(warnings, toolsSkipWarning(pkg))
		case canonical.CustomSection:
			if warning, ok := renderCustom(&b, s, canonical.FormatCursor); !ok {
				warnings = append(warnings, warning)
			}
		default:
			warnings = append(warnings, unknownSectionWarning(sec))
		}
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}

	score, lossy := quality.Evaluate(warnings)
	return &Result{
		Content:         strings.Join(parts, "\n"),
		Format:          canonical.FormatCursor,
		Warnings:        warnings,
		LossyConversion: lossy,
		QualityScore:    score,
	}, nil
}

// validGlobs filters out glob patterns doublestar cannot compile, reporting
// each dropped pattern.
func validGlobs(globs []string) ([]string, []string) {
	var valid, warnings []string
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			warnings = append(warnings, fmt.Sprintf("Glob pattern %q skipped (invalid syntax)", g))
			continue
		}
		valid = append(valid, g)
	}
	return valid, warnings
}
