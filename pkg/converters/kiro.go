package converters

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/frontmatter"
	"github.com/prpm-io/prpm/pkg/quality"
)

// InclusionMode declares when a Kiro steering document is active.
type InclusionMode string

const (
	// InclusionAlways loads the document in every session.
	InclusionAlways InclusionMode = "always"
	// InclusionManual loads the document only on explicit request.
	InclusionManual InclusionMode = "manual"
	// InclusionFileMatch loads the document when an open file matches the
	// configured pattern. Requires KiroOptions.FileMatchPattern.
	InclusionFileMatch InclusionMode = "fileMatch"
)

// KiroOptions is the required configuration for a kiro conversion. Inclusion
// must be set: guessing a default inclusion mode would silently change when
// the steering document activates, so the converter fails fast instead.
type KiroOptions struct {
	Inclusion        InclusionMode
	FileMatchPattern string
	// Domain, when set, overrides the rendered document title.
	Domain string
}

// ConvertKiro renders a canonical package as a Kiro steering document.
// Missing or invalid configuration is the one error that propagates to the
// caller; every other failure mode degrades into warnings and a reduced
// quality score. Persona and tools sections are unconditionally unsupported
// by the steering format.
func ConvertKiro(pkg *canonical.Package, opts *KiroOptions) (result *Result, err error) {
	if opts == nil || opts.Inclusion == "" {
		return nil, errors.New("kiro conversion requires an inclusion mode: always, manual, or fileMatch")
	}
	switch opts.Inclusion {
	case InclusionAlways, InclusionManual:
	case InclusionFileMatch:
		if opts.FileMatchPattern == "" {
			return nil, errors.New("fileMatch inclusion requires fileMatchPattern")
		}
		if !doublestar.ValidatePattern(opts.FileMatchPattern) {
			return nil, errors.Errorf("invalid fileMatchPattern %q", opts.FileMatchPattern)
		}
	default:
		return nil, errors.Errorf("invalid inclusion mode %q: must be always, manual, or fileMatch", opts.Inclusion)
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = faultResult(canonical.FormatKiro, r), nil
		}
	}()

	var warnings []string
	if pkg.Description == "" {
		warnings = append(warnings, "Description skipped (no package description available)")
	}

	fields := []frontmatter.Field{
		{Key: "inclusion", Value: string(opts.Inclusion)},
	}
	if opts.Inclusion == InclusionFileMatch {
		fields = append(fields, frontmatter.Field{Key: "fileMatchPattern", Value: opts.FileMatchPattern})
	}

	parts := []string{frontmatter.Render(fields, nil)}

	for _, sec := range pkg.Content.Sections {
		var b strings.Builder
		switch s := sec.(type) {
		case canonical.MetadataSection:
			if opts.Domain != "" {
				s.Title = opts.Domain
			}
			renderMetadata(&b, s)
		case canonical.InstructionsSection:
			renderInstructions(&b, s)
		case canonical.RulesSection:
			if err := renderRules(&b, s); err != nil {
				return faultResult(canonical.FormatKiro, err), nil
			}
		case canonical.ExamplesSection:
			renderExamples(&b, s)
		case canonical.PersonaSection:
			warnings = append(warnings, "Persona section skipped (kiro steering does not support personas)")
		case canonical.ContextSection:
			renderContext(&b, s)
		case canonical.ToolsSection:
			warnings = append(warnings, "Tools section skipped (kiro steering does not support tool declarations)")
		case canonical.CustomSection:
			if warning, ok := renderCustom(&b, s, canonical.FormatKiro); !ok {
				warnings = append(warnings, warning)
			}
		default:
			warnings = append(warnings, unknownSectionWarning(sec))
		}
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}

	score, lossy := quality.EvaluatePerIssue(warnings)
	return &Result{
		Content:         strings.Join(parts, "\n"),
		Format:          canonical.FormatKiro,
		Warnings:        warnings,
		LossyConversion: lossy,
		QualityScore:    score,
	}, nil
}
