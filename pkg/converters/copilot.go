package converters

import (
	"strings"

	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/quality"
)

// ConvertCopilot renders a canonical package as a GitHub Copilot
// project-instructions document: plain heading-structured markdown with no
// front matter. Tool declarations have no Copilot equivalent and are skipped.
func ConvertCopilot(pkg *canonical.Package) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = faultResult(canonical.FormatCopilot, r), nil
		}
	}()

	var warnings []string
	var parts []string

	for _, sec := range pkg.Content.Sections {
		var b strings.Builder
		switch s := sec.(type) {
		case canonical.MetadataSection:
			renderMetadata(&b, s)
		case canonical.InstructionsSection:
			renderInstructions(&b, s)
		case canonical.RulesSection:
			if err := renderRules(&b, s); err != nil {
				return faultResult(canonical.FormatCopilot, err), nil
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
			if warning, ok := renderCustom(&b, s, canonical.FormatCopilot); !ok {
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
		Format:          canonical.FormatCopilot,
		Warnings:        warnings,
		LossyConversion: lossy,
		QualityScore:    score,
	}, nil
}
