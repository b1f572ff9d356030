package converters

import (
	"fmt"
	"strings"

	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/quality"
)

// ConvertClaude renders a canonical package as a CLAUDE.md memory file.
// Plain markdown can hold everything the canonical model expresses, so tool
// declarations render as a capability list instead of being dropped.
func ConvertClaude(pkg *canonical.Package) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = faultResult(canonical.FormatClaude, r), nil
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
				return faultResult(canonical.FormatClaude, err), nil
			}
		case canonical.ExamplesSection:
			renderExamples(&b, s)
		case canonical.PersonaSection:
			renderPersona(&b, s)
		case canonical.ContextSection:
			renderContext(&b, s)
		case canonical.ToolsSection:
			renderToolList(&b, s)
		case canonical.CustomSection:
			if warning, ok := renderCustom(&b, s, canonical.FormatClaude); !ok {
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
		Format:          canonical.FormatClaude,
		Warnings:        warnings,
		LossyConversion: lossy,
		QualityScore:    score,
	}, nil
}

func renderToolList(b *strings.Builder, sec canonical.ToolsSection) {
	b.WriteString("## Available Tools\n\n")
	for _, tool := range sec.Items {
		fmt.Fprintf(b, "- %s\n", tool)
	}
}
