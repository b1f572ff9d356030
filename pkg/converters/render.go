package converters

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/prpm-io/prpm/pkg/canonical"
)

// The renderers below encode the markdown conventions shared by every
// markdown-emitting target. Each converter keeps its own exhaustive section
// switch and calls into these, so a new section kind forces an explicit
// render-or-skip decision at every converter site.

func renderMetadata(b *strings.Builder, sec canonical.MetadataSection) {
	title := sec.Title
	if title == "" {
		title = "Untitled"
	}
	if sec.Icon != "" {
		title = sec.Icon + " " + title
	}
	fmt.Fprintf(b, "# %s\n", title)
	if sec.Description != "" {
		fmt.Fprintf(b, "\n%s\n", sec.Description)
	}
}

func renderInstructions(b *strings.Builder, sec canonical.InstructionsSection) {
	fmt.Fprintf(b, "## %s\n\n", sec.Title)
	if sec.Priority == canonical.PriorityHigh {
		b.WriteString("**Important:** ")
	}
	b.WriteString(sec.Content)
	b.WriteString("\n")
}

// renderRules renders each rule as a numbered or bulleted line per the
// section's ordered flag, with an indented italic rationale line and indented
// example lines. An empty item list is an upstream parser defect and is
// surfaced as an internal fault rather than rendered as an empty section.
func renderRules(b *strings.Builder, sec canonical.RulesSection) error {
	if len(sec.Items) == 0 {
		return errors.Errorf("rules section %q has no items", sec.Title)
	}

	fmt.Fprintf(b, "## %s\n\n", sec.Title)
	for i, rule := range sec.Items {
		if sec.Ordered {
			fmt.Fprintf(b, "%d. %s\n", i+1, rule.Content)
		} else {
			fmt.Fprintf(b, "- %s\n", rule.Content)
		}
		if rule.Rationale != "" {
			fmt.Fprintf(b, "   *%s*\n", rule.Rationale)
		}
		for _, example := range rule.Examples {
			fmt.Fprintf(b, "   Example: `%s`\n", example)
		}
	}
	return nil
}

func renderExamples(b *strings.Builder, sec canonical.ExamplesSection) {
	fmt.Fprintf(b, "## %s\n", sec.Title)
	for _, ex := range sec.Items {
		marker := "✅ Good:"
		if !ex.Good {
			marker = "❌ Bad:"
		}
		fmt.Fprintf(b, "\n### %s %s\n\n", marker, ex.Description)
		fmt.Fprintf(b, "```%s\n%s\n```\n", ex.Language, ex.Code)
	}
}

func renderPersona(b *strings.Builder, sec canonical.PersonaSection) {
	b.WriteString("## Role\n\n")

	identity := sec.Role
	if sec.Name != "" {
		identity = sec.Name + " - " + sec.Role
	}
	if sec.Icon != "" {
		identity = sec.Icon + " " + identity
	}
	b.WriteString(identity)
	b.WriteString("\n")

	if len(sec.Style) > 0 {
		fmt.Fprintf(b, "\n**Style:** %s\n", strings.Join(sec.Style, ", "))
	}
	if len(sec.Expertise) > 0 {
		b.WriteString("\n**Expertise:**\n")
		for _, e := range sec.Expertise {
			fmt.Fprintf(b, "- %s\n", e)
		}
	}
}

func renderContext(b *strings.Builder, sec canonical.ContextSection) {
	fmt.Fprintf(b, "## %s\n\n%s\n", sec.Title, sec.Content)
}

// renderCustom emits the raw content when the section is untagged or owned
// by the target ecosystem; otherwise it reports the skip warning.
func renderCustom(b *strings.Builder, sec canonical.CustomSection, target canonical.Format) (string, bool) {
	if sec.OwningEcosystem != "" && sec.OwningEcosystem != string(target) {
		return fmt.Sprintf("Custom section skipped (%s-specific)", sec.OwningEcosystem), false
	}
	b.WriteString(sec.Content)
	b.WriteString("\n")
	return "", true
}

// toolsSkipWarning names the ecosystem the tool declarations came from.
func toolsSkipWarning(pkg *canonical.Package) string {
	return fmt.Sprintf("Tools section skipped (%s-specific)", pkg.SourceFormat)
}

func unknownSectionWarning(sec canonical.Section) string {
	return fmt.Sprintf("Unrecognized section kind %q skipped", sec.Kind())
}
