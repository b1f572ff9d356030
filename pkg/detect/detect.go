// Package detect guesses which editor format a piece of text is already in.
// It is a convenience classifier for auto-sensing, not a validator: the
// heuristics (front-matter delimiters, a JSON object literal, markdown
// headings) are allowed to be wrong on adversarial input.
package detect

import (
	"encoding/json"
	"strings"

	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/frontmatter"
)

// Detect classifies raw document text as one of the supported formats, or
// FormatUnknown when nothing matches.
func Detect(content string) canonical.Format {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return canonical.FormatUnknown
	}

	// A JSON object literal is Continue's system-message document.
	if strings.HasPrefix(trimmed, "{") && json.Valid([]byte(trimmed)) {
		return canonical.FormatContinue
	}

	if fm, _ := frontmatter.Parse(content); fm != nil {
		if _, ok := fm["inclusion"]; ok {
			return canonical.FormatKiro
		}
		if _, ok := fm["fileMatchPattern"]; ok {
			return canonical.FormatKiro
		}
		// Any other front-matter rule document reads as a Cursor rule; the
		// cursor keys (description, globs, alwaysApply) are all optional.
		return canonical.FormatCursor
	}

	if hasHeading(content) {
		// Heading-structured markdown without front matter is ambiguous
		// between Copilot instructions and CLAUDE.md; claude is the broader
		// format so it wins the tie.
		if strings.Contains(strings.ToLower(content), "copilot") {
			return canonical.FormatCopilot
		}
		return canonical.FormatClaude
	}

	return canonical.FormatUnknown
}

func hasHeading(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") || strings.HasPrefix(trimmed, "## ") {
			return true
		}
	}
	return false
}
