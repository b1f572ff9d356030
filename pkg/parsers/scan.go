package parsers

import (
	"regexp"
	"strings"

	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/heuristics"
)

var (
	ordinalMarker = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)
	inlineCode    = regexp.MustCompile("`([^`]+)`")
)

// bodyScanner is the line-scanning state threaded through a single forward
// pass over a document body. It tracks the section being accumulated, the
// in-code-block flag and the pending example, and resets all of it on every
// section boundary.
type bodyScanner struct {
	sections []canonical.Section

	kind  canonical.SectionKind
	title string
	text  []string

	rules   []canonical.Rule
	ordered bool
	sawRule bool

	examples []canonical.Example
	pending  *canonical.Example

	inCode   bool
	codeLang string
	code     []string
}

// scanBody parses a markdown body (front matter already stripped) into
// canonical sections. It never fails; unrecognized structure is folded into
// the active section's free text, and text before the first heading is
// dropped.
func scanBody(body string) []canonical.Section {
	s := &bodyScanner{}
	lines := strings.Split(body, "\n")

	for i, line := range lines {
		if s.inCode {
			s.codeLine(line)
			continue
		}

		switch {
		case strings.HasPrefix(line, "```"):
			s.inCode = true
			s.codeLang = strings.TrimSpace(strings.TrimPrefix(line, "```"))
		case strings.HasPrefix(line, "### "):
			s.exampleHeading(headingText(line))
		case strings.HasPrefix(line, "## "):
			s.close()
			title := headingText(line)
			s.open(heuristics.InferSectionKind(title, lines[i+1:]), title)
		case strings.HasPrefix(line, "# "):
			s.close()
			s.open(canonical.KindContext, "Project Overview")
			s.text = append(s.text, headingText(line))
		default:
			s.bodyLine(line)
		}
	}

	s.close()
	return s.sections
}

func (s *bodyScanner) open(kind canonical.SectionKind, title string) {
	s.kind = kind
	s.title = title
}

// codeLine handles a line while inside a fenced block.
func (s *bodyScanner) codeLine(line string) {
	if !strings.HasPrefix(line, "```") {
		s.code = append(s.code, line)
		return
	}

	code := strings.Join(s.code, "\n")
	if s.kind == canonical.KindExamples && s.pending != nil {
		s.pending.Code = code
		s.pending.Language = s.codeLang
		s.examples = append(s.examples, *s.pending)
		s.pending = nil
	} else {
		fence := "```" + s.codeLang + "\n" + code + "\n```"
		s.text = append(s.text, fence)
	}
	s.inCode = false
	s.codeLang = ""
	s.code = nil
}

// exampleHeading starts a pending example inside an examples section. In any
// other section a ### heading is ordinary free text.
func (s *bodyScanner) exampleHeading(title string) {
	if s.kind != canonical.KindExamples {
		s.text = append(s.text, "### "+title)
		return
	}
	if s.pending != nil {
		s.examples = append(s.examples, *s.pending)
	}
	description, good := heuristics.ExamplePolarity(title)
	s.pending = &canonical.Example{Description: description, Good: good}
}

// bodyLine handles any non-heading, non-fence line.
func (s *bodyScanner) bodyLine(line string) {
	if s.kind == "" {
		// Plain text before the first heading is dropped.
		return
	}

	if s.kind == canonical.KindRules && s.ruleLine(line) {
		return
	}

	trimmed := strings.TrimRight(line, " \t")
	if trimmed == "" {
		if len(s.text) > 0 {
			s.text = append(s.text, "")
		}
		return
	}
	s.text = append(s.text, trimmed)
}

// ruleLine handles list items and sub-bullets inside a rules section. It
// reports whether the line was consumed.
func (s *bodyScanner) ruleLine(line string) bool {
	if strings.HasPrefix(line, "   - ") && len(s.rules) > 0 {
		s.ruleDetail(strings.TrimSpace(line[5:]))
		return true
	}
	if item, ok := strings.CutPrefix(line, "- "); ok {
		if !s.sawRule {
			s.ordered = false
			s.sawRule = true
		}
		s.rules = append(s.rules, canonical.Rule{Content: strings.TrimSpace(item)})
		return true
	}
	if m := ordinalMarker.FindStringSubmatch(line); m != nil {
		if !s.sawRule {
			s.ordered = true
			s.sawRule = true
		}
		s.rules = append(s.rules, canonical.Rule{Content: strings.TrimSpace(m[2])})
		return true
	}
	return false
}

// ruleDetail attaches a sub-bullet to the most recently added rule: a
// "Rationale:"/"Why:" prefix sets the rationale, an "Example:" prefix adds to
// the rule's examples (with inline back-ticked code extracted), and anything
// else continues the rule's content.
func (s *bodyScanner) ruleDetail(item string) {
	last := &s.rules[len(s.rules)-1]
	lower := strings.ToLower(item)

	switch {
	case strings.HasPrefix(lower, "rationale:"):
		last.Rationale = strings.TrimSpace(item[len("rationale:"):])
	case strings.HasPrefix(lower, "why:"):
		last.Rationale = strings.TrimSpace(item[len("why:"):])
	case strings.HasPrefix(lower, "example:"):
		example := strings.TrimSpace(item[len("example:"):])
		if m := inlineCode.FindStringSubmatch(example); m != nil {
			example = m[1]
		}
		last.Examples = append(last.Examples, example)
	default:
		last.Content += " " + item
	}
}

// close emits the section being accumulated, if any, and resets the scanner
// for the next one. A rules section that collected no items degrades to
// instructions; an examples section with no examples does the same.
func (s *bodyScanner) close() {
	if s.inCode {
		// Unmatched fence at a section boundary: keep what we saw as text.
		fence := "```" + s.codeLang + "\n" + strings.Join(s.code, "\n")
		s.text = append(s.text, fence)
		s.inCode = false
		s.codeLang = ""
		s.code = nil
	}
	if s.pending != nil {
		s.examples = append(s.examples, *s.pending)
		s.pending = nil
	}

	switch s.kind {
	case "":
	case canonical.KindContext:
		s.sections = append(s.sections, canonical.ContextSection{Title: s.title, Content: s.joinText()})
	case canonical.KindRules:
		if len(s.rules) > 0 {
			s.sections = append(s.sections, canonical.RulesSection{Title: s.title, Items: s.rules, Ordered: s.ordered})
		} else {
			s.sections = append(s.sections, canonical.InstructionsSection{Title: s.title, Content: s.joinText()})
		}
	case canonical.KindExamples:
		if len(s.examples) > 0 {
			s.sections = append(s.sections, canonical.ExamplesSection{Title: s.title, Items: s.examples})
		} else {
			s.sections = append(s.sections, canonical.InstructionsSection{Title: s.title, Content: s.joinText()})
		}
	default:
		s.sections = append(s.sections, canonical.InstructionsSection{Title: s.title, Content: s.joinText()})
	}

	s.kind = ""
	s.title = ""
	s.text = nil
	s.rules = nil
	s.ordered = false
	s.sawRule = false
	s.examples = nil
}

func (s *bodyScanner) joinText() string {
	return strings.TrimSpace(strings.Join(s.text, "\n"))
}
