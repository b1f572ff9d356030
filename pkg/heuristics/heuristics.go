// Package heuristics classifies loosely structured markdown into canonical
// section kinds. Headings are matched against ordered keyword sets first;
// when no keyword matches, a bounded structural lookahead decides. The rules
// are deliberately an explicit first-match-wins list rather than a scoring
// model so that ambiguous headings ("Examples of Rules") resolve predictably.
package heuristics

import (
	"regexp"
	"sort"
	"strings"

	"github.com/prpm-io/prpm/pkg/canonical"
)

// LookaheadLines bounds the structural lookahead used when a heading's text
// alone does not identify the section kind.
const LookaheadLines = 4

var exampleKeywords = []string{"example", "sample", "usage"}

var ruleKeywords = []string{"rule", "guideline", "standard", "convention", "requirement", "must", "should"}

var contextKeywords = []string{"context", "background", "overview", "about", "introduction"}

var listMarker = regexp.MustCompile(`^\s*(-\s|\d+\.\s)`)

// InferSectionKind maps a heading to a canonical section kind. Keyword sets
// are consulted in priority order (examples before rules before context); if
// none match, up to LookaheadLines of following content are inspected: a list
// marker suggests rules, a sub-heading or code fence suggests examples, and
// anything else defaults to instructions.
func InferSectionKind(title string, lookahead []string) canonical.SectionKind {
	lower := strings.ToLower(title)

	for _, kw := range exampleKeywords {
		if strings.Contains(lower, kw) {
			return canonical.KindExamples
		}
	}
	for _, kw := range ruleKeywords {
		if strings.Contains(lower, kw) {
			return canonical.KindRules
		}
	}
	for _, kw := range contextKeywords {
		if strings.Contains(lower, kw) {
			return canonical.KindContext
		}
	}

	if len(lookahead) > LookaheadLines {
		lookahead = lookahead[:LookaheadLines]
	}
	for _, line := range lookahead {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if listMarker.MatchString(line) {
			return canonical.KindRules
		}
		if strings.HasPrefix(trimmed, "###") || strings.HasPrefix(trimmed, "```") {
			return canonical.KindExamples
		}
		break
	}
	return canonical.KindInstructions
}

var goodMarkers = []string{"✅", "preferred", "do:"}

var badMarkers = []string{"❌", "avoid", "don't:", "dont:"}

// ExamplePolarity strips a leading good/bad marker from an example heading
// and reports the example's polarity. Absence of any marker means "good".
func ExamplePolarity(heading string) (string, bool) {
	trimmed := strings.TrimSpace(heading)
	lower := strings.ToLower(trimmed)

	for _, m := range badMarkers {
		if strings.HasPrefix(lower, m) {
			return stripMarker(trimmed, m), false
		}
	}
	for _, m := range goodMarkers {
		if strings.HasPrefix(lower, m) {
			return stripMarker(trimmed, m), true
		}
	}
	return trimmed, true
}

// stripMarker removes the marker plus any separator punctuation that follows
// it ("❌ Bad: missing assertions" -> "missing assertions").
func stripMarker(heading, marker string) string {
	rest := strings.TrimSpace(heading[len(marker):])
	for _, label := range []string{"bad:", "good:", "bad", "good"} {
		lower := strings.ToLower(rest)
		if strings.HasPrefix(lower, label) {
			rest = strings.TrimSpace(rest[len(label):])
			break
		}
	}
	return strings.TrimPrefix(rest, ": ")
}

// tagVocabulary maps technology keywords found in document bodies to the tag
// they imply. Lookup is case-insensitive against whole words.
var tagVocabulary = map[string]string{
	"typescript": "typescript",
	"javascript": "javascript",
	"python":     "python",
	"golang":     "go",
	"rust":       "rust",
	"java":       "java",
	"react":      "react",
	"vue":        "vue",
	"angular":    "angular",
	"node":       "nodejs",
	"nodejs":     "nodejs",
	"django":     "django",
	"rails":      "rails",
	"docker":     "docker",
	"kubernetes": "kubernetes",
	"terraform":  "terraform",
	"aws":        "aws",
	"graphql":    "graphql",
	"sql":        "database",
	"database":   "database",
	"testing":    "testing",
	"security":   "security",
	"api":        "api",
	"frontend":   "frontend",
	"backend":    "backend",
	"css":        "css",
	"git":        "git",
}

var wordSplitter = regexp.MustCompile(`[^a-zA-Z0-9+#]+`)

// InferTags scans a document body for the fixed technology vocabulary and
// returns up to limit inferred tags, sorted for determinism. An optional
// ecosystem marker keyword (e.g. "copilot") is included when the body
// mentions it, on top of the limit.
func InferTags(body string, limit int, marker string) []string {
	seen := make(map[string]bool)
	lowerBody := strings.ToLower(body)

	for _, word := range wordSplitter.Split(lowerBody, -1) {
		if tag, ok := tagVocabulary[word]; ok {
			seen[tag] = true
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}

	if marker != "" && strings.Contains(lowerBody, strings.ToLower(marker)) {
		tags = append(tags, marker)
	}
	return tags
}

// MergeTags unions caller-supplied tags with inferred ones, preserving the
// caller's ordering first and deduplicating case-insensitively.
func MergeTags(supplied, inferred []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, group := range [][]string{supplied, inferred} {
		for _, tag := range group {
			key := strings.ToLower(strings.TrimSpace(tag))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, strings.TrimSpace(tag))
		}
	}
	return out
}
