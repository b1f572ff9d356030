// Package frontmatter extracts and emits YAML front-matter blocks for the
// markdown-based editor formats. Parsing is best effort: malformed YAML
// degrades to "no front matter" rather than failing, since a conversion must
// never abort on a document a human editor would still open.
package frontmatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

// ExtensionPrefix marks comment lines inside a front-matter block that carry
// fields the target editor's own tooling does not recognize. They survive a
// round trip back into canonical form without confusing the editor's parser.
const ExtensionPrefix = "# prpm:"

// Parse extracts YAML front matter from a document. It returns the decoded
// key/value map (nil when absent or unparseable) and the body with the
// front-matter block removed.
func Parse(content string) (map[string]any, string) {
	if !strings.HasPrefix(content, "---") {
		return nil, content
	}

	lines := strings.Split(content, "\n")
	if closingDelimiter(lines) == -1 {
		// An unclosed block is not front matter; goldmark-meta would still
		// extract a map from it, leaving the delimiter lines in the body.
		return nil, content
	}

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))
	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert([]byte(content), &buf, parser.WithContext(pctx)); err != nil {
		return nil, content
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, content
	}
	return metaData, Body(content)
}

// Body strips the front-matter block, if any, and returns the rest.
func Body(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	end := closingDelimiter(lines)
	if end == -1 {
		return content
	}
	return strings.TrimLeft(strings.Join(lines[end+1:], "\n"), "\n")
}

// closingDelimiter returns the index of the line closing a front-matter
// block, or -1 when the block is never closed.
func closingDelimiter(lines []string) int {
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return i
		}
	}
	return -1
}

// ExtensionFields scans a document's front-matter block for ExtensionPrefix
// comment lines and returns the recovered key/value pairs. The YAML parser
// ignores comments, so recovery works on the raw block text.
func ExtensionFields(content string) map[string]string {
	if !strings.HasPrefix(content, "---") {
		return nil
	}

	fields := make(map[string]string)
	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "---" {
			break
		}
		if !strings.HasPrefix(line, ExtensionPrefix) {
			continue
		}
		rest := strings.TrimPrefix(line, ExtensionPrefix)
		key, value, found := strings.Cut(rest, " ")
		if !found || key == "" {
			continue
		}
		fields[key] = strings.TrimSpace(value)
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Field is a single front-matter entry. Fields render in slice order so that
// repeated conversions of the same package are byte identical.
type Field struct {
	Key   string
	Value any
}

// Render emits a front-matter block from ordered fields plus ExtensionPrefix
// comment lines for the extension map (also in the given key order). Values
// are marshaled with yaml.v3 so strings containing YAML metacharacters stay
// valid.
func Render(fields []Field, extensions []Field) string {
	var b strings.Builder
	b.WriteString("---\n")
	for _, f := range fields {
		b.WriteString(f.Key)
		b.WriteString(": ")
		b.WriteString(marshalValue(f.Value))
		b.WriteString("\n")
	}
	for _, f := range extensions {
		b.WriteString(ExtensionPrefix)
		b.WriteString(f.Key)
		b.WriteString(" ")
		b.WriteString(fmt.Sprintf("%v", f.Value))
		b.WriteString("\n")
	}
	b.WriteString("---\n")
	return b.String()
}

// marshalValue renders a scalar or flow-style value on a single line.
func marshalValue(v any) string {
	switch val := v.(type) {
	case string:
		out, err := yaml.Marshal(val)
		if err != nil {
			return val
		}
		return strings.TrimRight(string(out), "\n")
	case bool:
		return fmt.Sprintf("%t", val)
	case []string:
		// Joined as one scalar; the recursion quotes it when a glob starts
		// with a YAML metacharacter like *.
		return marshalValue(strings.Join(val, ","))
	default:
		out, err := yaml.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return strings.TrimRight(string(out), "\n")
	}
}
