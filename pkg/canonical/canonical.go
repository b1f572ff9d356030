// Package canonical defines the format-agnostic document model that every
// supported editor format is parsed into and converted from. A Package wraps
// identity metadata around a single Content, which is an ordered sequence of
// typed sections. Section order is the document's reading order and must
// survive conversion: converters may omit a section they cannot express, but
// they never reorder the remainder.
package canonical

// Format identifies a supported editor ecosystem or the canonical form itself.
type Format string

const (
	// FormatCanonical marks hand-built packages that did not originate from
	// any editor's native file format.
	FormatCanonical Format = "canonical"
	// FormatCopilot is GitHub Copilot's project-instructions format
	// (plain heading-structured markdown, no front matter).
	FormatCopilot Format = "copilot"
	// FormatCursor is Cursor's .mdc rule format (front matter with
	// description, globs and alwaysApply).
	FormatCursor Format = "cursor"
	// FormatKiro is Kiro's steering format (front matter with an inclusion
	// mode and optional fileMatchPattern).
	FormatKiro Format = "kiro"
	// FormatClaude is the plain CLAUDE.md markdown format.
	FormatClaude Format = "claude"
	// FormatContinue is Continue's JSON system-message document. Supported
	// for detection only.
	FormatContinue Format = "continue"
	// FormatUnknown is returned by detection when no format matches.
	FormatUnknown Format = "unknown"
)

// ContentVersion is the canonical content model version emitted by parsers.
const ContentVersion = "1.0"

// Package is the unit of conversion: identity metadata plus one canonical
// content body. It is constructed once per parse, never mutated afterwards,
// and never persisted by this module.
type Package struct {
	ID           string   `json:"id"`
	Version      string   `json:"version"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Author       string   `json:"author,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	SourceFormat Format   `json:"sourceFormat"`
	// Metadata carries ecosystem-specific passthrough fields that have no
	// modeled equivalent, e.g. a glob list or an inclusion mode.
	Metadata map[string]any `json:"metadata,omitempty"`
	Content  Content        `json:"content"`
}

// Content is the ordered section sequence of a canonical document.
type Content struct {
	Format   Format    `json:"format"`
	Version  string    `json:"version"`
	Sections []Section `json:"sections"`
}

// SectionKind names a canonical section variant.
type SectionKind string

const (
	KindMetadata     SectionKind = "metadata"
	KindInstructions SectionKind = "instructions"
	KindRules        SectionKind = "rules"
	KindExamples     SectionKind = "examples"
	KindPersona      SectionKind = "persona"
	KindContext      SectionKind = "context"
	KindTools        SectionKind = "tools"
	KindCustom       SectionKind = "custom"
)

// Section is a closed sum over the canonical section variants. Each converter
// must make an explicit render-or-skip decision for every variant; the
// unexported marker method keeps the set closed to this package.
type Section interface {
	Kind() SectionKind
	section()
}

// Priority marks how strongly an instructions section should be emphasised.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Rule is a single enumerated directive inside a rules section.
type Rule struct {
	Content   string   `json:"content"`
	Rationale string   `json:"rationale,omitempty"`
	Examples  []string `json:"examples,omitempty"`
}

// Example is a do/don't code sample. Good distinguishes a "do" example from
// a "don't"; parsers default it to true when no polarity marker is present.
type Example struct {
	Description string `json:"description"`
	Code        string `json:"code"`
	Language    string `json:"language,omitempty"`
	Good        bool   `json:"good"`
}

// MetadataSection is the document header: title, description and an optional
// icon. Parsers produce exactly one, always first.
type MetadataSection struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// InstructionsSection is freeform behavioral guidance.
type InstructionsSection struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Priority Priority `json:"priority,omitempty"`
}

// RulesSection is an ordered list of directives. Items is never empty in a
// well-formed document; an empty rules section is a parser defect.
type RulesSection struct {
	Title   string `json:"title"`
	Items   []Rule `json:"items"`
	Ordered bool   `json:"ordered"`
}

// ExamplesSection groups do/don't code samples.
type ExamplesSection struct {
	Title string    `json:"title"`
	Items []Example `json:"items"`
}

// PersonaSection describes the assistant's voice and character.
type PersonaSection struct {
	Name      string   `json:"name,omitempty"`
	Role      string   `json:"role"`
	Icon      string   `json:"icon,omitempty"`
	Style     []string `json:"style,omitempty"`
	Expertise []string `json:"expertise,omitempty"`
}

// ContextSection carries background or project information.
type ContextSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ToolsSection declares external capabilities. Not every target format can
// represent these; converters that cannot must skip with a warning.
type ToolsSection struct {
	Items []string `json:"items"`
}

// CustomSection is the escape hatch for content tied to one ecosystem. An
// empty OwningEcosystem means the content is safe for any target.
type CustomSection struct {
	OwningEcosystem string `json:"owningEcosystem,omitempty"`
	Content         string `json:"content"`
}

func (MetadataSection) Kind() SectionKind     { return KindMetadata }
func (InstructionsSection) Kind() SectionKind { return KindInstructions }
func (RulesSection) Kind() SectionKind        { return KindRules }
func (ExamplesSection) Kind() SectionKind     { return KindExamples }
func (PersonaSection) Kind() SectionKind      { return KindPersona }
func (ContextSection) Kind() SectionKind      { return KindContext }
func (ToolsSection) Kind() SectionKind        { return KindTools }
func (CustomSection) Kind() SectionKind       { return KindCustom }

func (MetadataSection) section()     {}
func (InstructionsSection) section() {}
func (RulesSection) section()        {}
func (ExamplesSection) section()     {}
func (PersonaSection) section()      {}
func (ContextSection) section()      {}
func (ToolsSection) section()        {}
func (CustomSection) section()       {}
