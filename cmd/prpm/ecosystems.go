package main

import (
	"github.com/pkg/errors"

	"github.com/prpm-io/prpm/pkg/canonical"
	"github.com/prpm-io/prpm/pkg/parsers"
)

// parseFunc is the shared parser contract: raw text plus caller metadata in,
// canonical package out, never an error.
type parseFunc func(content string, meta parsers.Metadata) *canonical.Package

// ecosystem describes one supported editor format's capabilities.
type ecosystem struct {
	Format    canonical.Format
	Extension string
	Parse     parseFunc // nil: detection only
	Convert   bool
}

// ecosystems is the capability table, in display order.
var ecosystems = []ecosystem{
	{Format: canonical.FormatCopilot, Extension: ".md", Parse: parsers.ParseCopilot, Convert: true},
	{Format: canonical.FormatCursor, Extension: ".mdc", Parse: parsers.ParseCursor, Convert: true},
	{Format: canonical.FormatKiro, Extension: ".md", Parse: parsers.ParseKiro, Convert: true},
	{Format: canonical.FormatClaude, Extension: ".md", Parse: parsers.ParseClaude, Convert: true},
	{Format: canonical.FormatContinue, Extension: ".json", Parse: nil, Convert: false},
}

func lookupEcosystem(format string) (*ecosystem, error) {
	for i := range ecosystems {
		if string(ecosystems[i].Format) == format {
			return &ecosystems[i], nil
		}
	}
	return nil, errors.Errorf("unknown format %q", format)
}
