// Package converters renders canonical packages into native editor formats.
// Every converter shares one contract: it never mutates the input package,
// it never lets a fault escape its own boundary, and every piece of content
// it cannot express in the target format is reported as a warning and a
// lossy-conversion flag instead of being silently dropped.
package converters

import (
	"fmt"

	"github.com/prpm-io/prpm/pkg/canonical"
)

// Result is what every converter returns: the native file content plus the
// fidelity diagnostics the caller surfaces to the user.
type Result struct {
	Content         string           `json:"content"`
	Format          canonical.Format `json:"format"`
	Warnings        []string         `json:"warnings,omitempty"`
	LossyConversion bool             `json:"lossyConversion"`
	QualityScore    int              `json:"qualityScore"`
}

// faultResult is the degraded result returned when a converter hits an
// internal fault: near-empty content, zero score, and a warning carrying the
// underlying message. Partial failure of one section must never abort the
// whole conversion call.
func faultResult(format canonical.Format, cause any) *Result {
	return &Result{
		Content:         "",
		Format:          format,
		Warnings:        []string{fmt.Sprintf("Conversion fault: %v", cause)},
		LossyConversion: true,
		QualityScore:    0,
	}
}

// metadataGlobs reads the passthrough glob list a parser stored on the
// package, tolerating both []string and the []any YAML decoding produces.
func metadataGlobs(pkg *canonical.Package) []string {
	switch globs := pkg.Metadata["globs"].(type) {
	case []string:
		return globs
	case []any:
		var out []string
		for _, g := range globs {
			if s, ok := g.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// metadataBool reads a boolean passthrough field.
func metadataBool(pkg *canonical.Package, key string) bool {
	b, _ := pkg.Metadata[key].(bool)
	return b
}
