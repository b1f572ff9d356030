package canonical

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentMarshalJSON(t *testing.T) {
	content := Content{
		Format:  FormatCanonical,
		Version: ContentVersion,
		Sections: []Section{
			MetadataSection{Title: "Doc", Description: "desc"},
			RulesSection{Title: "Rules", Items: []Rule{{Content: "be strict"}}, Ordered: true},
			ToolsSection{Items: []string{"terminal"}},
		},
	}

	encoded, err := json.Marshal(content)
	require.NoError(t, err)

	var decoded struct {
		Format   string `json:"format"`
		Version  string `json:"version"`
		Sections []struct {
			Kind SectionKind     `json:"kind"`
			Data json.RawMessage `json:"data"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, "canonical", decoded.Format)
	assert.Equal(t, "1.0", decoded.Version)
	require.Len(t, decoded.Sections, 3)
	assert.Equal(t, KindMetadata, decoded.Sections[0].Kind)
	assert.Equal(t, KindRules, decoded.Sections[1].Kind)
	assert.Equal(t, KindTools, decoded.Sections[2].Kind)
}

func TestSectionKinds(t *testing.T) {
	sections := []Section{
		MetadataSection{},
		InstructionsSection{},
		RulesSection{},
		ExamplesSection{},
		PersonaSection{},
		ContextSection{},
		ToolsSection{},
		CustomSection{},
	}
	kinds := make([]SectionKind, len(sections))
	for i, sec := range sections {
		kinds[i] = sec.Kind()
	}
	assert.Equal(t, []SectionKind{
		KindMetadata, KindInstructions, KindRules, KindExamples,
		KindPersona, KindContext, KindTools, KindCustom,
	}, kinds)
}
