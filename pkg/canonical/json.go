package canonical

import "encoding/json"

// sectionEnvelope is the wire shape of a section: the kind tag alongside the
// variant's own fields, so JSON consumers can tell variants apart.
type sectionEnvelope struct {
	Kind SectionKind `json:"kind"`
	Data Section     `json:"data"`
}

// MarshalJSON emits sections as {"kind": ..., "data": {...}} envelopes.
func (c Content) MarshalJSON() ([]byte, error) {
	envelopes := make([]sectionEnvelope, len(c.Sections))
	for i, sec := range c.Sections {
		envelopes[i] = sectionEnvelope{Kind: sec.Kind(), Data: sec}
	}
	return json.Marshal(struct {
		Format   Format            `json:"format"`
		Version  string            `json:"version"`
		Sections []sectionEnvelope `json:"sections"`
	}{
		Format:   c.Format,
		Version:  c.Version,
		Sections: envelopes,
	})
}
