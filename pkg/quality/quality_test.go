package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLossy(t *testing.T) {
	tests := []struct {
		name    string
		warning string
		want    bool
	}{
		{"skipped section", "Tools section skipped (continue-specific)", true},
		{"not supported", "Persona sections are not supported by this format", true},
		{"case insensitive", "Section SKIPPED due to target limits", true},
		{"informational", "Front matter had no description field", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lossy(tt.warning))
		})
	}
}

func TestEvaluate(t *testing.T) {
	score, lossy := Evaluate(nil)
	assert.Equal(t, 100, score)
	assert.False(t, lossy)

	score, lossy = Evaluate([]string{"informational note"})
	assert.Equal(t, 100, score)
	assert.False(t, lossy)

	// The flat rule charges a single penalty no matter how many lossy
	// warnings there are.
	score, lossy = Evaluate([]string{
		"Tools section skipped (cursor-specific)",
		"Custom section skipped (kiro-specific)",
	})
	assert.Equal(t, 90, score)
	assert.True(t, lossy)
}

func TestEvaluatePerIssue(t *testing.T) {
	score, lossy := EvaluatePerIssue(nil)
	assert.Equal(t, 100, score)
	assert.False(t, lossy)

	score, lossy = EvaluatePerIssue([]string{
		"Tools section skipped (cursor-specific)",
		"Persona section skipped (kiro steering does not support personas)",
		"one informational warning",
	})
	assert.Equal(t, 80, score)
	assert.True(t, lossy)
}

func TestEvaluatePerIssueClampsAtZero(t *testing.T) {
	warnings := make([]string, 15)
	for i := range warnings {
		warnings[i] = "Section skipped"
	}
	score, lossy := EvaluatePerIssue(warnings)
	assert.Equal(t, 0, score)
	assert.True(t, lossy)
}
