package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConvertCommandKiroRequiresInclusion(t *testing.T) {
	path := writeFixture(t, "rules.md", "# Rules\n\n## Guidelines\n\n- be strict\n")

	_, err := runCommand(t, "convert", path, "--from", "copilot", "--to", "kiro")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inclusion mode")
}

func TestConvertCommandToClaude(t *testing.T) {
	path := writeFixture(t, "rules.md", "# Rules\n\nIntro.\n\n## Guidelines\n\n- be strict\n")

	output, err := runCommand(t, "convert", path, "--from", "copilot", "--to", "claude")
	require.NoError(t, err)
	assert.Contains(t, output, "## Guidelines")
	assert.Contains(t, output, "- be strict")
}

func TestConvertCommandRequiresTarget(t *testing.T) {
	path := writeFixture(t, "rules.md", "# Rules\n")

	_, err := runCommand(t, "convert", path, "--from", "copilot", "--to", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--to")
}

func TestDetectCommand(t *testing.T) {
	path := writeFixture(t, "steering.md", "---\ninclusion: always\n---\n\n# Steering\n")

	output, err := runCommand(t, "detect", path)
	require.NoError(t, err)
	assert.Contains(t, output, "kiro")
}

func TestDetectCommandJSON(t *testing.T) {
	path := writeFixture(t, "rule.mdc", "---\ndescription: a rule\n---\n\n# Rule\n")

	output, err := runCommand(t, "detect", path, "--json")
	require.NoError(t, err)

	var results []struct {
		File   string `json:"file"`
		Format string `json:"format"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "cursor", results[0].Format)
}

func TestFormatsCommand(t *testing.T) {
	output, err := runCommand(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, output, "cursor")
	assert.Contains(t, output, ".mdc")
	assert.Contains(t, output, "continue")
}
