package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConfigValidate(t *testing.T) {
	doc := `
supported_languages: [en, es]
recognizers:
  - name: ZIP
    type: custom
    supported_entity: ZIP
    patterns:
      - {name: p1, regex: "\\d{5}", score: 0.1}
`
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runConfigValidate(cmd, []string{path})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Configuration OK")
	assert.Contains(t, output, "Recognizer instances: 2")
}

func TestRunConfigValidate_MalformedCustomEntry(t *testing.T) {
	// A custom entry without patterns corrupts assembly and must fail.
	doc := `
recognizers:
  - name: Broken
    type: custom
    supported_entity: X
`
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runConfigValidate(cmd, []string{path})
	assert.Error(t, err)
}
