package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRecognizersList(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	// Reset flags for test
	configPath = ""
	outputFormat = "table"

	err := runRecognizersList(cmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Name")
	assert.Contains(t, output, "Entity")
	assert.Contains(t, output, "CreditCardRecognizer")
}

func TestRunRecognizersListJSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	configPath = ""
	outputFormat = "json"

	err := runRecognizersList(cmd, []string{})
	require.NoError(t, err)

	var instances []instanceInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &instances))
	assert.NotEmpty(t, instances)
}

func TestRunRecognizersList_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	configPath = ""
	outputFormat = "xml"

	err := runRecognizersList(cmd, []string{})
	assert.Error(t, err)
}

func TestRunRecognizersBuiltin(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runRecognizersBuiltin(cmd, []string{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "EmailRecognizer")
}
