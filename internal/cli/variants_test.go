package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantsAll(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewVariantsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--all"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Facing right")
	assert.Contains(t, output, "Sleeping sprite")
}

func TestVariantsAllJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewVariantsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--all"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	docs, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Greater(t, len(docs), 50)
}

func TestVariantsProbeCharacter(t *testing.T) {
	db := seedDatabase(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewVariantsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"baba", "--db", db})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Alternate sprites:")
	assert.Contains(t, output, "Facing right")
	assert.Contains(t, output, "Sleeping sprite")
}

func TestVariantsProbeStatic(t *testing.T) {
	db := seedDatabase(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewVariantsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"rock", "--db", db})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.NotContains(t, output, "Facing right")
	assert.NotContains(t, output, "Sleeping sprite")
	assert.Contains(t, output, "Colors:")
}

func TestVariantsProbeJSON(t *testing.T) {
	db := seedDatabase(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewVariantsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"baba", "--db", db})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	groups, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.NotEmpty(t, groups)
}

func TestVariantsNoArgs(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewVariantsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "tile name is required")
}

func TestVariantsNoDatabase(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewVariantsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"baba"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--db is required")
}
