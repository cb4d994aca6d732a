package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RocketRace/robot-is-chill/internal/testutil"
	"github.com/RocketRace/robot-is-chill/internal/tiledata"
	"github.com/RocketRace/robot-is-chill/internal/variants"
)

func seedDatabase(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiles.db")
	st, err := tiledata.Open(path)
	require.NoError(t, err)
	for _, f := range testutil.Fixtures {
		require.NoError(t, st.Upsert(context.Background(), f))
	}
	require.NoError(t, st.Close())
	return path
}

func TestResolveScene(t *testing.T) {
	db := seedDatabase(t)
	scene := writeScene(t, "grid:\n  - - - \"baba:up wall\"\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewResolveCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{scene, "--db", db})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "batch ")
	assert.Contains(t, output, "[0.0 0,0] baba variant 8")
	assert.Contains(t, output, "[0.0 1,0] wall variant 0")
}

func TestResolveSceneJSON(t *testing.T) {
	db := seedDatabase(t)
	scene := writeScene(t, "grid:\n  - - - \"baba wall\"\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewResolveCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{scene, "--db", db})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
	assert.NotEmpty(t, data["grid"])
}

func TestResolveFixedToken(t *testing.T) {
	db := seedDatabase(t)
	scene := writeScene(t, "grid:\n  - - - \"baba\"\n")

	opts := &ResolveOptions{
		RootOptions:    &RootOptions{Format: "text"},
		Database:       db,
		TokenGenerator: variants.NewFixedGenerator("batch-1"),
	}
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})

	err := runResolve(opts, scene, cmd)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "batch batch-1")
}

func TestResolveSkipsEmptyCells(t *testing.T) {
	db := seedDatabase(t)
	scene := writeScene(t, "grid:\n  - - - \"- baba -\"\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewResolveCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{scene, "--db", db})

	err := cmd.Execute()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "[0.0 1,0] baba variant 0")
}

func TestResolveUnknownTile(t *testing.T) {
	db := seedDatabase(t)
	scene := writeScene(t, "grid:\n  - - - \"zzqq\"\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewResolveCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{scene, "--db", db})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "E004")
}

func TestResolveBadVariant(t *testing.T) {
	db := seedDatabase(t)
	scene := writeScene(t, "grid:\n  - - - \"baba:zzqq\"\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewResolveCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{scene, "--db", db})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "zzqq")
}

func TestResolveMissingScene(t *testing.T) {
	db := seedDatabase(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewResolveCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.yaml"), "--db", db})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "E003")
}
