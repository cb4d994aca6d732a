package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RocketRace/robot-is-chill/internal/tiledata"
)

func TestImportPack(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tiles.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewImportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePack(t, validPackYAML), "--db", db})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `imported 2 tile(s) from "vanilla"`)

	st, err := tiledata.Open(db)
	require.NoError(t, err)
	defer st.Close()

	records, err := st.Fetch(context.Background(), []string{"baba", "wall"}, 1000)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		if r.Name == "baba" {
			assert.Equal(t, tiledata.TilingCharacter, r.Tiling)
		}
	}
}

func TestImportPackJSON(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tiles.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewImportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePack(t, validPackYAML), "--db", db})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "vanilla", data["source"])
	assert.Equal(t, float64(2), data["imported"])
}

func TestImportReimportOverwrites(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tiles.db")
	pack := writePack(t, validPackYAML)

	for i := 0; i < 2; i++ {
		cmd := NewImportCommand(&RootOptions{Format: "text"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{pack, "--db", db})
		require.NoError(t, cmd.Execute())
	}

	st, err := tiledata.Open(db)
	require.NoError(t, err)
	defer st.Close()

	records, err := st.Fetch(context.Background(), []string{"baba"}, 1000)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestImportInvalidPack(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tiles.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewImportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePack(t, invalidPackYAML), "--db", db})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "E005")
}

func TestImportMissingPack(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewImportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		filepath.Join(t.TempDir(), "absent.yaml"),
		"--db", filepath.Join(t.TempDir(), "tiles.db"),
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "E005")
}
