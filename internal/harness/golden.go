package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/RocketRace/robot-is-chill/internal/tile"
)

// GridSnapshot captures one resolved grid for golden comparison. The
// batch token is included so snapshot tests pin their generator.
type GridSnapshot struct {
	Scene string        `json:"scene"`
	Token string        `json:"token,omitempty"`
	Names []string      `json:"names,omitempty"`
	Grid  tile.FullGrid `json:"grid"`
}

// AssertGolden compares a snapshot value against
// testdata/golden/{name}.golden, serialized as indented JSON.
//
// Golden files are the source of truth for resolution output; on
// mismatch the diff points at the field that drifted.
func AssertGolden(t *testing.T, name string, snapshot any) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.AssertJson(t, name, snapshot)
}
