package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushFilter_AppendsInOrder(t *testing.T) {
	var f Fields
	f.PushFilter("neon", 1.4)
	f.PushFilter("neon", 2.0)
	f.PushFilter("melt", true)

	require.Len(t, f.Filters, 3)
	assert.Equal(t, Filter{Name: "neon", Args: 1.4}, f.Filters[0])
	assert.Equal(t, Filter{Name: "neon", Args: 2.0}, f.Filters[1])
	assert.Equal(t, Filter{Name: "melt", Args: true}, f.Filters[2])
}

func TestAddDisplace_Accumulates(t *testing.T) {
	var f Fields
	f.AddDisplace(1, -2)
	require.NotNil(t, f.Displace)
	assert.Equal(t, [2]float64{1, -2}, *f.Displace)

	f.AddDisplace(3, 5)
	assert.Equal(t, [2]float64{4, 3}, *f.Displace)
}

func TestNewFull(t *testing.T) {
	raw := Raw{Name: "baba", Variants: []string{"red"}}
	full := NewFull(raw, Fields{VariantNumber: 8})
	assert.Equal(t, "baba", full.Name)
	assert.Equal(t, 8, full.VariantNumber)
}
