package threshold

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosedForms(t *testing.T) {
	for _, v := range []struct {
		Property string
		N        int
		Expected float64
	}{
		{"HasEdge", 4, 1.0 / 6.0},
		{"HasEdge", 10, 2.0 / 90.0},
		{"HasK3", 10, 0.1},
		{"HasK3", 50, 0.02},
		{"IsConnected", 10, math.Log(10) / 10},
		{"HasK4", 8, 0.25},
		{"HasK4", 27, 1.0 / 9.0},
		{"IsHamiltonian", 100, math.Log(100) / 100},
	} {
		got := Theoretical(v.Property, v.N)
		if !got.Valid {
			t.Fatalf("%s(%d): expected a value", v.Property, v.N)
		}
		if math.Abs(got.Float64-v.Expected) > 1e-12 {
			t.Errorf("%s(%d): expected %.12f, got %.12f", v.Property, v.N, v.Expected, got.Float64)
		}
	}
}

func TestPropertiesAreRegistered(t *testing.T) {
	require.Len(t, models, len(Properties()))

	seen := make(map[string]struct{})
	for _, property := range Properties() {
		m, err := Lookup(property)
		require.NoError(t, err)
		assert.Equal(t, property, m.Property)
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.PanelTitle)
		assert.NotEmpty(t, m.Label)

		_, dup := seen[m.Filename]
		assert.False(t, dup, "duplicate filename %s", m.Filename)
		seen[m.Filename] = struct{}{}
	}
}

func TestPropertiesReturnsCopy(t *testing.T) {
	order := Properties()
	require.Equal(t, []string{"HasEdge", "HasK3", "IsConnected", "HasK4", "IsHamiltonian"}, order)

	order[0] = "IsPlanar"
	assert.Equal(t, "HasEdge", Properties()[0])

	m, err := Lookup("HasK3")
	require.NoError(t, err)
	m.Label = "changed"

	again, err := Lookup("HasK3")
	require.NoError(t, err)
	assert.Equal(t, "p = 1/n", again.Label)
}

func TestLabelsKeepMathGlyphs(t *testing.T) {
	m, err := Lookup("HasEdge")
	require.NoError(t, err)
	assert.Equal(t, "p ≈ 2/n²", m.Label)

	m, err = Lookup("HasK4")
	require.NoError(t, err)
	assert.Equal(t, "Contains K₄", m.PanelTitle)
}

func TestLookupUnknownProperty(t *testing.T) {
	_, err := Lookup("IsPlanar")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoModel))
	assert.Contains(t, err.Error(), "IsPlanar")

	assert.False(t, Theoretical("IsPlanar", 10).Valid)
}

func TestTheoreticalDegenerateSize(t *testing.T) {
	// 2/(n(n-1)) divides by zero at n=1
	assert.False(t, Theoretical("HasEdge", 1).Valid)
	assert.True(t, Theoretical("HasK3", 1).Valid)
}
