package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringbolt60/starch2/internal/dice"
)

func TestGenerate_SameSeedSameWorld(t *testing.T) {
	a := New()
	Generate(a, dice.NewSeeded(42))

	b := New()
	Generate(b, dice.NewSeeded(42))

	b.Designation = a.Designation
	assert.Equal(t, a, b)
}

func TestGenerate_FillsTheRecord(t *testing.T) {
	w := New()
	Generate(w, dice.NewSeeded(1))

	assert.Greater(t, w.OrbitalPeriod, 0.0)
	assert.Greater(t, w.RotationPeriod, 0.0)
	assert.GreaterOrEqual(t, w.Obliquity, 0)
	assert.LessOrEqual(t, w.Obliquity, 90)
	assert.NotZero(t, w.Lithosphere)
	assert.NotEqual(t, Tectonics(""), w.Tectonics)
	assert.Greater(t, w.Albedo, 0.0)
	assert.Greater(t, w.SurfaceTemp, 0)
}

func TestGenerate_SatellitePipeline(t *testing.T) {
	w := rockSatellite()
	Generate(w, dice.NewSeeded(7))

	require.Equal(t, LockToPrimary, w.Lock)
	assert.InDelta(t, w.OrbitalPeriod, w.RotationPeriod, 1e-9)
	assert.Equal(t, WaterTrace, w.Water, "too small and warm to keep ice")
}

func TestGenerate_RangeInvariants(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		w := New()
		Generate(w, dice.NewSeeded(seed))

		assert.GreaterOrEqual(t, w.WaterPercent, 0.0, "seed %d", seed)
		assert.LessOrEqual(t, w.WaterPercent, 100.0, "seed %d", seed)
		assert.Greater(t, w.Albedo, 0.0, "seed %d", seed)
		assert.GreaterOrEqual(t, w.ARF, 0.0, "seed %d", seed)
		for _, mass := range []float64{
			w.MassHydrogen, w.MassHelium, w.MassNitrogen,
			w.MassCarbonDioxide, w.MassOxygen, w.MassWaterVapour,
		} {
			assert.GreaterOrEqual(t, mass, 0.0, "seed %d", seed)
		}
	}
}

func TestGenerate_MilestonesStayOrdered(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		w := New()
		Generate(w, dice.NewSeeded(seed))

		if w.Multicellular.Occurred {
			base, ok := earliest(w.AbioVents, w.AbioSurface)
			require.True(t, ok, "seed %d", seed)
			assert.GreaterOrEqual(t, w.Multicellular.Time, base, "seed %d", seed)
		}
		if w.Oxygen.Occurred {
			require.True(t, w.Photosynthesis.Occurred, "seed %d", seed)
			assert.Greater(t, w.Oxygen.Time, w.Photosynthesis.Time, "seed %d", seed)
		}
		if w.PreSentients.Occurred {
			require.True(t, w.Animals.Occurred, "seed %d", seed)
			assert.Greater(t, w.PreSentients.Time, w.Animals.Time, "seed %d", seed)
		}
	}
}
