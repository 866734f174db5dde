package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ringbolt60/starch2/internal/dice"
)

func TestCalcOrbitalPeriod(t *testing.T) {
	w := loneWorld()
	CalcOrbitalPeriod(w)
	assert.InDelta(t, 7617.0, w.OrbitalPeriod, 0.1)

	s := rockSatellite()
	CalcOrbitalPeriod(s)
	assert.InDelta(t, 215.3, s.OrbitalPeriod, 0.1)

	d := New()
	CalcOrbitalPeriod(d)
	assert.InDelta(t, 8766.0, d.OrbitalPeriod, 0.1)
}

func TestCalcRotationPeriod_SatelliteLocksToPrimary(t *testing.T) {
	r := dice.NewScripted(1, 2, 3)
	w := rockSatellite()
	CalcRotationPeriod(w, r)

	assert.Equal(t, LockToPrimary, w.Lock)
	assert.InDelta(t, 215.3, w.RotationPeriod, 0.1)
	assert.Equal(t, 3, r.Rolled(), "dice stream must advance for every world type")
}

func TestCalcRotationPeriod_BrakedLoneFallsIntoResonance(t *testing.T) {
	w := New()
	w.Type = Lone
	w.Mass = 0.93
	w.StarMass = 1.256
	w.StarDistance = 0.892
	w.Age = 9.225
	w.Eccentricity = 0.37
	w.OrbitalPeriod = 6592.5

	// t_adj 9 plus a 16 crosses the braking threshold
	CalcRotationPeriod(w, dice.NewScripted(5, 6, 5))

	assert.Equal(t, Resonance5to2, w.Lock)
	assert.InDelta(t, 2637.0, w.RotationPeriod, 0.1)
}

func TestCalcRotationPeriod_BrakedCircularLoneLocksToStar(t *testing.T) {
	w := New()
	w.Type = Lone
	w.Mass = 0.93
	w.StarMass = 1.256
	w.StarDistance = 0.892
	w.Age = 9.225
	w.Eccentricity = 0.07
	w.OrbitalPeriod = 6592.5

	CalcRotationPeriod(w, dice.NewScripted(5, 6, 5))

	assert.Equal(t, LockToStar, w.Lock)
	assert.InDelta(t, 6592.5, w.RotationPeriod, 1e-9)
}

func TestCalcRotationPeriod_BrakedOrbitedLocksToSatellite(t *testing.T) {
	w := New()
	w.OrbitalPeriod = 8766.0

	// t_adj 7 plus a 18 crosses the braking threshold
	CalcRotationPeriod(w, dice.NewScripted(6, 6, 6))

	assert.Equal(t, LockToSatellite, w.Lock)
	assert.InDelta(t, 655.7, w.RotationPeriod, 0.1)
}

func TestCalcRotationPeriod_FreeSpinnerDrawsFromTable(t *testing.T) {
	w := New()
	w.OrbitalPeriod = 8766.0

	// t_adj 7 plus a 4 lands in the 20-32 hour band; scripted draws resolve
	// to the midpoint
	CalcRotationPeriod(w, dice.NewScripted(1, 2, 1))

	assert.Equal(t, NoLock, w.Lock)
	assert.InDelta(t, 26.0, w.RotationPeriod, 1e-9)
}

func TestCalcRotationPeriod_SlowSpinnerCapsAtOrbit(t *testing.T) {
	w := New()
	w.OrbitalPeriod = 25.0
	w.Eccentricity = 0.07

	CalcRotationPeriod(w, dice.NewScripted(1, 2, 1))

	assert.Equal(t, LockToStar, w.Lock)
	assert.InDelta(t, 25.0, w.RotationPeriod, 1e-9)
}

func TestAdjustForEccentricity(t *testing.T) {
	cases := []struct {
		ecc    float64
		lock   SpinLock
		period float64
	}{
		{0.01, LockToStar, 256.0},
		{0.12, LockToStar, 256.0},
		{0.2, Resonance3to2, 170.66667},
		{0.24, Resonance3to2, 170.66667},
		{0.25, Resonance2to1, 128.0},
		{0.3, Resonance2to1, 128.0},
		{0.35, Resonance5to2, 102.4},
		{0.44, Resonance5to2, 102.4},
		{0.45, Resonance3to1, 85.33333},
		{0.6, Resonance3to1, 85.33333},
	}
	for _, tc := range cases {
		lock, period := adjustForEccentricity(tc.ecc, 256.0)
		assert.Equal(t, tc.lock, lock, "ecc %v", tc.ecc)
		assert.InDelta(t, tc.period, period, 1e-4, "ecc %v", tc.ecc)
	}
}

func TestCalcObliquity_LockedWorldsStayNearUpright(t *testing.T) {
	w := rockSatellite()
	CalcObliquity(w, dice.NewScripted(3, 4, 5))
	assert.Equal(t, 4, w.Obliquity)

	locked := New()
	locked.Lock = LockToStar
	CalcObliquity(locked, dice.NewScripted(1, 2, 3))
	assert.Equal(t, 0, locked.Obliquity)
}

func TestCalcObliquity_TableBand(t *testing.T) {
	w := New()

	// t_adj 7 plus a 12 hits the 18-22 degree band
	CalcObliquity(w, dice.NewScripted(3, 4, 5))

	assert.False(t, w.UnstableObliquity)
	assert.Equal(t, 20, w.Obliquity)
}

func TestCalcObliquity_LoneInstability(t *testing.T) {
	w := loneWorld()

	// obliquity roll 12, then stability roll 18 trips the wobble
	r := dice.NewScripted(3, 4, 5, 6, 6, 6)
	CalcObliquity(w, r)

	assert.True(t, w.UnstableObliquity)
	assert.Equal(t, 44, w.Obliquity)
	assert.Equal(t, 6, r.Rolled())
}

func TestCalcObliquity_ExtremeLowScore(t *testing.T) {
	w := loneWorld()
	w.Age = 0.1 // t_adj 0

	// obliquity roll 4, stable stability roll, then a 6 and a big swing
	r := dice.NewScripted(1, 1, 2, 3, 4, 3, 6, 6, 6, 6)
	CalcObliquity(w, r)

	assert.False(t, w.UnstableObliquity)
	assert.Equal(t, 90-18, w.Obliquity)
}
