package world

import (
	"math"

	"github.com/ringbolt60/starch2/internal/dice"
	"github.com/ringbolt60/starch2/internal/tables"
)

// CalcOrbitalPeriod sets the year length in hours. Constants are tuned so
// Earth and Luna come out exact.
func CalcOrbitalPeriod(w *World) {
	if w.Type == Satellite {
		w.OrbitalPeriod = satellitePeriod(w)
		return
	}
	w.OrbitalPeriod = 8766.0 * math.Sqrt(math.Pow(w.StarDistance, 3)/w.StarMass)
}

func satellitePeriod(w *World) float64 {
	return 2.768e-6 * math.Sqrt(math.Pow(w.PrimaryDistance, 3)/(w.Mass+w.CompanionMass))
}

// CalcRotationPeriod settles the sidereal spin under tidal braking. The dice
// are thrown before branching so every world type consumes the same stream.
func CalcRotationPeriod(w *World, r dice.Roller) {
	roll := dice.Sum(r, 3)
	if w.Type == Satellite {
		w.RotationPeriod = w.OrbitalPeriod
		w.Lock = LockToPrimary
		return
	}

	braked := w.TAdj() + roll
	if w.TNumber() >= 2 || braked >= 24 {
		if w.Type == Lone {
			w.Lock, w.RotationPeriod = adjustForEccentricity(w.Eccentricity, w.OrbitalPeriod)
			return
		}
		w.RotationPeriod = satellitePeriod(w)
		w.Lock = LockToSatellite
		return
	}

	band := tables.Lookup(rotationRate, braked)
	period := r.Uniform(band.Lo, band.Hi)
	lock := NoLock
	if period >= w.OrbitalPeriod {
		lock, period = adjustForEccentricity(w.Eccentricity, w.OrbitalPeriod)
	}
	w.RotationPeriod = period
	w.Lock = lock
}

// adjustForEccentricity turns a would-be 1:1 lock into a spin-orbit
// resonance when the orbit is eccentric enough, Mercury-style.
func adjustForEccentricity(ecc, period float64) (SpinLock, float64) {
	switch {
	case ecc <= 0.12:
		return LockToStar, period
	case ecc < 0.25:
		return Resonance3to2, period * 2.0 / 3.0
	case ecc < 0.35:
		return Resonance2to1, period * 0.5
	case ecc < 0.45:
		return Resonance5to2, period * 0.4
	default:
		return Resonance3to1, period / 3.0
	}
}

// CalcObliquity sets the axial tilt. Lone planets lack a heavy moon to
// steady them, so they check for chaotic axis wander first.
func CalcObliquity(w *World, r dice.Roller) {
	roll := dice.Sum(r, 3)

	if w.Type == Satellite || w.Lock != NoLock {
		w.Obliquity = max(roll-8, 0)
		return
	}

	mod := 0
	if w.Type == Lone {
		stability := dice.Sum(r, 3)
		if stability < 8 || stability > 13 {
			mod = -7
			w.UnstableObliquity = true
		}
	}

	score := w.TAdj() + roll + mod
	switch {
	case score >= 25:
		w.Obliquity = max(roll-8, 0)
	case score <= 4:
		w.Obliquity = extremeObliquity(r)
	default:
		band := tables.Lookup(obliquityTable, score)
		w.Obliquity = r.UniformInt(int(band.Lo), int(band.Hi))
	}
}

func extremeObliquity(r dice.Roller) int {
	die := r.Die()
	if die == 6 {
		// rolled over the top: the axis ends up near or past the pole
		swing := dice.Sum(r, 3)
		if swing > 7 {
			return 90 - swing
		}
		return 90
	}
	band := tables.Lookup(extremeObliquityTable, die)
	return r.UniformInt(int(band.Lo), int(band.Hi))
}
