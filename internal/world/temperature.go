package world

import (
	"math"

	"github.com/ringbolt60/starch2/internal/dice"
	"github.com/ringbolt60/starch2/internal/tables"
)

// The surface temperature settles in three passes: the radiative base with
// class-dependent greenhouse terms, then the carbon-dioxide feedback, then
// the water-vapour feedback.

// CalcSurfaceTemp sets the first-pass temperature and the trace-gas flags.
func CalcSurfaceTemp(w *World) {
	base := float64(w.BlackBodyTemp()) * math.Pow(1-w.Albedo, 0.25)

	switch {
	case w.Class == ClassVenus:
		base += 250 * math.Log10(w.MassCarbonDioxide)
	case w.Class == ClassLuna || w.ARF <= 0:
		// airless or inert: radiative balance only
	default:
		if w.methaneHaze() {
			w.TraceMethane = true
			base += 2 + 4*math.Log10(w.ARF)
		}
		if w.Oxygen.Occurred {
			w.TraceOzone = true
			base += 1 + 2*math.Log10(w.ARF)
		}
	}
	w.SurfaceTemp = int(math.Round(base))
}

// methaneHaze: reducing atmospheres keep methane on their own; oxidising
// worlds need vent life to replenish it.
func (w *World) methaneHaze() bool {
	switch w.Class {
	case ClassDulcinea, ClassTitan:
		return true
	case ClassEarth, ClassMars:
		return w.AbioVents.Occurred
	default:
		return false
	}
}

// AdjustCarbonDioxide runs the CO2 feedback. With a live carbon-silicate
// cycle the thermostat pins temperature near the weathering floor and the
// airborne CO2 re-equilibrates along the same saturation curve the vapour
// table uses; without it the banked CO2 warms the surface once and stays.
func AdjustCarbonDioxide(w *World, r dice.Roller) {
	if w.MassCarbonDioxide <= 0 {
		return
	}

	if w.CarbonSilicateCycle() {
		floor := 236 + dice.Sum(r, 3)
		temp := w.SurfaceTemp
		if temp < floor {
			temp = floor
		}
		temp += dice.Sum(r, 3)
		w.MassCarbonDioxide = saturationMass(temp - w.SurfaceTemp + 2)
		w.SurfaceTemp = temp
		return
	}

	k := 68.0
	if w.Class == ClassVenus {
		k = 28.0
	}
	w.SurfaceTemp += int(math.Round(k * math.Log10(w.MassCarbonDioxide)))
}

// CalcWaterVapour runs the vapour feedback: a warm wet world loads the air
// with water, which warms it further by the table addend.
func CalcWaterVapour(w *World) {
	if w.MNumber() > 18 || w.Water < WaterModerate {
		return
	}
	addend := tables.Lookup(waterVapour, w.SurfaceTemp)
	switch w.Water {
	case WaterExtensive:
		addend += 3
	case WaterMassive:
		addend += 4
	}
	w.MassWaterVapour = saturationMass(addend)
	w.SurfaceTemp += addend
}

// saturationMass converts a temperature addend into an airborne mass along
// the saturation curve shared by the vapour and CO2 feedbacks.
func saturationMass(addend int) float64 {
	return 1.78e-5 * math.Pow(1.333, float64(addend))
}
