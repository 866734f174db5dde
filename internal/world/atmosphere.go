package world

import (
	"math"

	"github.com/ringbolt60/starch2/internal/dice"
)

// molecular weights of the tracked inventories
const (
	muHydrogen      = 2.0
	muHelium        = 4.0
	muNitrogen      = 28.0
	muOxygen        = 32.0
	muCarbonDioxide = 44.0
	muWaterVapour   = 18.0
)

// CalcARF scores how well the world builds and keeps an atmosphere.
func CalcARF(w *World, r dice.Roller) {
	roll := dice.Sum(r, 3)
	if w.Water == WaterMassive {
		roll += 6
	}
	if w.GreenHouse {
		roll += 6
	}
	switch w.Lithosphere {
	case LithMolten:
		roll += 6
	case LithSoft:
		roll += 4
	case LithEarlyPlate:
		roll += 2
	case LithAncientPlate:
		roll -= 2
	case LithSolid:
		roll -= 4
	}
	switch w.MagneticField {
	case FieldModerate:
		roll -= 2
	case FieldWeak:
		roll -= 4
	case FieldNone:
		roll -= 6
	}
	if roll < 0 {
		roll = 0
	}
	w.ARF = float64(roll) / 10.0
}

func jitter(r dice.Roller, mass float64) float64 {
	return r.Uniform(mass*0.9, mass*1.1)
}

// CalcMassHydrogen: only worlds that hold molecular hydrogen keep any.
func CalcMassHydrogen(w *World, r dice.Roller) {
	mass := 0.0
	if w.MNumber() <= 2 {
		mass = w.ARF * 100
	}
	w.MassHydrogen = jitter(r, mass)
}

func CalcMassHelium(w *World, r dice.Roller) {
	mass := 0.0
	switch m := w.MNumber(); {
	case m <= 2:
		mass = w.ARF * 25
	case m == 3:
		mass = w.ARF * 5
	case m == 4:
		mass = w.ARF
	}
	w.MassHelium = jitter(r, mass)
}

func CalcMassNitrogen(w *World, r dice.Roller) {
	mass := 0.0
	if w.MNumber() <= 28 && w.BlackBodyTemp() >= 80 {
		mass = w.ARF * 0.7
		if w.BlackBodyTemp() <= 125 && w.Water == WaterMassive {
			mass *= 15
		}
	}
	w.MassNitrogen = jitter(r, mass)
}

// CalcWorldClass buckets the world by its retained volatiles.
func CalcWorldClass(w *World) {
	bbt := w.BlackBodyTemp()
	switch {
	case w.GreenHouse:
		w.Class = ClassVenus
	case w.MassHydrogen > 0:
		w.Class = ClassDulcinea
	case w.MassNitrogen > 0 && bbt >= 80 && bbt <= 125:
		w.Class = ClassTitan
	case w.MassNitrogen > 0 && bbt > 125:
		w.Class = ClassEarth
	case w.MassHelium == 0 && w.MassNitrogen == 0 && w.MNumber() <= 44 && bbt > 195:
		w.Class = ClassMars
	default:
		w.Class = ClassLuna
	}
}

// CalcMassCarbonDioxide: runaway-greenhouse worlds bank most of their
// crust's carbon in the air; airless worlds keep none.
func CalcMassCarbonDioxide(w *World, r dice.Roller) {
	mass := 0.0
	switch {
	case w.Class == ClassVenus:
		mass = w.ARF * 100
	case w.Class == ClassLuna:
		mass = 0
	case w.MNumber() <= 44 && w.BlackBodyTemp() >= 195:
		mass = w.ARF * 10
	}
	w.MassCarbonDioxide = jitter(r, mass)
}

var albedoByWater = map[WaterPrevalence]float64{
	WaterTrace:     0.15,
	WaterMinimal:   0.16,
	WaterModerate:  0.19,
	WaterExtensive: 0.22,
	WaterMassive:   0.25,
}

var albedoByWaterAirless = map[WaterPrevalence]float64{
	WaterTrace:     0.01,
	WaterMinimal:   0.02,
	WaterModerate:  0.08,
	WaterExtensive: 0.14,
	WaterMassive:   0.20,
}

func CalcAlbedo(w *World, r dice.Roller) {
	roll := float64(dice.Sum(r, 3)) / 100
	switch w.Class {
	case ClassVenus:
		w.Albedo = 0.65 + roll
	case ClassDulcinea:
		w.Albedo = 0.2 + roll
	case ClassTitan:
		w.Albedo = 0.1 + roll
	case ClassEarth, ClassMars:
		w.Albedo = albedoByWater[w.Water] + roll
	default:
		a := albedoByWaterAirless[w.Water] + roll
		if w.Lithosphere == LithSoft || w.Lithosphere == LithMolten {
			a += 0.5
		}
		if w.Lithosphere == LithEarlyPlate || w.Lithosphere == LithMaturePlate {
			a += 0.3
		}
		if w.Lithosphere == LithAncientPlate {
			a += 0.3
		}
		if w.Lithosphere == LithSolid && w.BlackBodyTemp() < 80 {
			a += 0.3
		}
		w.Albedo = a
	}
}

// CarbonSilicateCycle reports whether weathering can thermostat CO2: there
// must be CO2 to draw down, exposed continents alongside ocean, and enough
// sunlight to keep the hydrological cycle turning.
func (w *World) CarbonSilicateCycle() bool {
	if w.MassCarbonDioxide <= 0 {
		return false
	}
	if w.Water != WaterModerate && w.Water != WaterExtensive {
		return false
	}
	temp := float64(w.BlackBodyTemp()) * math.Pow(1-w.Albedo, 0.25)
	return temp >= 260
}

// TotalAtmosphericMass sums the six inventories, in Earth-atmosphere units.
func (w *World) TotalAtmosphericMass() float64 {
	return w.MassHydrogen + w.MassHelium + w.MassNitrogen +
		w.MassCarbonDioxide + w.MassOxygen + w.MassWaterVapour
}

// AtmosphericPressure at the surface in atmospheres.
func (w *World) AtmosphericPressure() float64 {
	return w.Gravity() * w.TotalAtmosphericMass()
}

// PartialPressure of one inventory, in atmospheres.
func (w *World) PartialPressure(mass float64) float64 {
	return w.Gravity() * mass
}

// ScaleHeight of the atmosphere in km, from the mass-weighted mean
// molecular weight. Reports false for a world with no atmosphere.
func (w *World) ScaleHeight() (float64, bool) {
	total := w.TotalAtmosphericMass()
	if total <= 0 {
		return 0, false
	}
	weighted := w.MassHydrogen*muHydrogen + w.MassHelium*muHelium +
		w.MassNitrogen*muNitrogen + w.MassOxygen*muOxygen +
		w.MassCarbonDioxide*muCarbonDioxide + w.MassWaterVapour*muWaterVapour
	mu := weighted / total
	g := w.Gravity() * 9.80665
	return 8.314 * float64(w.SurfaceTemp) / (mu * g), true
}

// Breathable air needs near-Earth oxygen partial pressure and nothing
// noxious mixed in.
func (w *World) Breathability() Breathability {
	pressure := w.AtmosphericPressure()
	switch {
	case pressure < 1e-5:
		return Vacuum
	case pressure < 0.01:
		return TraceAtmosphere
	}
	oxygen := w.PartialPressure(w.MassOxygen)
	if oxygen >= 0.16 && oxygen <= 0.35 {
		if w.PartialPressure(w.MassCarbonDioxide) < 0.02 && !w.TraceMethane {
			return Breathable
		}
		return Tainted
	}
	return Unbreathable
}
