package world

import (
	"math"

	"github.com/ringbolt60/starch2/internal/dice"
	"github.com/ringbolt60/starch2/internal/tables"
)

// CalcGeophysics grades the crust, checks tidal stressing, settles plate
// tectonics and lets the results feed back into surface water.
func CalcGeophysics(w *World, r dice.Roller) {
	ageMod := int(math.Round(8 * w.Age))
	primordialHeatMod := int(math.Round(-60 * math.Log10(w.Gravity())))
	radiogenicHeatMod := int(math.Round(-10 * math.Log10(w.Metallicity)))
	score := ageMod + primordialHeatMod + radiogenicHeatMod + dice.Sum(r, 3)
	lith := tables.Lookup(lithosphereTable, score)

	f := 0.0
	if w.OrbitalTidalHeating && w.Type == Satellite {
		f = 1.59e15 * w.CompanionMass * float64(w.Radius()) / math.Pow(w.PrimaryDistance, 3)
	}
	if w.Lock != NoLock && w.Type != Satellite {
		resonant := w.Lock == Resonance3to2 || w.Lock == Resonance2to1 ||
			w.Lock == Resonance5to2 || w.Lock == Resonance3to1
		if w.Eccentricity >= 0.05 || resonant || w.OrbitalTidalHeating {
			f = 1.57e-4 * w.StarMass * float64(w.Radius()) / math.Pow(w.StarDistance, 3)
		}
	}
	if f > 0 {
		// stress only ever rejuvenates the crust
		stressed := lithosphereStressed[len(lithosphereStressed)-1].Value
		for _, row := range lithosphereStressed {
			if f <= float64(row.Score) {
				stressed = row.Value
				break
			}
		}
		if stressed < lith {
			lith = stressed
		}
	}
	w.Lithosphere = lith

	tect := TectonicsNone
	if lith == LithEarlyPlate || lith == LithMaturePlate || lith == LithAncientPlate {
		roll := dice.Sum(r, 3)
		if w.Water == WaterExtensive || w.Water == WaterMassive {
			roll += 6
		}
		if w.Water == WaterMinimal || w.Water == WaterTrace {
			roll -= 6
		}
		if lith == LithEarlyPlate {
			roll += 2
		}
		if lith == LithAncientPlate {
			roll -= 2
		}
		if roll >= 11 {
			tect = TectonicsMobile
		} else {
			tect = TectonicsFixed
		}
	}
	w.Tectonics = tect

	if (lith == LithEarlyPlate || lith == LithMaturePlate) && tect == TectonicsFixed {
		w.EpisodicResurfacing = true
	}

	if lith == LithMolten && w.Water != WaterMassive {
		w.Water, w.WaterPercent = WaterTrace, 0
	}

	if w.Water == WaterExtensive {
		roll := dice.Sum(r, 3)
		if lith == LithSoft || lith == LithSolid {
			w.WaterPercent += float64(roll + 10)
		}
		if lith == LithEarlyPlate || lith == LithAncientPlate {
			w.WaterPercent += float64(roll)
		}
		if w.WaterPercent > 100 {
			w.WaterPercent = 100
		}
	}
}

// CalcMagneticField estimates the dynamo from crust grade and tectonics.
func CalcMagneticField(w *World, r dice.Roller) {
	roll := dice.Sum(r, 3)
	if w.Lithosphere == LithSoft {
		roll += 4
	}
	if w.Tectonics == TectonicsMobile &&
		(w.Lithosphere == LithEarlyPlate || w.Lithosphere == LithAncientPlate) {
		roll += 8
	}
	if w.Lithosphere == LithMaturePlate && w.Tectonics == TectonicsMobile {
		roll += 12
	}

	switch {
	case roll <= 14:
		w.MagneticField = FieldNone
	case roll <= 17:
		w.MagneticField = FieldWeak
	case roll <= 19:
		w.MagneticField = FieldModerate
	default:
		w.MagneticField = FieldStrong
	}
}
