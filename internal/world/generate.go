package world

import "github.com/ringbolt60/starch2/internal/dice"

// Generate runs the whole pipeline in stage order. The order is load-bearing:
// each stage reads only what earlier stages wrote, and the die stream is
// consumed in a fixed sequence so a seed always reproduces the same world.
func Generate(w *World, r dice.Roller) *World {
	CalcOrbitalPeriod(w)
	CalcRotationPeriod(w, r)
	CalcObliquity(w, r)
	CalcWater(w, r)
	CalcGeophysics(w, r)
	CalcMagneticField(w, r)
	CalcARF(w, r)
	CalcMassHydrogen(w, r)
	CalcMassHelium(w, r)
	CalcMassNitrogen(w, r)
	CalcWorldClass(w)
	CalcMassCarbonDioxide(w, r)
	CalcAlbedo(w, r)

	CalcAbioVents(w, r)
	CalcAbioSurface(w, r)
	CalcMulticellular(w, r)
	CalcPhotosynthesis(w, r)
	CalcOxygen(w, r)
	CalcMassOxygen(w, r)
	CalcAnimals(w, r)
	CalcPreSentients(w, r)

	CalcSurfaceTemp(w)
	AdjustCarbonDioxide(w, r)
	CalcWaterVapour(w)
	return w
}
