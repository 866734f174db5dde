package world

import (
	"strings"

	"github.com/ringbolt60/starch2/internal/dice"
	"github.com/ringbolt60/starch2/internal/tables"
)

// The biosphere timeline walks a chain of milestones. Each one needs its
// prerequisites, draws an elapsed time in millions of years, and only
// counts as having happened if the world is old enough to have reached it.

func (w *World) reached(timeMyr int) bool {
	return w.Age*1000 > float64(timeMyr)
}

// spectralOrdinal flattens a spectral type like "K5" onto a single scale,
// ten steps per letter class. Brown dwarfs report false.
func spectralOrdinal(spectrum string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(spectrum))
	if s == "BD" || len(s) != 2 {
		return 0, false
	}
	var base int
	switch s[0] {
	case 'A':
		base = 0
	case 'G':
		base = 10
	case 'K':
		base = 20
	case 'M':
		base = 30
	default:
		return 0, false
	}
	if s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return base + int(s[1]-'0'), true
}

func (w *World) spectralFactor() (float64, bool) {
	ord, ok := spectralOrdinal(w.StarSpectrum)
	if !ok {
		return 0, false
	}
	return tables.Lookup(spectralMultiplier, ord), true
}

// CalcAbioVents: hydrothermal-vent abiogenesis needs an ocean over live
// seafloor; a dead or fixed crust, or a runaway greenhouse, rules it out.
func CalcAbioVents(w *World, r dice.Roller) {
	if w.Water < WaterModerate {
		return
	}
	if w.Lithosphere == LithMolten || w.Lithosphere == LithSolid {
		return
	}
	if w.Tectonics == TectonicsFixed {
		return
	}
	if w.Class == ClassVenus {
		return
	}
	t := dice.Sum(r, 3) * 30
	if w.reached(t) {
		w.AbioVents = Milestone{Occurred: true, Time: t}
	}
}

// CalcAbioSurface: surface-refugia abiogenesis needs the carbon-silicate
// thermostat. Two draws are taken and the slower one kept; vent life, if
// any, bounds the date from below.
func CalcAbioSurface(w *World, r dice.Roller) {
	if !w.CarbonSilicateCycle() {
		return
	}
	var scale int
	switch w.Class {
	case ClassDulcinea:
		scale = 100
	case ClassEarth:
		scale = 125
	default:
		return
	}
	roll := max(dice.Sum(r, 3), dice.Sum(r, 3))
	t := roll * scale
	if w.AbioVents.Occurred && t < w.AbioVents.Time {
		t = w.AbioVents.Time
	}
	if w.reached(t) {
		w.AbioSurface = Milestone{Occurred: true, Time: t}
	}
}

// CalcMulticellular life follows the earliest abiogenesis.
func CalcMulticellular(w *World, r dice.Roller) {
	base, ok := earliest(w.AbioVents, w.AbioSurface)
	if !ok {
		return
	}
	t := base + dice.Sum(r, 3)*75
	if w.reached(t) {
		w.Multicellular = Milestone{Occurred: true, Time: t}
	}
}

// CalcPhotosynthesis: redder starlight slows it; brown dwarfs never power it.
func CalcPhotosynthesis(w *World, r dice.Roller) {
	if !w.AbioSurface.Occurred {
		return
	}
	factor, ok := w.spectralFactor()
	if !ok {
		return
	}
	t := w.AbioSurface.Time + int(float64(dice.Sum(r, 3))*100*factor)
	if w.reached(t) {
		w.Photosynthesis = Milestone{Occurred: true, Time: t}
	}
}

// CalcOxygen: the oxygen catastrophe follows photosynthesis.
func CalcOxygen(w *World, r dice.Roller) {
	if !w.Photosynthesis.Occurred {
		return
	}
	factor, ok := w.spectralFactor()
	if !ok {
		return
	}
	t := w.Photosynthesis.Time + int(float64(dice.Sum(r, 3))*150*factor)
	if w.reached(t) {
		w.Oxygen = Milestone{Occurred: true, Time: t}
	}
}

// CalcAnimals: complex animal life follows multicellular life, and arrives
// sooner when free oxygen already fills the air.
func CalcAnimals(w *World, r dice.Roller) {
	if !w.Multicellular.Occurred {
		return
	}
	t := w.Multicellular.Time + dice.Sum(r, 3)*300
	if w.Oxygen.Occurred && w.Oxygen.Time < t {
		t = (t + w.Oxygen.Time) / 2
	}
	if w.reached(t) {
		w.Animals = Milestone{Occurred: true, Time: t}
	}
}

// CalcPreSentients: ocean worlds slow the climb toward tool users.
func CalcPreSentients(w *World, r dice.Roller) {
	if !w.Animals.Occurred {
		return
	}
	scale := 50
	if w.Water == WaterMassive {
		scale = 100
	}
	t := w.Animals.Time + dice.Sum(r, 3)*scale
	if w.reached(t) {
		w.PreSentients = Milestone{Occurred: true, Time: t}
	}
}

// CalcMassOxygen: free oxygen needs the catastrophe; photosynthesis alone
// leaks only a whisper.
func CalcMassOxygen(w *World, r dice.Roller) {
	switch {
	case w.Oxygen.Occurred:
		w.MassOxygen = w.ARF * float64(dice.Sum(r, 3)+15) / 100
	case w.Photosynthesis.Occurred:
		w.MassOxygen = float64(dice.Sum(r, 3)) * 0.002
	}
}

func earliest(milestones ...Milestone) (int, bool) {
	best, found := 0, false
	for _, m := range milestones {
		if !m.Occurred {
			continue
		}
		if !found || m.Time < best {
			best = m.Time
		}
		found = true
	}
	return best, found
}
