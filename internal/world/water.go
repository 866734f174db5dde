package world

import (
	"github.com/ringbolt60/starch2/internal/dice"
	"github.com/ringbolt60/starch2/internal/tables"
)

// CalcWater sets surface water prevalence and cover. Light-gas retainers
// and worlds seeded beyond the ice line are drowned outright; rocky worlds
// roll on the cover table; hot worlds then face the runaway-greenhouse
// check that can boil the lot away.
func CalcWater(w *World, r dice.Roller) {
	m := w.MNumber()
	bbt := w.BlackBodyTemp()

	switch {
	case m <= 2:
		w.Water, w.WaterPercent = WaterMassive, 100
	case m >= 29:
		if bbt >= 125 || w.RockySatOfGasGiant {
			w.Water, w.WaterPercent = WaterTrace, 0
		} else {
			w.Water, w.WaterPercent = WaterMassive, 100
		}
	case w.OutsideIceLine:
		w.Water, w.WaterPercent = WaterMassive, 100
	default:
		mod := -m
		if w.GrandTack {
			mod += 6
		}
		if w.OortCloud {
			mod += 3
		}
		band := tables.Lookup(hydroCover, dice.Sum(r, 3)+mod)
		w.Water = band.Water
		w.WaterPercent = r.Uniform(band.Lo, band.Hi)
	}

	if m > 2 && bbt >= 300 {
		if w.Water == WaterMinimal && dice.Sum(r, 3)+bbt >= 318 {
			w.Water, w.WaterPercent = WaterTrace, 0
		}
		if w.Water >= WaterModerate && dice.Sum(r, 3)+bbt >= 318 {
			w.Water, w.WaterPercent = WaterTrace, 0
			w.GreenHouse = true
		}
	}
}
