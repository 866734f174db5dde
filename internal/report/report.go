// Package report renders a generated world as a survey sheet.
package report

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/ringbolt60/starch2/internal/world"
)

// Options control rendering. Colour is off by default so piped output and
// tests see plain text.
type Options struct {
	Colour bool
}

func heading(o Options, s string) string {
	if o.Colour {
		return color.Bold.Sprint(s)
	}
	return s
}

func tag(o Options, s string) string {
	if o.Colour {
		return color.Yellow.Sprint(s)
	}
	return s
}

// Render writes the full survey sheet for one world.
func Render(w *world.World, o Options) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("%s", heading(o, w.Name))
	line("Designation: %s", w.Designation)
	line("%s Age: %.3f GYr", w.Type, w.Age)
	line("Mass: %.3f M♁ Density: %.3f K♁ Radius: %d km Gravity: %.3f G",
		w.Mass, w.Density, w.Radius(), w.Gravity())
	line("Star Mass: %.3f M☉ Distance: %.3f AU Lumin: %.3f L☉",
		w.StarMass, w.StarDistance, w.Luminosity)
	switch w.Type {
	case world.Orbited:
		line("Satellite Mass: %.3f M♁ Distance: %.0f km", w.CompanionMass, w.PrimaryDistance)
	case world.Satellite:
		line("Primary Mass: %.3f M♁ Distance: %.0f km", w.CompanionMass, w.PrimaryDistance)
	}
	line("---")

	line("Orbital Period = %.1f hours", w.OrbitalPeriod)
	line("Rotation Period = %.1f hours %s", w.RotationPeriod, w.Lock)
	if w.UnstableObliquity {
		line("Obliquity = %d° %s", w.Obliquity, tag(o, "Unstable"))
	} else {
		line("Obliquity = %d°", w.Obliquity)
	}
	if day, ok := w.LocalDayLength(); ok {
		days, _ := w.DaysInLocalYear()
		line("Day length = %.1f hours %.2f days in year", day, days)
	} else {
		line("Day length: not applicable")
	}

	if w.GreenHouse {
		line("Black body temperature = %d K %s", w.BlackBodyTemp(), tag(o, "Runaway Greenhouse"))
	} else {
		line("Black body temperature = %d K", w.BlackBodyTemp())
	}
	line("M number = %d", w.MNumber())
	line("Water prevalence: %s %5.1f%%", w.Water, w.WaterPercent)
	if w.EpisodicResurfacing {
		line("%s / %s / Episodic Resurfacing", w.Lithosphere, w.Tectonics)
	} else {
		line("%s / %s", w.Lithosphere, w.Tectonics)
	}
	line("%s", w.MagneticField)
	line("%s ARF: %.1f H2: %.2f He: %.2f N2: %.2f O2: %.3f CO2: %.3f H2O: %.5f",
		w.Class, w.ARF, w.MassHydrogen, w.MassHelium, w.MassNitrogen,
		w.MassOxygen, w.MassCarbonDioxide, w.MassWaterVapour)
	line("Albedo: %.2f", w.Albedo)
	line("Surface temperature = %d K%s", w.SurfaceTemp, traceGases(w))
	line("Pressure = %.3f atm (O2 %.3f, CO2 %.3f)  Scale height: %s",
		w.AtmosphericPressure(),
		w.PartialPressure(w.MassOxygen),
		w.PartialPressure(w.MassCarbonDioxide),
		scaleHeight(w))
	line("Breathability: %s", w.Breathability())
	line("---")

	line("%s", heading(o, "Biosphere"))
	milestone(&b, "Abiogenesis (vents)", w.AbioVents)
	milestone(&b, "Abiogenesis (surface)", w.AbioSurface)
	milestone(&b, "Multicellular life", w.Multicellular)
	milestone(&b, "Photosynthesis", w.Photosynthesis)
	milestone(&b, "Oxygen catastrophe", w.Oxygen)
	milestone(&b, "Animal life", w.Animals)
	milestone(&b, "Pre-sentients", w.PreSentients)

	return b.String()
}

func milestone(b *strings.Builder, label string, m world.Milestone) {
	if m.Occurred {
		fmt.Fprintf(b, "%-22s %d Myr after formation\n", label+":", m.Time)
		return
	}
	fmt.Fprintf(b, "%-22s never\n", label+":")
}

func traceGases(w *world.World) string {
	switch {
	case w.TraceMethane && w.TraceOzone:
		return " (trace CH4, O3)"
	case w.TraceMethane:
		return " (trace CH4)"
	case w.TraceOzone:
		return " (trace O3)"
	default:
		return ""
	}
}

func scaleHeight(w *world.World) string {
	h, ok := w.ScaleHeight()
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f km", h)
}
