// Command starch generates one world survey per run.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ringbolt60/starch2/internal/config"
	"github.com/ringbolt60/starch2/internal/dice"
	"github.com/ringbolt60/starch2/internal/report"
	"github.com/ringbolt60/starch2/internal/world"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "starch:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	profile := config.Default()
	var (
		profilePath string
		lone        bool
		orbited     bool
		satellite   bool
		noColor     bool
	)

	cmd := &cobra.Command{
		Use:           "starch",
		Short:         "Generate a deterministic planetary survey",
		Long: "starch rolls up a single planet or satellite from seed parameters,\n" +
			"working through orbit, spin, geophysics, atmosphere, biosphere and climate.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if profilePath != "" {
				loaded, err := config.Load(profilePath)
				if err != nil {
					return err
				}
				// flags set on the command line win over the profile
				merged := *loaded
				mergeFlagOverrides(cmd, &merged, profile)
				profile = &merged
			}
			switch {
			case lone:
				profile.Type = "lone"
			case satellite:
				profile.Type = "satellite"
			case orbited:
				profile.Type = "orbited"
			}

			w, err := profile.Build()
			if err != nil {
				return err
			}

			seed := profile.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			world.Generate(w, dice.NewSeeded(seed))

			fmt.Fprint(cmd.OutOrStdout(), report.Render(w, report.Options{Colour: !noColor}))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&profilePath, "profile", "", "yaml world profile to start from")
	fl.BoolVar(&lone, "lone", false, "generate a lone planet")
	fl.BoolVar(&orbited, "orbited", false, "generate a planet with a satellite (default)")
	fl.BoolVar(&satellite, "satellite", false, "generate a satellite")
	fl.BoolVar(&noColor, "no-color", false, "disable coloured output")

	fl.StringVarP(&profile.Name, "name", "n", profile.Name, "world name")
	fl.Float64VarP(&profile.Mass, "mass", "m", profile.Mass, "world mass in Earth masses")
	fl.Float64VarP(&profile.StarMass, "star-mass", "M", profile.StarMass, "star mass in solar masses")
	fl.Float64VarP(&profile.StarDistance, "star-distance", "D", profile.StarDistance, "orbital distance in AU")
	fl.Float64VarP(&profile.CompanionMass, "companion-mass", "l", profile.CompanionMass, "companion mass in Earth masses")
	fl.Float64VarP(&profile.PrimaryDistance, "primary-distance", "s", profile.PrimaryDistance, "world-companion distance in km")
	fl.Float64VarP(&profile.Density, "density", "k", profile.Density, "density relative to Earth")
	fl.Float64VarP(&profile.Age, "age", "a", profile.Age, "system age in GYr")
	fl.Float64VarP(&profile.Eccentricity, "eccentricity", "e", profile.Eccentricity, "orbital eccentricity")
	fl.Float64Var(&profile.Metallicity, "metal", profile.Metallicity, "stellar metallicity relative to the Sun")
	fl.Float64Var(&profile.Luminosity, "lum", profile.Luminosity, "stellar luminosity in solar luminosities")
	fl.StringVar(&profile.StarSpectrum, "spectrum", profile.StarSpectrum, "stellar spectral type ([AGKM][0-9] or BD)")
	fl.BoolVarP(&profile.OutsideIceLine, "outside-ice-line", "o", false, "world formed outside the ice line")
	fl.BoolVarP(&profile.GrandTack, "grand-tack", "g", false, "system went through a grand-tack migration")
	fl.BoolVar(&profile.OortCloud, "oort-cloud", false, "system has an Oort cloud")
	fl.BoolVar(&profile.GreenHouse, "green-house", false, "force a runaway greenhouse")
	fl.BoolVar(&profile.RockySatOfGasGiant, "rocky-sat", false, "world is a rocky satellite of a gas giant")
	fl.BoolVar(&profile.OrbitalTidalHeating, "tidal-heating", false, "companion drives orbital tidal heating")
	fl.Int64Var(&profile.Seed, "seed", 0, "die-stream seed (0 seeds from the clock)")

	return cmd
}

// mergeFlagOverrides copies explicitly-set flag values over a loaded profile.
func mergeFlagOverrides(cmd *cobra.Command, dst, flags *config.Profile) {
	set := func(name string) bool { return cmd.Flags().Changed(name) }
	if set("name") {
		dst.Name = flags.Name
	}
	if set("mass") {
		dst.Mass = flags.Mass
	}
	if set("star-mass") {
		dst.StarMass = flags.StarMass
	}
	if set("star-distance") {
		dst.StarDistance = flags.StarDistance
	}
	if set("companion-mass") {
		dst.CompanionMass = flags.CompanionMass
	}
	if set("primary-distance") {
		dst.PrimaryDistance = flags.PrimaryDistance
	}
	if set("density") {
		dst.Density = flags.Density
	}
	if set("age") {
		dst.Age = flags.Age
	}
	if set("eccentricity") {
		dst.Eccentricity = flags.Eccentricity
	}
	if set("metal") {
		dst.Metallicity = flags.Metallicity
	}
	if set("lum") {
		dst.Luminosity = flags.Luminosity
	}
	if set("spectrum") {
		dst.StarSpectrum = flags.StarSpectrum
	}
	if set("outside-ice-line") {
		dst.OutsideIceLine = flags.OutsideIceLine
	}
	if set("grand-tack") {
		dst.GrandTack = flags.GrandTack
	}
	if set("oort-cloud") {
		dst.OortCloud = flags.OortCloud
	}
	if set("green-house") {
		dst.GreenHouse = flags.GreenHouse
	}
	if set("rocky-sat") {
		dst.RockySatOfGasGiant = flags.RockySatOfGasGiant
	}
	if set("tidal-heating") {
		dst.OrbitalTidalHeating = flags.OrbitalTidalHeating
	}
	if set("seed") {
		dst.Seed = flags.Seed
	}
}
