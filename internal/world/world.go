// Package world models a single planet or satellite and the staged,
// table-driven pipeline that fills in its physical survey. Stages mutate the
// record in a fixed order; all randomness comes in through a dice.Roller.
package world

import (
	"math"

	"github.com/google/uuid"
)

type Type string

const (
	Lone      Type = "Lone Planet"
	Orbited   Type = "Planet with Satellite"
	Satellite Type = "Satellite"
)

// WaterPrevalence orders surface water from airless-dry to ocean world.
type WaterPrevalence int

const (
	WaterTrace WaterPrevalence = iota
	WaterMinimal
	WaterModerate
	WaterExtensive
	WaterMassive
)

func (w WaterPrevalence) String() string {
	switch w {
	case WaterTrace:
		return "Trace"
	case WaterMinimal:
		return "Minimal"
	case WaterModerate:
		return "Moderate"
	case WaterExtensive:
		return "Extensive"
	default:
		return "Massive"
	}
}

// Lithosphere grades crust maturity; lower values are younger and hotter.
type Lithosphere int

const (
	LithMolten Lithosphere = iota + 1
	LithSoft
	LithEarlyPlate
	LithMaturePlate
	LithAncientPlate
	LithSolid
)

func (l Lithosphere) String() string {
	switch l {
	case LithMolten:
		return "Molten Lithosphere"
	case LithSoft:
		return "Soft Lithosphere"
	case LithEarlyPlate:
		return "Early Plate Lithosphere"
	case LithMaturePlate:
		return "Mature Plate Lithosphere"
	case LithAncientPlate:
		return "Ancient Plate Lithosphere"
	default:
		return "Solid Plate Lithosphere"
	}
}

type Tectonics string

const (
	TectonicsNone   Tectonics = "No plate tectonics"
	TectonicsMobile Tectonics = "Mobile plate tectonics"
	TectonicsFixed  Tectonics = "Fixed plate tectonics"
)

type MagneticField int

const (
	FieldNone MagneticField = iota
	FieldWeak
	FieldModerate
	FieldStrong
)

func (m MagneticField) String() string {
	switch m {
	case FieldNone:
		return "No magnetic field"
	case FieldWeak:
		return "Weak magnetic field"
	case FieldModerate:
		return "Moderate magnetic field"
	default:
		return "Strong magnetic field"
	}
}

// SpinLock is the spin-orbit state left behind by tidal braking.
type SpinLock int

const (
	NoLock SpinLock = iota
	LockToSatellite
	LockToPrimary
	LockToStar
	Resonance3to2
	Resonance2to1
	Resonance5to2
	Resonance3to1
)

func (s SpinLock) String() string {
	switch s {
	case NoLock:
		return "None"
	case LockToSatellite:
		return "1:1 tidal lock with satellite"
	case LockToPrimary:
		return "1:1 tidal lock with planet"
	case LockToStar:
		return "1:1 tidal lock with star"
	case Resonance3to2:
		return "3:2 resonance with star"
	case Resonance2to1:
		return "2:1 resonance with star"
	case Resonance5to2:
		return "5:2 resonance with star"
	default:
		return "3:1 resonance with star"
	}
}

// Class buckets a world by which volatiles it holds on to.
type Class int

const (
	ClassVenus Class = iota + 1
	ClassDulcinea
	ClassTitan
	ClassEarth
	ClassMars
	ClassLuna
)

func (c Class) String() string {
	switch c {
	case ClassVenus:
		return "Class 1 (Venus-type)"
	case ClassDulcinea:
		return "Class 2 (Dulcinea-type)"
	case ClassTitan:
		return "Class 3 (Titan-type)"
	case ClassEarth:
		return "Class 4 (Earth-type)"
	case ClassMars:
		return "Class 5 (Mars-type)"
	default:
		return "Class 6 (Luna-type)"
	}
}

type Breathability string

const (
	Vacuum          Breathability = "Vacuum"
	TraceAtmosphere Breathability = "Trace atmosphere"
	Breathable      Breathability = "Breathable"
	Tainted         Breathability = "Tainted"
	Unbreathable    Breathability = "Unbreathable"
)

// Milestone marks one step of the biosphere timeline. Time is millions of
// years after formation and only meaningful when Occurred is set.
type Milestone struct {
	Occurred bool
	Time     int
}

// World is the full survey record. Seed fields come from config; everything
// below the seed block is filled in by the pipeline.
type World struct {
	Designation uuid.UUID
	Name        string
	Type        Type

	Mass                float64 // own mass, Earth masses
	CompanionMass       float64 // satellite of an orbited world, or a satellite's primary
	PrimaryDistance     float64 // km between world and companion
	StarMass            float64 // solar masses
	StarDistance        float64 // AU
	StarSpectrum        string  // e.g. "G2", "K5"; "BD" for brown dwarfs
	Luminosity          float64 // solar luminosities
	Age                 float64 // Gyr
	Eccentricity        float64
	Density             float64 // relative to Earth
	Metallicity         float64
	OutsideIceLine      bool
	GrandTack           bool
	OortCloud           bool
	RockySatOfGasGiant  bool
	OrbitalTidalHeating bool

	OrbitalPeriod     float64 // hours
	RotationPeriod    float64 // hours
	Lock              SpinLock
	Obliquity         int // degrees
	UnstableObliquity bool

	Water        WaterPrevalence
	WaterPercent float64
	GreenHouse   bool

	Lithosphere         Lithosphere
	Tectonics           Tectonics
	EpisodicResurfacing bool
	MagneticField       MagneticField

	ARF float64 // atmosphere retention factor

	MassHydrogen      float64
	MassHelium        float64
	MassNitrogen      float64
	MassCarbonDioxide float64
	MassOxygen        float64
	MassWaterVapour   float64

	Class  Class
	Albedo float64

	AbioVents      Milestone
	AbioSurface    Milestone
	Multicellular  Milestone
	Photosynthesis Milestone
	Oxygen         Milestone
	Animals        Milestone
	PreSentients   Milestone

	TraceMethane bool
	TraceOzone   bool
	SurfaceTemp  int // K
}

// New returns an Earth-mass world with a Luna-mass companion under a G2 sun.
func New() *World {
	return &World{
		Designation:     uuid.New(),
		Name:            "DEFAULT",
		Type:            Orbited,
		Mass:            1.0,
		CompanionMass:   0.0123,
		PrimaryDistance: 384400,
		StarMass:        1.0,
		StarDistance:    1.0,
		StarSpectrum:    "G2",
		Luminosity:      1.0,
		Age:             4.568,
		Eccentricity:    0.07,
		Density:         1.0,
		Metallicity:     1.0,
		OrbitalPeriod:   7617.0,
		RotationPeriod:  24.0,
		Lock:            NoLock,
		Water:           WaterTrace,
		Lithosphere:     LithSolid,
		Tectonics:       TectonicsNone,
		MagneticField:   FieldNone,
		Class:           ClassLuna,
		Albedo:          0.1,
	}
}

// Radius in km, from mass and relative density.
func (w *World) Radius() int {
	return int(math.Round(6378 * math.Cbrt(w.Mass/w.Density)))
}

// Gravity in g.
func (w *World) Gravity() float64 {
	return math.Cbrt(w.Mass * w.Density * w.Density)
}

// BlackBodyTemp in K, before albedo and greenhouse effects.
func (w *World) BlackBodyTemp() int {
	return int(math.Round(278 * math.Pow(w.Luminosity, 0.25) / math.Sqrt(w.StarDistance)))
}

// MNumber is the lightest molecular weight the world keeps hold of. The
// offset just under one makes it a ceiling without bumping exact values.
func (w *World) MNumber() int {
	r := float64(w.Radius())
	m := 700000 * float64(w.BlackBodyTemp()) / w.Density / (r * r)
	return int(m + 0.99999999)
}

// TNumber measures tidal braking torque on the world's spin.
func (w *World) TNumber() float64 {
	switch w.Type {
	case Satellite:
		return 0
	case Lone:
		r := float64(w.Radius())
		return 9.6e-14 * w.Age * w.StarMass * w.StarMass * r * r * r /
			w.Mass / math.Pow(w.StarDistance, 6)
	default:
		r := float64(w.Radius())
		return 1e25 * w.Age * w.CompanionMass * w.CompanionMass * r * r * r /
			w.Mass / math.Pow(w.PrimaryDistance, 6)
	}
}

func (w *World) TAdj() int {
	return int(math.Round(w.TNumber() * 12))
}

// LocalDayLength is the apparent solar day in hours. A world locked to its
// star keeps one face sunward and has no solar day at all.
func (w *World) LocalDayLength() (float64, bool) {
	if w.Lock == LockToStar {
		return 0, false
	}
	return w.OrbitalPeriod * w.RotationPeriod / (w.RotationPeriod + w.OrbitalPeriod), true
}

func (w *World) DaysInLocalYear() (float64, bool) {
	day, ok := w.LocalDayLength()
	if !ok {
		return 0, false
	}
	return w.OrbitalPeriod / day, true
}
