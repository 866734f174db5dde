package world

import "github.com/ringbolt60/starch2/internal/tables"

// Band is an inclusive numeric range a uniform draw resolves within.
type Band struct {
	Lo, Hi float64
}

type hydroBand struct {
	Lo, Hi float64
	Water  WaterPrevalence
}

// Sidereal rotation in hours by braking score. The final row is the
// resonant overflow; scores that high are caught before the lookup.
var rotationRate = []tables.Row[Band]{
	{Score: 3, Value: Band{4, 5}},
	{Score: 4, Value: Band{4, 6}},
	{Score: 5, Value: Band{5, 8}},
	{Score: 6, Value: Band{6, 10}},
	{Score: 7, Value: Band{8, 12}},
	{Score: 8, Value: Band{10, 16}},
	{Score: 9, Value: Band{12, 20}},
	{Score: 10, Value: Band{16, 24}},
	{Score: 11, Value: Band{20, 32}},
	{Score: 12, Value: Band{24, 40}},
	{Score: 13, Value: Band{32, 48}},
	{Score: 14, Value: Band{40, 64}},
	{Score: 15, Value: Band{48, 80}},
	{Score: 16, Value: Band{64, 96}},
	{Score: 17, Value: Band{80, 128}},
	{Score: 18, Value: Band{96, 160}},
	{Score: 19, Value: Band{128, 192}},
	{Score: 20, Value: Band{160, 256}},
	{Score: 21, Value: Band{192, 320}},
	{Score: 22, Value: Band{256, 384}},
	{Score: 23, Value: Band{320, 384}},
	{Score: 24, Value: Band{384, 384}},
}

// Obliquity in degrees by braking score. Scores at the extreme ends are
// caught before the lookup and handled by their own branches.
var obliquityTable = []tables.Row[Band]{
	{Score: 4, Value: Band{0, 0}},
	{Score: 5, Value: Band{46, 49}},
	{Score: 6, Value: Band{44, 48}},
	{Score: 7, Value: Band{42, 46}},
	{Score: 8, Value: Band{40, 44}},
	{Score: 9, Value: Band{38, 42}},
	{Score: 10, Value: Band{36, 40}},
	{Score: 11, Value: Band{34, 38}},
	{Score: 12, Value: Band{32, 36}},
	{Score: 13, Value: Band{30, 34}},
	{Score: 14, Value: Band{28, 32}},
	{Score: 15, Value: Band{26, 30}},
	{Score: 16, Value: Band{24, 28}},
	{Score: 17, Value: Band{22, 26}},
	{Score: 18, Value: Band{20, 24}},
	{Score: 19, Value: Band{18, 22}},
	{Score: 20, Value: Band{16, 20}},
	{Score: 21, Value: Band{14, 18}},
	{Score: 22, Value: Band{12, 16}},
	{Score: 23, Value: Band{10, 14}},
	{Score: 24, Value: Band{10, 12}},
	{Score: 25, Value: Band{0, 0}},
}

var extremeObliquityTable = []tables.Row[Band]{
	{Score: 2, Value: Band{50, 60}},
	{Score: 3, Value: Band{50, 70}},
	{Score: 4, Value: Band{60, 80}},
	{Score: 5, Value: Band{70, 80}},
}

var hydroCover = []tables.Row[hydroBand]{
	{Score: -5, Value: hydroBand{0, 0, WaterTrace}},
	{Score: -1, Value: hydroBand{0, 1, WaterMinimal}},
	{Score: 0, Value: hydroBand{0, 2, WaterMinimal}},
	{Score: 1, Value: hydroBand{1, 3, WaterMinimal}},
	{Score: 2, Value: hydroBand{2, 5, WaterMinimal}},
	{Score: 3, Value: hydroBand{3, 7.5, WaterMinimal}},
	{Score: 4, Value: hydroBand{5, 10, WaterModerate}},
	{Score: 5, Value: hydroBand{7.5, 20, WaterModerate}},
	{Score: 6, Value: hydroBand{10, 30, WaterModerate}},
	{Score: 7, Value: hydroBand{20, 40, WaterModerate}},
	{Score: 8, Value: hydroBand{30, 50, WaterModerate}},
	{Score: 9, Value: hydroBand{40, 55, WaterModerate}},
	{Score: 10, Value: hydroBand{50, 60, WaterModerate}},
	{Score: 11, Value: hydroBand{55, 65, WaterModerate}},
	{Score: 12, Value: hydroBand{60, 70, WaterExtensive}},
	{Score: 13, Value: hydroBand{65, 75, WaterExtensive}},
	{Score: 14, Value: hydroBand{70, 80, WaterExtensive}},
	{Score: 15, Value: hydroBand{75, 85, WaterExtensive}},
	{Score: 16, Value: hydroBand{80, 90, WaterExtensive}},
	{Score: 17, Value: hydroBand{85, 95, WaterExtensive}},
	{Score: 18, Value: hydroBand{90, 97.5, WaterExtensive}},
	{Score: 19, Value: hydroBand{95, 100, WaterExtensive}},
	{Score: 20, Value: hydroBand{100, 100, WaterMassive}},
}

var lithosphereTable = []tables.Row[Lithosphere]{
	{Score: 15, Value: LithMolten},
	{Score: 23, Value: LithSoft},
	{Score: 31, Value: LithEarlyPlate},
	{Score: 63, Value: LithMaturePlate},
	{Score: 87, Value: LithAncientPlate},
	{Score: 88, Value: LithSolid},
}

// Tidal stress flips the grading: the heavier the flexing, the younger the
// crust behaves.
var lithosphereStressed = []tables.Row[Lithosphere]{
	{Score: 200, Value: LithSolid},
	{Score: 630, Value: LithAncientPlate},
	{Score: 2000, Value: LithMaturePlate},
	{Score: 6300, Value: LithEarlyPlate},
	{Score: 20000, Value: LithSoft},
	{Score: 20001, Value: LithMolten},
}

// waterVapour maps surface temperature to the vapour-feedback addend.
var waterVapour = []tables.Row[int]{
	{Score: 259, Value: 0},
	{Score: 260, Value: 16},
	{Score: 262, Value: 17},
	{Score: 265, Value: 18},
	{Score: 268, Value: 19},
	{Score: 270, Value: 20},
	{Score: 273, Value: 21},
	{Score: 276, Value: 22},
	{Score: 279, Value: 23},
	{Score: 282, Value: 24},
	{Score: 286, Value: 25},
	{Score: 289, Value: 26},
	{Score: 293, Value: 27},
	{Score: 296, Value: 28},
	{Score: 300, Value: 29},
	{Score: 304, Value: 30},
	{Score: 309, Value: 31},
	{Score: 313, Value: 32},
	{Score: 318, Value: 33},
	{Score: 323, Value: 34},
	{Score: 328, Value: 35},
	{Score: 333, Value: 36},
	{Score: 100000, Value: 37},
}

// spectralMultiplier slows photosynthesis under redder stars. Scores are
// spectral ordinals (A0=0 .. M9=39); anchor rows sit at G2, G8, K5 and M2,
// the rest interpolate between them.
var spectralMultiplier = []tables.Row[float64]{
	{Score: 9, Value: 0.90},
	{Score: 11, Value: 0.95},
	{Score: 13, Value: 1.00},
	{Score: 16, Value: 1.02},
	{Score: 19, Value: 1.05},
	{Score: 21, Value: 1.10},
	{Score: 23, Value: 1.35},
	{Score: 26, Value: 1.60},
	{Score: 28, Value: 1.80},
	{Score: 31, Value: 2.50},
	{Score: 33, Value: 3.00},
	{Score: 36, Value: 3.50},
	{Score: 39, Value: 4.00},
}
