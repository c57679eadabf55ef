package sidechannel

// Game distinguishes the two RNG generations this engine covers; only the
// coin-flip predictor's availability depends on it (DPPt used an
// MT-seeded coin flip that HGSS's engine does not expose).
type Game int

const (
	GameDiamondPearlPlatinum Game = iota
	GameHeartGoldSoulSilver
)

// johtoRoutes is the mod-16 lookup table for roamers 0 and 1 (Raikou,
// Entei), indexed by draw % 16.
var johtoRoutes = [16]string{
	"Route 29", "Route 30", "Route 31", "Route 32",
	"Route 33", "Route 34", "Route 35", "Route 36",
	"Route 37", "Route 38", "Route 39", "Route 42",
	"Route 43", "Route 44", "Route 45", "Route 46",
}

// kantoRoutes is the mod-25 lookup table for roamer 2 (Latios/Latias),
// indexed by draw % 25.
var kantoRoutes = [25]string{
	"Route 1", "Route 2", "Route 3", "Route 4", "Route 5",
	"Route 6", "Route 7", "Route 8", "Route 9", "Route 10",
	"Route 11", "Route 12", "Route 13", "Route 14", "Route 15",
	"Route 16", "Route 17", "Route 18", "Route 19", "Route 20",
	"Route 21", "Route 22", "Route 23", "Route 24", "Route 25",
}
