package consumption

// Consumption model constants. Volumes are in liters unless stated otherwise.
const (
	LitersPerPersonPerDay = 154 // residential per-capita daily use
	DaysPerMonth          = 30  // billing month
	SpaFillLiters         = 300 // one hydromassage tub fill
	SpaFillsPerMonth      = 4   // flat add-on, not occupancy-scaled
	LitersPerWashCycle    = 135 // one washing machine cycle
	LitersPerM2PerWash    = 5   // floor washing rate for common areas
	LitersPerM3           = 1000.0
)
