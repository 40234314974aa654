package consumption

import "slices"

// Unit is one apartment in the building.
type Unit struct {
	Occupants            int
	HasSpa               bool
	ExtraActivities      []int // liters per month, one entry per declared activity
	WasherCount          int
	WasherCyclesPerMonth int
}

// NewUnit returns a Unit that owns its own copy of extraActivities.
func NewUnit(occupants int, hasSpa bool, extraActivities []int, washerCount, washerCyclesPerMonth int) Unit {
	return Unit{
		Occupants:            occupants,
		HasSpa:               hasSpa,
		ExtraActivities:      slices.Clone(extraActivities),
		WasherCount:          washerCount,
		WasherCyclesPerMonth: washerCyclesPerMonth,
	}
}

// MonthlyLiters returns the modeled monthly use of the unit in liters.
func (u Unit) MonthlyLiters() int {
	liters := u.Occupants * LitersPerPersonPerDay * DaysPerMonth
	if u.HasSpa {
		liters += SpaFillLiters * SpaFillsPerMonth
	}
	for _, extra := range u.ExtraActivities {
		liters += extra
	}
	liters += u.WasherCount * u.WasherCyclesPerMonth * LitersPerWashCycle
	return liters
}

// MonthlyConsumption returns the modeled monthly use of the unit in m³.
func (u Unit) MonthlyConsumption() float64 {
	return float64(u.MonthlyLiters()) / LitersPerM3
}

func (u Unit) clone() Unit {
	u.ExtraActivities = slices.Clone(u.ExtraActivities)
	return u
}
