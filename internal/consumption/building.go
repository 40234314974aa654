package consumption

// Building aggregates the apartments and shared areas of one reporting run.
type Building struct {
	units       []Unit
	commonAreas CommonAreaUsage
	realM3      float64
	pricePerM3  float64
}

// NewBuilding takes a private copy of units and areas, so later changes by
// the caller do not affect the building.
func NewBuilding(units []Unit, areas CommonAreaUsage, realM3, pricePerM3 float64) *Building {
	owned := make([]Unit, len(units))
	for i, u := range units {
		owned[i] = u.clone()
	}
	return &Building{
		units:       owned,
		commonAreas: areas.clone(),
		realM3:      realM3,
		pricePerM3:  pricePerM3,
	}
}

// Units returns a copy of the building units.
func (b *Building) Units() []Unit {
	out := make([]Unit, len(b.units))
	for i, u := range b.units {
		out[i] = u.clone()
	}
	return out
}

func (b *Building) RealConsumption() float64 { return b.realM3 }

func (b *Building) PricePerM3() float64 { return b.pricePerM3 }

// CommonAreaConsumption returns the common-area use in m³.
func (b *Building) CommonAreaConsumption() float64 {
	return b.commonAreas.Liters() / LitersPerM3
}

// EstimatedTotalConsumption returns the modeled building use in m³.
func (b *Building) EstimatedTotalConsumption() float64 {
	total := 0.0
	for _, u := range b.units {
		total += u.MonthlyConsumption()
	}
	return total + b.CommonAreaConsumption()
}

// Report compares the estimate against the metered consumption. A positive
// difference means the bill exceeds the estimate.
func (b *Building) Report() Report {
	estimated := b.EstimatedTotalConsumption()
	difference := b.realM3 - estimated
	return Report{
		EstimatedM3:    estimated,
		RealM3:         b.realM3,
		DifferenceM3:   difference,
		EstimatedCost:  estimated * b.pricePerM3,
		RealCost:       b.realM3 * b.pricePerM3,
		DifferenceCost: difference * b.pricePerM3,
	}
}
