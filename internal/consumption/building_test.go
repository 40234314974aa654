package consumption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonAreaConsumption_Yard(t *testing.T) {
	areas := NewCommonAreaUsage()
	areas[AreaYard] = AreaUsage{AreaM2: 10, WeeklyWashes: 2}

	b := NewBuilding(nil, areas, 0, 0)
	assert.InDelta(t, 0.10, b.CommonAreaConsumption(), 1e-9)
}

func TestCommonAreaConsumption_Linear(t *testing.T) {
	base := CommonAreaUsage{AreaGarage: {AreaM2: 35.5, WeeklyWashes: 3}}
	doubleArea := CommonAreaUsage{AreaGarage: {AreaM2: 71, WeeklyWashes: 3}}
	doubleFreq := CommonAreaUsage{AreaGarage: {AreaM2: 35.5, WeeklyWashes: 6}}

	c := NewBuilding(nil, base, 0, 0).CommonAreaConsumption()
	assert.InDelta(t, 2*c, NewBuilding(nil, doubleArea, 0, 0).CommonAreaConsumption(), 1e-9)
	assert.InDelta(t, 2*c, NewBuilding(nil, doubleFreq, 0, 0).CommonAreaConsumption(), 1e-9)
}

func TestCommonAreaConsumption_MissingAreaIsZero(t *testing.T) {
	b := NewBuilding(nil, nil, 0, 0)
	assert.Zero(t, b.CommonAreaConsumption())
}

func TestBuildingReport_SingleUnitScenario(t *testing.T) {
	units := []Unit{NewUnit(2, false, nil, 0, 0)}
	b := NewBuilding(units, NewCommonAreaUsage(), 10, 5)

	r := b.Report()
	assert.InDelta(t, 9.24, r.EstimatedM3, 1e-9)
	assert.InDelta(t, 0.76, r.DifferenceM3, 1e-9)

	fields := r.Fields()
	require.Len(t, fields, 6)
	assert.Equal(t, []Field{
		{Label: LabelEstimatedM3, Value: "9.24"},
		{Label: LabelRealM3, Value: "10.00"},
		{Label: LabelDifferenceM3, Value: "0.76"},
		{Label: LabelEstimatedCost, Value: "46.20"},
		{Label: LabelRealCost, Value: "50.00"},
		{Label: LabelDifferenceCost, Value: "3.80"},
	}, fields)
}

func TestBuildingReport_WasherAddsToEstimate(t *testing.T) {
	units := []Unit{NewUnit(2, false, nil, 1, 4)}
	r := NewBuilding(units, NewCommonAreaUsage(), 10, 5).Report()

	assert.InDelta(t, 9.78, r.EstimatedM3, 1e-9)
	assert.Equal(t, "9.78", r.Fields()[0].Value)
}

func TestBuildingReport_DifferenceIsExact(t *testing.T) {
	units := []Unit{
		NewUnit(3, true, []int{123, 7}, 2, 9),
		NewUnit(1, false, nil, 0, 0),
	}
	areas := CommonAreaUsage{
		AreaPool:    {AreaM2: 12.345, WeeklyWashes: 1},
		AreaLeisure: {AreaM2: 80, WeeklyWashes: 2},
	}
	b := NewBuilding(units, areas, 31.7, 7.13)

	r := b.Report()
	assert.Equal(t, 31.7-b.EstimatedTotalConsumption(), r.DifferenceM3)
	assert.Equal(t, r.DifferenceM3*7.13, r.DifferenceCost)
}

func TestBuildingReport_NegativeDifferenceKeepsSign(t *testing.T) {
	units := []Unit{NewUnit(4, false, nil, 0, 0)}
	r := NewBuilding(units, nil, 10, 2).Report()

	assert.Less(t, r.DifferenceM3, 0.0)
	assert.Equal(t, "-8.48", r.Fields()[2].Value)
}

func TestBuildingReport_Idempotent(t *testing.T) {
	units := []Unit{NewUnit(2, true, []int{40}, 1, 8)}
	areas := CommonAreaUsage{AreaSocial: {AreaM2: 51.2, WeeklyWashes: 3}}
	b := NewBuilding(units, areas, 18, 4.5)

	assert.Equal(t, b.Report(), b.Report())
	assert.Equal(t, b.Report().Fields(), b.Report().Fields())
}

func TestNewBuilding_OwnsInputs(t *testing.T) {
	units := []Unit{NewUnit(1, false, []int{10}, 0, 0)}
	areas := CommonAreaUsage{AreaYard: {AreaM2: 10, WeeklyWashes: 1}}
	b := NewBuilding(units, areas, 0, 1)
	before := b.EstimatedTotalConsumption()

	units[0].ExtraActivities[0] = 5000
	units[0].Occupants = 40
	areas[AreaYard] = AreaUsage{AreaM2: 1000, WeeklyWashes: 7}

	assert.Equal(t, before, b.EstimatedTotalConsumption())
}

func TestParseArea(t *testing.T) {
	a, ok := ParseArea("pool_area")
	assert.True(t, ok)
	assert.Equal(t, AreaPool, a)
	assert.Equal(t, "área da piscina", a.Label())

	_, ok = ParseArea("rooftop")
	assert.False(t, ok)
}
