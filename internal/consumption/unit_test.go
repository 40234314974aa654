package consumption

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitMonthlyConsumption_BaseOnly(t *testing.T) {
	for _, occupants := range []int{0, 1, 2, 5, 17} {
		u := NewUnit(occupants, false, nil, 0, 0)
		want := float64(occupants*154*30) / 1000
		assert.InDelta(t, want, u.MonthlyConsumption(), 1e-9, "occupants=%d", occupants)
	}
}

func TestUnitMonthlyConsumption_SpaIsFlat(t *testing.T) {
	for _, occupants := range []int{1, 3, 8} {
		without := NewUnit(occupants, false, nil, 0, 0).MonthlyConsumption()
		with := NewUnit(occupants, true, nil, 0, 0).MonthlyConsumption()
		assert.InDelta(t, 1.2, with-without, 1e-9, "occupants=%d", occupants)
	}
}

func TestUnitMonthlyConsumption_ExtrasAndWashers(t *testing.T) {
	u := NewUnit(2, false, []int{500, 250}, 1, 4)

	// 9240 base + 750 extras + 540 washer
	assert.Equal(t, 10530, u.MonthlyLiters())
	assert.InDelta(t, 10.53, u.MonthlyConsumption(), 1e-9)
}

func TestNewUnit_CopiesExtras(t *testing.T) {
	extras := []int{100}
	u := NewUnit(1, false, extras, 0, 0)
	extras[0] = 9000

	assert.Equal(t, []int{100}, u.ExtraActivities)
}

func TestUnit_ZeroValueHasNoExtras(t *testing.T) {
	var a, b Unit
	a.Occupants = 1
	b.Occupants = 1

	assert.Empty(t, a.ExtraActivities)
	assert.Equal(t, a.MonthlyConsumption(), b.MonthlyConsumption())
}
