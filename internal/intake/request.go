// Package intake holds the fully collected operator input for one report and
// turns it into core consumption values. All range checks happen here so the
// consumption package can stay total.
package intake

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/bher20/ecoagua/internal/consumption"
	"github.com/bher20/ecoagua/internal/document"
)

// Upper bounds on per-unit counts. They keep the integer liter sums in range.
const (
	MaxOccupants       = 1000
	MaxExtraLiters     = 1_000_000
	MaxWashers         = 1000
	MaxCyclesPerWasher = 1000
)

// UnitInput is the form data of one apartment.
type UnitInput struct {
	Occupants            int   `json:"occupants" yaml:"occupants"`
	HasSpa               bool  `json:"has_spa" yaml:"has_spa"`
	HasExtraActivities   bool  `json:"has_extra_activities" yaml:"has_extra_activities"`
	ExtraActivities      []int `json:"extra_activities,omitempty" yaml:"extra_activities,omitempty"`
	WasherCount          int   `json:"washer_count" yaml:"washer_count"`
	WasherCyclesPerMonth int   `json:"washer_cycles_per_month" yaml:"washer_cycles_per_month"`
}

// Request is everything an operator submits for a report.
type Request struct {
	Client            document.Client                  `json:"client" yaml:"client"`
	PricePerM3        *float64                         `json:"price_per_m3,omitempty" yaml:"price_per_m3,omitempty"`
	Tariff            string                           `json:"tariff,omitempty" yaml:"tariff,omitempty"`
	RealConsumptionM3 float64                          `json:"real_consumption_m3" yaml:"real_consumption_m3"`
	Units             []UnitInput                      `json:"units" yaml:"units"`
	CommonAreas       map[string]consumption.AreaUsage `json:"common_areas,omitempty" yaml:"common_areas,omitempty"`
}

// PriceResolver looks up the per-m³ price of a named tariff.
type PriceResolver interface {
	PricePerM3(ctx context.Context, tariff string) (float64, error)
}

// Validate reports every out-of-range field at once.
func (r *Request) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	switch {
	case r.PricePerM3 == nil && r.Tariff == "":
		add("price_per_m3 or tariff is required")
	case r.PricePerM3 != nil && r.Tariff != "":
		add("price_per_m3 and tariff are mutually exclusive")
	case r.PricePerM3 != nil && !nonNegative(*r.PricePerM3):
		add("price_per_m3 must be a non-negative number")
	}
	if !nonNegative(r.RealConsumptionM3) {
		add("real_consumption_m3 must be a non-negative number")
	}

	if len(r.Units) == 0 {
		add("at least one unit is required")
	}
	for i, u := range r.Units {
		n := i + 1
		if u.Occupants < 1 {
			add("units[%d].occupants must be at least 1", n)
		} else if u.Occupants > MaxOccupants {
			add("units[%d].occupants must be at most %d", n, MaxOccupants)
		}
		if u.HasExtraActivities {
			if len(u.ExtraActivities) == 0 {
				add("units[%d].extra_activities needs at least one entry", n)
			}
			for j, liters := range u.ExtraActivities {
				if liters < 0 {
					add("units[%d].extra_activities[%d] must be non-negative", n, j+1)
				} else if liters > MaxExtraLiters {
					add("units[%d].extra_activities[%d] must be at most %d", n, j+1, MaxExtraLiters)
				}
			}
		}
		if u.WasherCount < 0 {
			add("units[%d].washer_count must be non-negative", n)
		} else if u.WasherCount > MaxWashers {
			add("units[%d].washer_count must be at most %d", n, MaxWashers)
		}
		if u.WasherCyclesPerMonth < 0 {
			add("units[%d].washer_cycles_per_month must be non-negative", n)
		} else if u.WasherCyclesPerMonth > MaxCyclesPerWasher {
			add("units[%d].washer_cycles_per_month must be at most %d", n, MaxCyclesPerWasher)
		}
	}

	keys := make([]string, 0, len(r.CommonAreas))
	for k := range r.CommonAreas {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		usage := r.CommonAreas[k]
		if _, ok := consumption.ParseArea(k); !ok {
			add("common_areas: unknown area %q", k)
			continue
		}
		if !nonNegative(usage.AreaM2) {
			add("common_areas.%s.area_m2 must be a non-negative number", k)
		}
		if usage.WeeklyWashes < 0 {
			add("common_areas.%s.weekly_wash_frequency must be non-negative", k)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ResolvePrice returns the inline price or, failing that, the tariff price.
func (r *Request) ResolvePrice(ctx context.Context, prices PriceResolver) (float64, error) {
	if r.PricePerM3 != nil {
		return *r.PricePerM3, nil
	}
	if prices == nil {
		return 0, fmt.Errorf("resolve tariff %q: no tariff catalog configured", r.Tariff)
	}
	p, err := prices.PricePerM3(ctx, r.Tariff)
	if err != nil {
		return 0, fmt.Errorf("resolve tariff %q: %w", r.Tariff, err)
	}
	return p, nil
}

// Assemble validates the request and builds the core building value.
func (r *Request) Assemble(ctx context.Context, prices PriceResolver) (*consumption.Building, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	price, err := r.ResolvePrice(ctx, prices)
	if err != nil {
		return nil, err
	}

	units := make([]consumption.Unit, 0, len(r.Units))
	for _, u := range r.Units {
		var extras []int
		if u.HasExtraActivities {
			extras = u.ExtraActivities
		}
		units = append(units, consumption.NewUnit(u.Occupants, u.HasSpa, extras, u.WasherCount, u.WasherCyclesPerMonth))
	}

	areas := consumption.NewCommonAreaUsage()
	for k, usage := range r.CommonAreas {
		a, _ := consumption.ParseArea(k)
		areas[a] = usage
	}

	return consumption.NewBuilding(units, areas, r.RealConsumptionM3, price), nil
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
