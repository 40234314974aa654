package consumption

// Area identifies one of the fixed shared spaces of a building.
type Area string

const (
	AreaYard    Area = "yard"
	AreaGarage  Area = "garage"
	AreaSocial  Area = "social_area"
	AreaLeisure Area = "leisure_area"
	AreaPool    Area = "pool_area"
)

// Areas lists every common area in display order.
var Areas = []Area{AreaYard, AreaGarage, AreaSocial, AreaLeisure, AreaPool}

var areaLabels = map[Area]string{
	AreaYard:    "quintal",
	AreaGarage:  "garagem",
	AreaSocial:  "área social",
	AreaLeisure: "área de lazer",
	AreaPool:    "área da piscina",
}

// Label returns the operator-facing name of the area.
func (a Area) Label() string {
	if l, ok := areaLabels[a]; ok {
		return l
	}
	return string(a)
}

// ParseArea resolves a wire key into a known Area.
func ParseArea(key string) (Area, bool) {
	a := Area(key)
	_, ok := areaLabels[a]
	return a, ok
}

// AreaUsage describes how a common area is washed.
type AreaUsage struct {
	AreaM2       float64 `json:"area_m2" yaml:"area_m2"`
	WeeklyWashes int     `json:"weekly_wash_frequency" yaml:"weekly_wash_frequency"`
}

// Liters returns the water used by the area under the model.
func (u AreaUsage) Liters() float64 {
	return u.AreaM2 * LitersPerM2PerWash * float64(u.WeeklyWashes)
}

// CommonAreaUsage maps each fixed area to its usage. Areas that are absent
// contribute nothing.
type CommonAreaUsage map[Area]AreaUsage

// NewCommonAreaUsage returns a mapping holding every fixed area with zero usage.
func NewCommonAreaUsage() CommonAreaUsage {
	out := make(CommonAreaUsage, len(Areas))
	for _, a := range Areas {
		out[a] = AreaUsage{}
	}
	return out
}

// Liters sums the modeled use of all areas in the fixed order of Areas.
func (c CommonAreaUsage) Liters() float64 {
	total := 0.0
	for _, a := range Areas {
		total += c[a].Liters()
	}
	return total
}

func (c CommonAreaUsage) clone() CommonAreaUsage {
	out := NewCommonAreaUsage()
	for _, a := range Areas {
		if u, ok := c[a]; ok {
			out[a] = u
		}
	}
	return out
}
