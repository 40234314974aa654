package tariffs

import (
	"encoding/json"
	"os"
)

// Descriptor is a seed entry for the tariff catalog.
type Descriptor struct {
	Key        string  `json:"key" yaml:"key"`
	Name       string  `json:"name" yaml:"name"`
	PricePerM3 float64 `json:"price_per_m3" yaml:"price_per_m3"`
	Currency   string  `json:"currency,omitempty" yaml:"currency,omitempty"`
	Notes      string  `json:"notes,omitempty" yaml:"notes,omitempty"`
}

const tariffsEnv = "ECOAGUA_TARIFFS_JSON"

// DefaultCurrency is applied to tariffs that do not name one.
const DefaultCurrency = "BRL"

func builtinTariffs() []Descriptor {
	return []Descriptor{
		{
			Key:        "demo",
			Name:       "Tarifa de demonstração",
			PricePerM3: 5.0,
			Currency:   DefaultCurrency,
			Notes:      "Flat residential price for trying the simulator",
		},
	}
}

// Defaults returns the seed tariffs. ECOAGUA_TARIFFS_JSON replaces the
// built-in list when it holds a non-empty JSON array.
func Defaults() []Descriptor {
	raw := os.Getenv(tariffsEnv)
	if raw == "" {
		return builtinTariffs()
	}
	var out []Descriptor
	if err := json.Unmarshal([]byte(raw), &out); err != nil || len(out) == 0 {
		return builtinTariffs()
	}
	return out
}
