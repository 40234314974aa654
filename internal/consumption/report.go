package consumption

import "fmt"

// Report field labels, in display order.
const (
	LabelEstimatedM3    = "Consumo estimado (m³)"
	LabelRealM3         = "Consumo real (m³)"
	LabelDifferenceM3   = "Diferença (m³)"
	LabelEstimatedCost  = "Valor estimado (R$)"
	LabelRealCost       = "Valor real (R$)"
	LabelDifferenceCost = "Economia possível (R$)"
)

// Report is the estimated versus real comparison of a building. Values are
// unrounded; use Fields for display.
type Report struct {
	EstimatedM3    float64 `json:"estimated_m3"`
	RealM3         float64 `json:"real_m3"`
	DifferenceM3   float64 `json:"difference_m3"`
	EstimatedCost  float64 `json:"estimated_cost"`
	RealCost       float64 `json:"real_cost"`
	DifferenceCost float64 `json:"difference_cost"`
}

// Field is one labeled, formatted report value.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Fields returns the six report values formatted with two decimals.
func (r Report) Fields() []Field {
	return []Field{
		{Label: LabelEstimatedM3, Value: formatAmount(r.EstimatedM3)},
		{Label: LabelRealM3, Value: formatAmount(r.RealM3)},
		{Label: LabelDifferenceM3, Value: formatAmount(r.DifferenceM3)},
		{Label: LabelEstimatedCost, Value: formatAmount(r.EstimatedCost)},
		{Label: LabelRealCost, Value: formatAmount(r.RealCost)},
		{Label: LabelDifferenceCost, Value: formatAmount(r.DifferenceCost)},
	}
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
