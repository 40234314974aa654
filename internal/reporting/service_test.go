package reporting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bher20/ecoagua/internal/document"
	"github.com/bher20/ecoagua/internal/intake"
	"github.com/bher20/ecoagua/internal/storage"
	"github.com/bher20/ecoagua/internal/tariffs"
)

func price(v float64) *float64 { return &v }

func TestGenerate_SingleUnitScenario(t *testing.T) {
	svc := NewService(nil, nil)
	res, err := svc.Generate(context.Background(), intake.Request{
		Client:            document.Client{Name: "Ed. Primavera"},
		PricePerM3:        price(5),
		RealConsumptionM3: 10,
		Units:             []intake.UnitInput{{Occupants: 2}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 1, res.Units)
	assert.Equal(t, 5.0, res.PricePerM3)
	assert.Equal(t, "0.76", res.Fields[2].Value)
	assert.Equal(t, "Cliente / Condomínio: Ed. Primavera", res.Lines()[2].Text)
}

func TestGenerate_IndependentRuns(t *testing.T) {
	svc := NewService(nil, nil)
	req := intake.Request{
		PricePerM3:        price(3),
		RealConsumptionM3: 20,
		Units:             []intake.UnitInput{{Occupants: 3, HasSpa: true}},
	}

	a, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	b, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Report, b.Report)
}

func TestGenerate_UsesTariffCatalog(t *testing.T) {
	ctx := context.Background()
	cat := tariffs.NewService(storage.NewMemory(), nil)
	require.NoError(t, cat.Seed(ctx, []tariffs.Descriptor{{Key: "demo", PricePerM3: 5}}))

	svc := NewService(cat, nil)
	res, err := svc.Generate(ctx, intake.Request{
		Tariff:            "demo",
		RealConsumptionM3: 10,
		Units:             []intake.UnitInput{{Occupants: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "46.20", res.Fields[3].Value)

	_, err = svc.Generate(ctx, intake.Request{
		Tariff:            "unknown",
		RealConsumptionM3: 10,
		Units:             []intake.UnitInput{{Occupants: 2}},
	})
	assert.ErrorIs(t, err, tariffs.ErrTariffNotFound)
}

func TestGenerate_InvalidInput(t *testing.T) {
	svc := NewService(nil, nil)
	_, err := svc.Generate(context.Background(), intake.Request{PricePerM3: price(1)})
	assert.ErrorIs(t, err, intake.ErrInvalidInput)
}

func TestRender(t *testing.T) {
	svc := NewService(nil, nil)
	res, err := svc.Generate(context.Background(), intake.Request{
		PricePerM3:        price(5),
		RealConsumptionM3: 10,
		Units:             []intake.UnitInput{{Occupants: 2}},
	})
	require.NoError(t, err)

	data, r, err := svc.Render(res, "txt")
	require.NoError(t, err)
	assert.Equal(t, "txt", r.Format())
	assert.Contains(t, string(data), "Valor real (R$): 50.00")

	data, r, err = svc.Render(res, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.NotEmpty(t, data)

	_, _, err = svc.Render(res, "odt")
	assert.ErrorIs(t, err, document.ErrUnknownFormat)
}
