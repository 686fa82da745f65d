package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ktlogistics/models"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestIFAAmount(t *testing.T) {
	assert.True(t, d("5000").Equal(IFAAmount(d("10"), d("500"))))
	assert.True(t, d("0").Equal(IFAAmount(d("0"), d("500"))))
	assert.True(t, d("1237.5").Equal(IFAAmount(d("2.5"), d("495"))))
}

func TestIsContainerBody(t *testing.T) {
	assert.True(t, IsContainerBody("Container"))
	assert.True(t, IsContainerBody("HQ container"))
	assert.True(t, IsContainerBody("CONTAINER 20ft"))
	assert.False(t, IsContainerBody("Open body"))
	assert.False(t, IsContainerBody(""))
}

func TestDeriveOwnTrip(t *testing.T) {
	res := Derive(TripInput{
		OwnerType:       models.OwnerOwn,
		VehicleBodyType: "Open body",
		Lines: []InvoiceLine{
			{Quantity: d("10"), KTFreight: d("500")},
		},
		DriverBata:           d("200"),
		Unloading:            d("100"),
		FuelLitre:            d("100"),
		FuelRate:             d("95"),
		DriverLoadingAdvance: d("7000"),
	})

	require.Len(t, res.LineIFAs, 1)
	assert.True(t, d("5000").Equal(res.SumIFAs), "sum_ifas = %s", res.SumIFAs)
	assert.True(t, res.CommissionPct.IsZero())
	assert.True(t, res.CommissionAmount.IsZero())
	assert.True(t, d("300").Equal(res.ExpenseSum), "expense_sum = %s", res.ExpenseSum)
	assert.True(t, d("4700").Equal(res.GrossAmount), "gross = %s", res.GrossAmount)
	assert.True(t, d("100").Equal(res.PredefinedExpenses))
	assert.True(t, d("9500").Equal(res.FuelAmount))
	assert.True(t, d("-7200").Equal(res.TripBalance), "trip_balance = %s", res.TripBalance)
}

func TestDeriveDedicatedTrip(t *testing.T) {
	res := Derive(TripInput{
		OwnerType:       models.OwnerDedicated,
		VehicleBodyType: "Open body",
		Lines: []InvoiceLine{
			{Quantity: d("10"), KTFreight: d("500")},
		},
		DriverBata:           d("200"),
		Unloading:            d("100"),
		FuelLitre:            d("50"),
		FuelRate:             d("50"),
		DriverLoadingAdvance: d("0"),
	})

	assert.True(t, d("6").Equal(res.CommissionPct))
	assert.True(t, d("300").Equal(res.CommissionAmount), "commission = %s", res.CommissionAmount)
	assert.True(t, d("0").Equal(res.GrossAmount), "gross = %s", res.GrossAmount)
	assert.True(t, d("400").Equal(res.PredefinedExpenses))
	assert.True(t, d("-2500").Equal(res.TripBalance), "trip_balance = %s", res.TripBalance)
}

func TestDeriveMarketMatchesDedicated(t *testing.T) {
	in := TripInput{
		OwnerType: models.OwnerDedicated,
		Lines: []InvoiceLine{
			{Quantity: d("12"), KTFreight: d("480")},
		},
		DriverBata: d("250"),
		Unloading:  d("150"),
	}
	dedicated := Derive(in)
	in.OwnerType = models.OwnerMarket
	market := Derive(in)

	assert.True(t, dedicated.CommissionAmount.Equal(market.CommissionAmount))
	assert.True(t, dedicated.GrossAmount.Equal(market.GrossAmount))
	assert.True(t, dedicated.TripBalance.Equal(market.TripBalance))
}

func TestDeriveContainerZeroesTarpaulin(t *testing.T) {
	in := TripInput{
		OwnerType:       models.OwnerOwn,
		VehicleBodyType: "Container",
		Lines: []InvoiceLine{
			{Quantity: d("10"), KTFreight: d("500")},
		},
		DriverBata: d("200"),
		Unloading:  d("100"),
		Tarpaulin:  d("150"),
	}
	res := Derive(in)
	assert.True(t, res.EffectiveTarpaulin.IsZero())
	assert.True(t, d("300").Equal(res.ExpenseSum), "tarpaulin must not count for container bodies")

	in.VehicleBodyType = "Open body"
	res = Derive(in)
	assert.True(t, d("150").Equal(res.EffectiveTarpaulin))
	assert.True(t, d("450").Equal(res.ExpenseSum))
}

func TestDeriveMultipleLines(t *testing.T) {
	res := Derive(TripInput{
		OwnerType: models.OwnerAttached,
		Lines: []InvoiceLine{
			{Quantity: d("4"), KTFreight: d("500")},
			{Quantity: d("6"), KTFreight: d("500")},
		},
	})
	require.Len(t, res.LineIFAs, 2)
	assert.True(t, d("2000").Equal(res.LineIFAs[0]))
	assert.True(t, d("3000").Equal(res.LineIFAs[1]))
	assert.True(t, d("5000").Equal(res.SumIFAs))
	assert.True(t, res.CommissionAmount.IsZero(), "attached owners are not commissioned")
}

func TestDeriveNoLines(t *testing.T) {
	res := Derive(TripInput{OwnerType: models.OwnerOwn})
	assert.Empty(t, res.LineIFAs)
	assert.True(t, res.SumIFAs.IsZero())
	assert.True(t, res.GrossAmount.IsZero())
	assert.True(t, res.TripBalance.IsZero())
}
