// Package finance holds the pure financial derivations for loading advance
// vouchers and the validation rules for acknowledging returned freight.
// Everything here is deterministic over its inputs; persistence and HTTP
// concerns live elsewhere.
package finance

import (
	"strings"

	"github.com/shopspring/decimal"

	"ktlogistics/models"
)

// CommissionPct is the commission charged on commissioned (Dedicated/Market)
// trips, in percent.
var CommissionPct = decimal.NewFromInt(6)

// InvoiceLine is one invoice of a trip as the calculator sees it.
type InvoiceLine struct {
	Quantity  decimal.Decimal
	KTFreight decimal.Decimal
}

// TripInput carries every figure the derivation depends on. Expense fields
// default to zero when absent from the request.
type TripInput struct {
	OwnerType       models.OwnerType
	VehicleBodyType string

	Lines []InvoiceLine

	DriverBata  decimal.Decimal
	Unloading   decimal.Decimal
	Tarpaulin   decimal.Decimal
	CityTax     decimal.Decimal
	Maintenance decimal.Decimal

	FuelLitre decimal.Decimal
	FuelRate  decimal.Decimal

	DriverLoadingAdvance decimal.Decimal
}

// TripResult is the full derived set persisted on the voucher header.
type TripResult struct {
	LineIFAs []decimal.Decimal

	SumIFAs            decimal.Decimal
	CommissionPct      decimal.Decimal
	CommissionAmount   decimal.Decimal
	EffectiveTarpaulin decimal.Decimal
	ExpenseSum         decimal.Decimal
	PredefinedExpenses decimal.Decimal
	GrossAmount        decimal.Decimal
	FuelAmount         decimal.Decimal
	TripBalance        decimal.Decimal
}

// IFAAmount is the invoice freight amount of one line: quantity * kt_freight.
func IFAAmount(quantity, ktFreight decimal.Decimal) decimal.Decimal {
	return quantity.Mul(ktFreight)
}

// IsContainerBody reports whether the body type denotes a container build.
// Container bodies never carry a tarpaulin charge.
func IsContainerBody(bodyType string) bool {
	return strings.Contains(strings.ToLower(bodyType), "container")
}

// Derive computes every financial field of a loading advance from its trip
// inputs. No rounding happens here; display layers round for presentation.
func Derive(in TripInput) TripResult {
	var res TripResult

	res.LineIFAs = make([]decimal.Decimal, len(in.Lines))
	for i, l := range in.Lines {
		ifa := IFAAmount(l.Quantity, l.KTFreight)
		res.LineIFAs[i] = ifa
		res.SumIFAs = res.SumIFAs.Add(ifa)
	}

	commissioned := in.OwnerType.Commissioned()
	if commissioned {
		res.CommissionPct = CommissionPct
	}
	res.CommissionAmount = res.SumIFAs.Mul(res.CommissionPct).Div(decimal.NewFromInt(100))

	res.EffectiveTarpaulin = in.Tarpaulin
	if IsContainerBody(in.VehicleBodyType) {
		res.EffectiveTarpaulin = decimal.Zero
	}

	res.ExpenseSum = in.DriverBata.
		Add(in.Unloading).
		Add(res.EffectiveTarpaulin).
		Add(in.CityTax).
		Add(in.Maintenance)

	if commissioned {
		res.GrossAmount = res.CommissionAmount.Sub(res.ExpenseSum)
	} else {
		res.GrossAmount = res.SumIFAs.Sub(res.ExpenseSum)
	}

	res.PredefinedExpenses = res.CommissionAmount.
		Add(in.Unloading).
		Add(res.EffectiveTarpaulin).
		Add(in.CityTax).
		Add(in.Maintenance)

	res.FuelAmount = in.FuelLitre.Mul(in.FuelRate)
	res.TripBalance = in.DriverLoadingAdvance.Sub(res.FuelAmount).Sub(res.GrossAmount)

	return res
}
