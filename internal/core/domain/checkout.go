package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned for carts with no active items or an inactive cart.
var ErrEmptyCart = errors.New("cart is empty or inactive")

// FeeConfig is the fee and tax schedule applied at checkout.
type FeeConfig struct {
	DeliveryFee    decimal.Decimal
	ServiceFeeMin  decimal.Decimal
	ServiceFeeRate decimal.Decimal
	TaxRate        decimal.Decimal
}

// NewFeeConfig builds a FeeConfig from configuration floats.
func NewFeeConfig(deliveryFee, serviceFeeMin, serviceFeeRate, taxRate float64) FeeConfig {
	return FeeConfig{
		DeliveryFee:    decimal.NewFromFloat(deliveryFee),
		ServiceFeeMin:  decimal.NewFromFloat(serviceFeeMin),
		ServiceFeeRate: decimal.NewFromFloat(serviceFeeRate),
		TaxRate:        decimal.NewFromFloat(taxRate),
	}
}

// Totals holds every intermediate checkout figure.
type Totals struct {
	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	AdjustedSubtotal decimal.Decimal `json:"adjusted_subtotal"`
	DeliveryFee      decimal.Decimal `json:"delivery_fee"`
	ServiceFee       decimal.Decimal `json:"service_fee"`
	Tax              decimal.Decimal `json:"tax"`
	Total            decimal.Decimal `json:"total"`
}

// MerchantShare is what the merchant is owed for the goods.
func (t Totals) MerchantShare() decimal.Decimal {
	return t.AdjustedSubtotal
}

// PlatformShare is the fees and tax collected on top of the goods.
func (t Totals) PlatformShare() decimal.Decimal {
	return t.Total.Sub(t.AdjustedSubtotal)
}

// CalculateTotals derives checkout totals from a cart snapshot. Each stage is
// computed exactly and rounded to cents before feeding the next one.
func CalculateTotals(cart *CartSnapshot, fees FeeConfig) (Totals, error) {
	if cart == nil || !cart.IsActive {
		return Totals{}, ErrEmptyCart
	}
	items := cart.ActiveItems()
	if len(items) == 0 {
		return Totals{}, ErrEmptyCart
	}

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	subtotal = RoundMoney(subtotal)

	discount := RoundMoney(decimal.Max(cart.Discount, decimal.Zero))
	adjusted := decimal.Max(subtotal.Sub(discount), decimal.Zero)

	delivery := RoundMoney(fees.DeliveryFee)
	service := RoundMoney(decimal.Max(fees.ServiceFeeMin, fees.ServiceFeeRate.Mul(adjusted)))
	tax := RoundMoney(fees.TaxRate.Mul(adjusted.Add(delivery).Add(service)))

	return Totals{
		Subtotal:         subtotal,
		Discount:         discount,
		AdjustedSubtotal: adjusted,
		DeliveryFee:      delivery,
		ServiceFee:       service,
		Tax:              tax,
		Total:            adjusted.Add(delivery).Add(service).Add(tax),
	}, nil
}
