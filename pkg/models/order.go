package models

import "github.com/shopspring/decimal"

// Order aggregates every export row that shares an Order ID. Monetary fields
// are sums across the contributing rows; SKUs keep insertion order and are
// deduplicated.
type Order struct {
	Date         string
	SKUs         []string
	ItemPrice    decimal.Decimal
	Shipping     decimal.Decimal
	Credits      decimal.Decimal
	SalesTax     decimal.Decimal
	Restocking   decimal.Decimal
	CCProcessing decimal.Decimal
	Commission   decimal.Decimal
	TotalPayment decimal.Decimal
}

// NewOrder starts an order from its first row. The order date is taken from
// this row; later rows only accumulate.
func NewOrder(r Row) *Order {
	o := &Order{Date: r.OrderDate}
	o.Merge(r)
	return o
}

// Merge folds another row for the same order into the aggregate.
func (o *Order) Merge(r Row) {
	if r.SKU != "" && !o.hasSKU(r.SKU) {
		o.SKUs = append(o.SKUs, r.SKU)
	}
	o.ItemPrice = o.ItemPrice.Add(r.ItemPrice)
	o.Shipping = o.Shipping.Add(r.Shipping)
	o.Credits = o.Credits.Add(r.Credits)
	o.SalesTax = o.SalesTax.Add(r.SalesTax)
	o.Restocking = o.Restocking.Add(r.Restocking)
	o.CCProcessing = o.CCProcessing.Add(r.CCProcessing)
	o.Commission = o.Commission.Add(r.Commission)
	o.TotalPayment = o.TotalPayment.Add(r.TotalPayment)
}

func (o *Order) hasSKU(sku string) bool {
	for _, s := range o.SKUs {
		if s == sku {
			return true
		}
	}
	return false
}

// CalculatedItemPrice recomputes the item price from the other monetary
// fields, rounded to 2 decimals half away from zero.
func (o *Order) CalculatedItemPrice() decimal.Decimal {
	fees := o.Shipping.
		Add(o.Credits).
		Add(o.SalesTax).
		Add(o.Restocking).
		Add(o.CCProcessing).
		Add(o.Commission)
	return o.TotalPayment.Sub(fees).Round(2)
}
