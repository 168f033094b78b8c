package models

import "github.com/shopspring/decimal"

// Row is a single line item from an OpenSky export, with numeric fields
// already parsed and dates already normalized to YYYY-MM-DD. The Credits
// field carries the corrected sign (the export stores it inverted).
type Row struct {
	OrderID      string
	SKU          string
	ItemPrice    decimal.Decimal
	Shipping     decimal.Decimal
	Credits      decimal.Decimal
	SalesTax     decimal.Decimal
	Restocking   decimal.Decimal
	CCProcessing decimal.Decimal
	Commission   decimal.Decimal
	TotalPayment decimal.Decimal
	OrderDate    string
	PaymentDate  string
}
