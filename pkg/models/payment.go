package models

import "github.com/shopspring/decimal"

// Payment aggregates every export row that shares a payment date. It
// represents a single bank deposit: the distinct orders paid out that day
// and the summed payout amount.
type Payment struct {
	Date     string
	OrderIDs []string
	Total    decimal.Decimal
}

// NewPayment starts a payment from its first row.
func NewPayment(r Row) *Payment {
	p := &Payment{Date: r.PaymentDate}
	p.Merge(r)
	return p
}

// Merge folds another row for the same payment date into the aggregate.
func (p *Payment) Merge(r Row) {
	if r.OrderID != "" && !p.hasOrder(r.OrderID) {
		p.OrderIDs = append(p.OrderIDs, r.OrderID)
	}
	p.Total = p.Total.Add(r.TotalPayment)
}

func (p *Payment) hasOrder(id string) bool {
	for _, o := range p.OrderIDs {
		if o == id {
			return true
		}
	}
	return false
}
