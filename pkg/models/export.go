package models

import "sort"

// Export holds the two aggregates built from one pass over an OpenSky file:
// orders keyed by order ID and payments keyed by normalized payment date.
type Export struct {
	Orders   map[string]*Order
	Payments map[string]*Payment
}

func NewExport() *Export {
	return &Export{
		Orders:   make(map[string]*Order),
		Payments: make(map[string]*Payment),
	}
}

// AddRow merges a parsed row into both aggregates. Rows with a blank payment
// date contribute to their order but to no payment.
func (e *Export) AddRow(r Row) {
	if o, ok := e.Orders[r.OrderID]; ok {
		o.Merge(r)
	} else {
		e.Orders[r.OrderID] = NewOrder(r)
	}

	if r.PaymentDate == "" {
		return
	}
	if p, ok := e.Payments[r.PaymentDate]; ok {
		p.Merge(r)
	} else {
		e.Payments[r.PaymentDate] = NewPayment(r)
	}
}

// OrderIDs returns the order identifiers in sorted order.
func (e *Export) OrderIDs() []string {
	ids := make([]string, 0, len(e.Orders))
	for id := range e.Orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PaymentDates returns the payment dates in sorted order.
func (e *Export) PaymentDates() []string {
	dates := make([]string, 0, len(e.Payments))
	for d := range e.Payments {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
