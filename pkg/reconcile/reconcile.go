package reconcile

// Package reconcile checks that the monetary fields of each aggregated order
// add up. It is isolated from any UI so that both the console and the
// interactive front end can reuse it through the Reporter interface.

import "github.com/skyledger/opensky2qif/pkg/models"

// Reporter is the subset of the UI reporter reconciliation needs.
type Reporter interface {
	Warningf(format string, args ...any)
}

// Orders recomputes each order's item price from its other fields. When the
// stored value disagrees at 2-decimal precision a warning names the order and
// both values and the stored price is replaced; orders that already reconcile
// are left untouched. Returns the number of corrected orders.
func Orders(export *models.Export, rep Reporter) int {
	corrected := 0
	for _, id := range export.OrderIDs() {
		order := export.Orders[id]
		calculated := order.CalculatedItemPrice()
		if order.ItemPrice.Round(2).Equal(calculated) {
			continue
		}
		rep.Warningf("order %s: item price %s != calculated price %s",
			id, order.ItemPrice.StringFixed(2), calculated.StringFixed(2))
		order.ItemPrice = calculated
		corrected++
	}
	return corrected
}
