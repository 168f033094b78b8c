package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/skyledger/opensky2qif/pkg/models"
)

// columns maps export header names to field positions.
type columns map[string]int

func newColumns(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}

func (c columns) get(record []string, name string) string {
	i := c[name]
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// row converts one export record into a parsed row. The sign on the Credits
// column is wrong in the exported file and is flipped here.
func (c columns) row(record []string) models.Row {
	return models.Row{
		OrderID:      c.get(record, "Order ID"),
		SKU:          c.get(record, "SKU"),
		ItemPrice:    parseAmount(c.get(record, "Item price")),
		Shipping:     parseAmount(c.get(record, "Shipping price")),
		Credits:      parseAmount(c.get(record, "Credits")).Neg(),
		SalesTax:     parseAmount(c.get(record, "Sales tax")),
		Restocking:   parseAmount(c.get(record, "Restocking fee")),
		CCProcessing: parseAmount(c.get(record, "Credit card processing")),
		Commission:   parseAmount(c.get(record, "OpenSky commission")),
		TotalPayment: parseAmount(c.get(record, "Total payment")),
		OrderDate:    normalizeDate(c.get(record, "Original order date")),
		PaymentDate:  normalizeDate(c.get(record, "Payment date")),
	}
}

// parseAmount converts a monetary string to a decimal, treating blank or
// invalid values as zero.
func parseAmount(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// normalizeDate rewrites MM/DD/YYYY dates as YYYY-MM-DD. Dates without a
// slash are assumed already ISO-ordered and returned unchanged, which makes
// normalization idempotent.
func normalizeDate(date string) string {
	if !strings.Contains(date, "/") {
		return date
	}
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return date
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return date
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
