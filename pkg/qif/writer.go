package qif

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/skyledger/opensky2qif/pkg/config"
	"github.com/skyledger/opensky2qif/pkg/models"
)

// Writer emits an export as a QIF Bank account register.
type Writer struct {
	w        *bufio.Writer
	accounts config.Accounts
}

func NewWriter(w io.Writer, accounts config.Accounts) *Writer {
	return &Writer{w: bufio.NewWriter(w), accounts: accounts}
}

// Write serializes the aggregates: the account header, one transaction per
// order sorted by order ID, then one deposit per payment date. Output is
// deterministic for a given export.
func (w *Writer) Write(export *models.Export) error {
	w.header()
	for _, id := range export.OrderIDs() {
		w.order(id, export.Orders[id])
	}
	for _, date := range export.PaymentDates() {
		w.payment(export.Payments[date])
	}
	return w.w.Flush()
}

func (w *Writer) header() {
	fmt.Fprintln(w.w, "!Account")
	fmt.Fprintf(w.w, "N%s\n", w.accounts.Asset)
	fmt.Fprintln(w.w, "TBank")
	fmt.Fprintln(w.w, "^")
	fmt.Fprintln(w.w, "!Type:Bank")
}

func (w *Writer) order(id string, o *models.Order) {
	fmt.Fprintf(w.w, "D%s\n", o.Date)
	fmt.Fprintf(w.w, "POpenSky order %s\n", id)
	fmt.Fprintf(w.w, "L%s\n", w.accounts.Asset)
	fmt.Fprintf(w.w, "T%s\n", o.TotalPayment.StringFixed(2))
	// GnuCash displays splits in the opposite order from how they are
	// written, so the item price split goes last.
	w.split(o.Commission, w.accounts.Commission, "")
	w.split(o.CCProcessing, w.accounts.CCProcessing, "")
	w.split(o.Restocking, w.accounts.Restocking, "")
	w.split(o.SalesTax, w.accounts.SalesTax, "")
	w.split(o.Credits, w.accounts.Credits, "")
	w.split(o.Shipping, w.accounts.Shipping, "")
	w.split(o.ItemPrice, w.accounts.Sales, skuMemo(o.SKUs))
	fmt.Fprintln(w.w, "^")
}

func (w *Writer) split(amount decimal.Decimal, account, memo string) {
	if amount.IsZero() {
		return
	}
	fmt.Fprintf(w.w, "S%s\n", account)
	if memo != "" {
		fmt.Fprintf(w.w, "E%s\n", memo)
	}
	fmt.Fprintf(w.w, "$%s\n", amount.StringFixed(2))
}

// payment writes a bank deposit: the day's payout leaves the asset account
// for the deposit account.
func (w *Writer) payment(p *models.Payment) {
	fmt.Fprintf(w.w, "D%s\n", p.Date)
	fmt.Fprintln(w.w, "POpenSky payment")
	fmt.Fprintf(w.w, "M%s\n", paymentMemo(p.OrderIDs))
	fmt.Fprintf(w.w, "T%s\n", p.Total.Neg().StringFixed(2))
	fmt.Fprintf(w.w, "L%s\n", w.accounts.Deposit)
	fmt.Fprintln(w.w, "^")
}

func skuMemo(skus []string) string {
	if len(skus) == 0 {
		return ""
	}
	return "SKUs=" + strings.Join(skus, ",")
}

// paymentMemo lists the orders covered by a deposit, compressed to a range
// summary once the list gets long.
func paymentMemo(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	if len(sorted) >= 5 {
		return fmt.Sprintf("%d order IDs from %s to %s",
			len(sorted), sorted[0], sorted[len(sorted)-1])
	}
	return strings.Join(sorted, ",")
}
