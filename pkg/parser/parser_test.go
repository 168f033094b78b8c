package parser

import (
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

const sampleHeader = "Order ID,SKU,Item price,Shipping price,Credits,Sales tax,Restocking fee,Credit card processing,OpenSky commission,Total payment,Original order date,Payment date"

func TestParseCSV(t *testing.T) {
	content := sampleHeader + "\n" +
		"1001,A,10.00,2.50,0,0.80,0,0.45,1.20,14.95,03/05/2014,03/20/2014\n" +
		"1001,B,5.00,0,0,0,0,0,0,5.00,03/05/2014,03/20/2014\n" +
		"1002,C,8.00,0,2.00,0,0,0,0,6.00,03/06/2014,03/20/2014\n"

	p := New(log.Default())
	export, err := p.ParseCSV(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	if len(export.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(export.Orders))
	}

	order := export.Orders["1001"]
	if order == nil {
		t.Fatal("order 1001 missing")
	}
	if order.Date != "2014-03-05" {
		t.Errorf("expected date 2014-03-05, got %s", order.Date)
	}
	if got := strings.Join(order.SKUs, ","); got != "A,B" {
		t.Errorf("expected SKUs A,B, got %s", got)
	}
	assertAmount(t, "item price", order.ItemPrice, "15.00")
	assertAmount(t, "shipping", order.Shipping, "2.50")
	assertAmount(t, "total payment", order.TotalPayment, "19.95")

	// The export stores credits with the sign inverted.
	assertAmount(t, "credits", export.Orders["1002"].Credits, "-2.00")

	if len(export.Payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(export.Payments))
	}
	payment := export.Payments["2014-03-20"]
	if payment == nil {
		t.Fatal("payment 2014-03-20 missing")
	}
	if got := strings.Join(payment.OrderIDs, ","); got != "1001,1002" {
		t.Errorf("expected order IDs 1001,1002, got %s", got)
	}
	assertAmount(t, "payment total", payment.Total, "25.95")
}

func TestParseCSVBlankAmounts(t *testing.T) {
	content := sampleHeader + "\n" +
		"1001,A,,,,,,,,not-a-number,2014-03-05,2014-03-20\n"

	p := New(log.Default())
	export, err := p.ParseCSV(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	order := export.Orders["1001"]
	assertAmount(t, "item price", order.ItemPrice, "0.00")
	assertAmount(t, "total payment", order.TotalPayment, "0.00")
}

func TestParseCSVMissingColumn(t *testing.T) {
	content := "Order ID,SKU,Item price\n1001,A,10.00\n"

	p := New(log.Default())
	_, err := p.ParseCSV(strings.NewReader(content))
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	if !strings.Contains(err.Error(), `missing required column "Shipping price"`) {
		t.Errorf("error does not name the missing column: %v", err)
	}
}

func TestParseCSVNoRows(t *testing.T) {
	p := New(log.Default())
	_, err := p.ParseCSV(strings.NewReader(sampleHeader + "\n"))
	if err == nil || !strings.Contains(err.Error(), "no data rows") {
		t.Errorf("expected no data rows error, got %v", err)
	}
}

func TestParseCSVEmpty(t *testing.T) {
	p := New(log.Default())
	_, err := p.ParseCSV(strings.NewReader(""))
	if err == nil {
		t.Error("expected error for empty input")
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"03/05/2014", "2014-03-05"},
		{"3/5/2014", "2014-03-05"},
		{"2014-03-05", "2014-03-05"},
		{"", ""},
		{"bogus", "bogus"},
		{"03/05", "03/05"},
	}
	for _, tt := range tests {
		if got := normalizeDate(tt.in); got != tt.want {
			t.Errorf("normalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
		// Normalization is idempotent.
		if got := normalizeDate(normalizeDate(tt.in)); got != tt.want {
			t.Errorf("normalizeDate twice on %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.34", "12.34"},
		{"", "0.00"},
		{"n/a", "0.00"},
		{"-2.00", "-2.00"},
	}
	for _, tt := range tests {
		assertAmount(t, tt.in, parseAmount(tt.in), tt.want)
	}
}

func TestDetectFileType(t *testing.T) {
	if ft, err := DetectFileType("export.csv"); err != nil || ft != OpenSkyCSV {
		t.Errorf("expected csv, got %v %v", ft, err)
	}
	if ft, err := DetectFileType("EXPORT.XLS"); err != nil || ft != OpenSkyXLS {
		t.Errorf("expected xls, got %v %v", ft, err)
	}
	if _, err := DetectFileType("export.txt"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func assertAmount(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if got.StringFixed(2) != want {
		t.Errorf("%s = %s, want %s", name, got.StringFixed(2), want)
	}
}
