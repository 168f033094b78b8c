package parser

import (
	"fmt"
	"io"

	"github.com/extrame/xls"
	"github.com/skyledger/opensky2qif/pkg/models"
)

// ParseXLS reads a legacy .xls OpenSky export. The workbook carries the same
// columns as the CSV export, so rows go through the same header-driven path.
func (p *Parser) ParseXLS(r io.ReadSeeker) (*models.Export, error) {
	workbook, err := xls.OpenReader(r, "cp1252")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}

	rows := workbook.ReadAllCells(10000)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}

	// The header is the first row that carries the Order ID column. Some
	// exports have a title row above it.
	for i, row := range rows {
		if !containsHeader(row) {
			continue
		}
		cols, err := newColumns(row)
		if err != nil {
			return nil, err
		}
		return p.buildExport(cols, rows[i+1:])
	}

	return nil, fmt.Errorf("missing required column %q", "Order ID")
}

func containsHeader(row []string) bool {
	for _, cell := range row {
		if cell == "Order ID" {
			return true
		}
	}
	return false
}
