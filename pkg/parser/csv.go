package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/skyledger/opensky2qif/pkg/models"
)

// ParseCSV reads an OpenSky CSV export and merges its rows into the order
// and payment aggregates.
func (p *Parser) ParseCSV(r io.Reader) (*models.Export, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}

	cols, err := newColumns(records[0])
	if err != nil {
		return nil, err
	}

	return p.buildExport(cols, records[1:])
}

func (p *Parser) buildExport(cols columns, records [][]string) (*models.Export, error) {
	export := models.NewExport()
	rows := 0
	for _, record := range records {
		if isBlank(record) {
			continue
		}
		export.AddRow(cols.row(record))
		rows++
	}
	if rows == 0 {
		return nil, fmt.Errorf("no data rows found")
	}

	p.logger.Info("parsed export",
		"rows", rows,
		"orders", len(export.Orders),
		"payments", len(export.Payments))
	return export, nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if field != "" {
			return false
		}
	}
	return true
}
