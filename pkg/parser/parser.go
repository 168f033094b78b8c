package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/skyledger/opensky2qif/pkg/models"
)

// FileType represents the kind of OpenSky export being processed.
type FileType string

const (
	OpenSkyCSV FileType = "opensky_csv"
	OpenSkyXLS FileType = "opensky_xls"
)

// RequiredColumns are the export columns the reader depends on. Lookup is
// header-driven, so column order in the file does not matter.
var RequiredColumns = []string{
	"Order ID",
	"SKU",
	"Item price",
	"Shipping price",
	"Credits",
	"Sales tax",
	"Restocking fee",
	"Credit card processing",
	"OpenSky commission",
	"Total payment",
	"Original order date",
	"Payment date",
}

type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// DetectFileType determines the export type from the filename extension.
func DetectFileType(filename string) (FileType, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return OpenSkyCSV, nil
	case ".xls":
		return OpenSkyXLS, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

// ParseFile reads an OpenSky export from disk and builds the order and
// payment aggregates.
func (p *Parser) ParseFile(path string) (*models.Export, error) {
	fileType, err := DetectFileType(path)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("detected file type", "type", fileType, "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	switch fileType {
	case OpenSkyXLS:
		return p.ParseXLS(file)
	default:
		return p.ParseCSV(file)
	}
}
