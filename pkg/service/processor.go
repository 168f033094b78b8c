package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/skyledger/opensky2qif/pkg/config"
	"github.com/skyledger/opensky2qif/pkg/parser"
	"github.com/skyledger/opensky2qif/pkg/qif"
	"github.com/skyledger/opensky2qif/pkg/reconcile"
	"github.com/skyledger/opensky2qif/pkg/ui"
)

// Processor runs the conversion pipeline: parse, reconcile, write.
type Processor struct {
	config   *config.Config
	logger   *log.Logger
	reporter ui.Reporter
	parser   *parser.Parser
}

func NewProcessor(cfg *config.Config, logger *log.Logger, reporter ui.Reporter) *Processor {
	return &Processor{
		config:   cfg,
		logger:   logger,
		reporter: reporter,
		parser:   parser.New(logger),
	}
}

// OutputPath derives the QIF filename from the input when none is given.
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".qif"
}

// Convert transforms one OpenSky export into a QIF file.
func (p *Processor) Convert(inputPath, outputPath string) error {
	if outputPath == "" {
		outputPath = OutputPath(inputPath)
	}
	if inputPath == outputPath {
		return fmt.Errorf("input and output are the same file: %s", inputPath)
	}

	export, err := p.parser.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}

	if p.config.Verbose {
		p.logger.Debug("aggregated export", "dump", pp.Sprint(export))
	}

	if corrected := reconcile.Orders(export, p.reporter); corrected > 0 {
		p.logger.Info("corrected item prices", "orders", corrected)
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer output.Close()

	if err := qif.NewWriter(output, p.config.Accounts).Write(export); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}

	p.logger.Info("processed file successfully",
		"input", inputPath,
		"output", outputPath,
		"orders", len(export.Orders),
		"payments", len(export.Payments))
	return nil
}
