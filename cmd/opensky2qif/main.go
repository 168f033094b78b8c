package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/skyledger/opensky2qif/pkg/config"
	"github.com/skyledger/opensky2qif/pkg/service"
	"github.com/skyledger/opensky2qif/pkg/ui"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "opensky2qif",
	Short: "Convert OpenSky payment exports to Quicken QIF files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <csvfile> [qiffile]",
	Short: "Convert an OpenSky export to a QIF file",
	Long: `Convert aggregates the line items of an OpenSky payment export into
per-order and per-payment-date transactions and writes them as a QIF Bank
register. When no output filename is given, the input filename with a .qif
extension is used.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		outputPath := ""
		if len(args) == 2 {
			outputPath = args[1]
		}

		reporter := ui.NewConsole(logger)
		processor := service.NewProcessor(cfg, logger, reporter)
		if err := processor.Convert(args[0], outputPath); err != nil {
			reporter.Fatalf("conversion failed: %v", err)
		}
		return nil
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive [dir]",
	Short: "Pick an export from a directory and convert it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		prompt := ui.NewPrompt(os.Stdin, os.Stdout)
		inputPath, err := prompt.ChooseFile(dir, ".csv", ".xls")
		if err != nil {
			prompt.Fatalf("%v", err)
		}

		processor := service.NewProcessor(cfg, logger, prompt)
		if err := processor.Convert(inputPath, ""); err != nil {
			prompt.Fatalf("conversion failed: %v", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an opensky2qif.yaml with the default account names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := &config.Config{Accounts: config.DefaultAccounts()}
		if err := cfg.Write("opensky2qif.yaml"); err != nil {
			return err
		}
		fmt.Println("wrote opensky2qif.yaml")
		return nil
	},
}

func newLogger() *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "opensky2qif",
	}
	if verbose {
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
	}
	return log.NewWithOptions(os.Stderr, opts)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is opensky2qif.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Account override flags, defaults matching the legacy converter
	accts := config.DefaultAccounts()
	for _, c := range []*cobra.Command{convertCmd, interactiveCmd} {
		c.Flags().String("acct-opensky", accts.Asset, "OpenSky asset account")
		c.Flags().String("acct-deposit", accts.Deposit, "bank account deposits transfer to")
		c.Flags().String("acct-sales", accts.Sales, "sales income account")
		c.Flags().String("acct-shipping", accts.Shipping, "shipping expense account")
		c.Flags().String("acct-credits", accts.Credits, "OpenSky credits expense account")
		c.Flags().String("acct-sales-tax", accts.SalesTax, "sales tax expense account")
		c.Flags().String("acct-restocking", accts.Restocking, "restocking fees expense account")
		c.Flags().String("acct-cc-processing", accts.CCProcessing, "credit card processing fees expense account")
		c.Flags().String("acct-commission", accts.Commission, "OpenSky commissions expense account")
	}

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
