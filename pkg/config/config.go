package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"
)

// Accounts names the ledger accounts the QIF output posts to.
type Accounts struct {
	Asset        string `mapstructure:"asset" yaml:"asset"`
	Deposit      string `mapstructure:"deposit" yaml:"deposit"`
	Sales        string `mapstructure:"sales" yaml:"sales"`
	Shipping     string `mapstructure:"shipping" yaml:"shipping"`
	Credits      string `mapstructure:"credits" yaml:"credits"`
	SalesTax     string `mapstructure:"sales_tax" yaml:"sales_tax"`
	Restocking   string `mapstructure:"restocking" yaml:"restocking"`
	CCProcessing string `mapstructure:"cc_processing" yaml:"cc_processing"`
	Commission   string `mapstructure:"commission" yaml:"commission"`
}

// Config is passed explicitly into the pipeline; nothing reads ambient state.
type Config struct {
	Accounts Accounts `mapstructure:"accounts" yaml:"accounts"`
	Verbose  bool     `mapstructure:"verbose" yaml:"verbose"`
}

// DefaultAccounts mirrors the account names the legacy converter used.
func DefaultAccounts() Accounts {
	return Accounts{
		Asset:        "Assets:OpenSky",
		Deposit:      "Assets:Checking",
		Sales:        "Income:Sales - OpenSky",
		Shipping:     "Expenses:Postage and Delivery",
		Credits:      "Expenses:OpenSky Credits",
		SalesTax:     "Expenses:Sales Tax",
		Restocking:   "Expenses:Restocking Fees",
		CCProcessing: "Expenses:CC Processing Fees",
		Commission:   "Expenses:OpenSky Commissions",
	}
}

// flagBindings maps viper keys to their CLI override flags.
var flagBindings = map[string]string{
	"accounts.asset":         "acct-opensky",
	"accounts.deposit":       "acct-deposit",
	"accounts.sales":         "acct-sales",
	"accounts.shipping":      "acct-shipping",
	"accounts.credits":       "acct-credits",
	"accounts.sales_tax":     "acct-sales-tax",
	"accounts.restocking":    "acct-restocking",
	"accounts.cc_processing": "acct-cc-processing",
	"accounts.commission":    "acct-commission",
	"verbose":                "verbose",
}

// Build assembles the configuration from defaults, an optional config file,
// OPENSKY2QIF_* environment variables and CLI flag overrides, in increasing
// order of precedence.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	defaults := DefaultAccounts()
	v.SetDefault("accounts.asset", defaults.Asset)
	v.SetDefault("accounts.deposit", defaults.Deposit)
	v.SetDefault("accounts.sales", defaults.Sales)
	v.SetDefault("accounts.shipping", defaults.Shipping)
	v.SetDefault("accounts.credits", defaults.Credits)
	v.SetDefault("accounts.sales_tax", defaults.SalesTax)
	v.SetDefault("accounts.restocking", defaults.Restocking)
	v.SetDefault("accounts.cc_processing", defaults.CCProcessing)
	v.SetDefault("accounts.commission", defaults.Commission)
	v.SetDefault("verbose", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("opensky2qif")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("OPENSKY2QIF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicitly named one
		// must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Write saves the configuration as a YAML file, the same shape Build reads.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
