package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lavatech-dev/balance/internal/catalog"
	"github.com/lavatech-dev/balance/internal/model"
)

// Config represents the top-level balance.yaml configuration.
type Config struct {
	Company  CompanyConfig   `yaml:"company"`
	Tax      TaxConfig       `yaml:"tax"`
	Accounts []AccountConfig `yaml:"accounts,omitempty"`
}

// CompanyConfig identifies the company the balance sheet is for.
type CompanyConfig struct {
	Name string `yaml:"name"`
}

// TaxConfig holds the flat VAT rate.
type TaxConfig struct {
	VATRate float64 `yaml:"vat_rate"`
}

// AccountConfig declares an extra account, overrides the opening balance
// of a default one, or removes a default one. Entries are merged over
// the default chart in order.
type AccountConfig struct {
	Category string  `yaml:"category"`
	Name     string  `yaml:"name"`
	Value    float64 `yaml:"value,omitempty"`
	Remove   bool    `yaml:"remove,omitempty"`
}

// Load reads a balance.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the default VAT rate and no chart
// overrides.
func Default(companyName string) *Config {
	return &Config{
		Company: CompanyConfig{Name: companyName},
		Tax:     TaxConfig{VATRate: 0.16},
	}
}

// Rate returns the VAT rate as a decimal, falling back to the default
// when unset.
func (c *Config) Rate() decimal.Decimal {
	if c.Tax.VATRate <= 0 {
		return decimal.NewFromFloat(0.16)
	}
	return decimal.NewFromFloat(c.Tax.VATRate)
}

// Chart builds the catalog template: the default chart with the
// configured account entries merged over it.
func (c *Config) Chart() (*model.State, error) {
	chart := catalog.DefaultChart()
	for i, a := range c.Accounts {
		cat, err := model.ParseCategory(a.Category)
		if err != nil {
			return nil, fmt.Errorf("accounts[%d]: %w", i, err)
		}
		name := catalog.Normalize(a.Name)
		if name == "" {
			return nil, fmt.Errorf("accounts[%d]: empty account name", i)
		}
		if a.Remove {
			if model.IsProtected(name) {
				return nil, fmt.Errorf("accounts[%d]: %w: %s", i, model.ErrProtectedAccount, name)
			}
			chart.Delete(cat, name)
			continue
		}
		chart.Set(cat, name, decimal.NewFromFloat(a.Value))
	}
	return chart, nil
}
