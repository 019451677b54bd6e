package cmd

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml"
	"github.com/shopspring/decimal"
)

var configPath string

// Config holds the user settings that live outside the ledger file.
type Config struct {
	File       string   `toml:"file" comment:"Path to the expense CSV file."`
	Currency   string   `toml:"currency" comment:"Symbol shown in front of amounts."`
	Budget     string   `toml:"budget" comment:"Monthly budget as decimal text. Empty disables tracking."`
	Categories []string `toml:"categories" comment:"Category choices offered by the add form."`
}

func defaultCategories() []string {
	return []string{"Food", "Transport", "Shopping", "Entertainment", "Bills", "Health", "Other"}
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "expense", "config.toml"), nil
}

// loadConfig reads the config file, returning defaults when it is absent.
func loadConfig() (*Config, error) {
	cfg := &Config{
		Currency:   "£",
		Categories: defaultCategories(),
	}

	path, err := resolveConfigPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	if cfg.Currency == "" {
		cfg.Currency = "£"
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = defaultCategories()
	}
	return cfg, nil
}

// saveConfig writes the config file, creating its directory if needed.
func saveConfig(cfg *Config) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := toml.Marshal(*cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// MonthlyBudget returns the configured budget, or zero when unset or
// unparseable.
func (c *Config) MonthlyBudget() decimal.Decimal {
	if c.Budget == "" {
		return decimal.Zero
	}
	budget, err := decimal.NewFromString(c.Budget)
	if err != nil || budget.Sign() < 0 {
		return decimal.Zero
	}
	return budget
}
