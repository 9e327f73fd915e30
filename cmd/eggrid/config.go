package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// prefs holds application preferences: chrome and seeding, not engine
// behavior. Engine behavior lives in the options YAML.
type prefs struct {
	Theme string
	Items int
	Grid  gridPrefs
}

// gridPrefs holds the terminal grid dimensions in character cells.
type gridPrefs struct {
	Columns      int
	Rows         int
	CellWidth    int `mapstructure:"cell_width"`
	CellHeight   int `mapstructure:"cell_height"`
	ViewportRows int `mapstructure:"viewport_rows"`
}

// loadPrefs reads preferences from file and env. Env var overrides use
// prefix EGGRID_.
func loadPrefs() (prefs, error) {
	v := viper.New()

	// default values
	v.SetDefault("theme", "charm")
	v.SetDefault("items", 6)
	v.SetDefault("grid.columns", 4)
	v.SetDefault("grid.rows", 4)
	v.SetDefault("grid.cell_width", 14)
	v.SetDefault("grid.cell_height", 4)
	v.SetDefault("grid.viewport_rows", 3)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("EGGRID_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "eggrid"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("EGGRID")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var p prefs
	if err := v.Unmarshal(&p); err != nil {
		return prefs{}, fmt.Errorf("unmarshal prefs: %w", err)
	}

	if err := p.validate(); err != nil {
		return prefs{}, err
	}

	return p, nil
}

func (p prefs) validate() error {
	if p.Items < 0 {
		return fmt.Errorf("prefs: items must not be negative")
	}
	if p.Grid.Columns < 1 || p.Grid.Rows < 1 {
		return fmt.Errorf("prefs: grid needs at least one column and one row")
	}
	if p.Grid.CellWidth < 3 || p.Grid.CellHeight < 3 {
		return fmt.Errorf("prefs: cells need at least 3 characters per side to draw a border")
	}
	if p.Grid.ViewportRows < 1 {
		return fmt.Errorf("prefs: viewport needs at least one row")
	}
	return nil
}
