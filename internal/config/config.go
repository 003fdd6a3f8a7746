package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the settings of one preprocessing run. Values come from the
// environment (optionally seeded from a .env file by the caller).
type Config struct {
	ProjectRoot           string `mapstructure:"PROJECT_ROOT"`
	RawDataDir            string `mapstructure:"RAW_DATA_DIR" validate:"required"`
	ProcessedDataDir      string `mapstructure:"PROCESSED_DATA_DIR" validate:"required"`
	InputFile             string `mapstructure:"INPUT_FILE" validate:"required"`
	OutputFile            string `mapstructure:"OUTPUT_FILE" validate:"required"`
	CustomersPerWarehouse int    `mapstructure:"CUSTOMERS_PER_WAREHOUSE" validate:"gte=0"`
	VehicleCapacity       int    `mapstructure:"VEHICLE_CAPACITY" validate:"gte=0"`
	RandomSeed            uint64 `mapstructure:"RANDOM_SEED"`
	ReferenceCoordsPath   string `mapstructure:"REFERENCE_COORDS_PATH"`
	PreviewRows           int    `mapstructure:"PREVIEW_ROWS" validate:"gte=0"`
	MetricsTextfile       string `mapstructure:"METRICS_TEXTFILE"`
}

var defaults = map[string]any{
	"PROJECT_ROOT":            "",
	"RAW_DATA_DIR":            filepath.Join("data", "raw"),
	"PROCESSED_DATA_DIR":      filepath.Join("data", "processed"),
	"INPUT_FILE":              "Historical_Product_Demand.csv",
	"OUTPUT_FILE":             "Warehouse_Route_Planning.csv",
	"CUSTOMERS_PER_WAREHOUSE": 3,
	"VEHICLE_CAPACITY":        500,
	"RANDOM_SEED":             0,
	"REFERENCE_COORDS_PATH":   "",
	"PREVIEW_ROWS":            10,
	"METRICS_TEXTFILE":        "",
}

// Load reads the configuration from the environment, filling defaults and
// detecting the project root from the working directory when PROJECT_ROOT
// is unset.
func Load() (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: decode: %w", err)
	}

	if cfg.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("load config: working directory: %w", err)
		}
		cfg.ProjectRoot = FindProjectRoot(wd)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("load config: validate: %w", err)
	}

	return &cfg, nil
}

// InputPath is the demand dataset location.
func (c *Config) InputPath() string {
	return filepath.Join(c.resolve(c.RawDataDir), c.InputFile)
}

// OutputPath is the route dataset location.
func (c *Config) OutputPath() string {
	return filepath.Join(c.resolve(c.ProcessedDataDir), c.OutputFile)
}

func (c *Config) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.ProjectRoot, dir)
}

// FindProjectRoot walks up from start to the nearest directory holding a
// go.mod file. If none is found start is returned.
func FindProjectRoot(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return start
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}
