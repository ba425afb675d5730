// Package config loads and stores coolroof settings: default calculator
// inputs, chart ranges, output format and logging.
//
// Precedence, lowest first: built-in defaults, ~/.coolroof/config.yaml, an
// overlay passed with --config, a .env file, environment variables, CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rshade/coolroof/internal/calculator"
)

// Output formats accepted by output.default_format.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatCSV    = "csv"
)

// Environment variables.
const (
	EnvHome           = "COOLROOF_HOME"
	EnvEnergyPrice    = "COOLROOF_ENERGY_PRICE"
	EnvEmissionFactor = "COOLROOF_EMISSION_FACTOR"
	EnvCurrency       = "COOLROOF_CURRENCY"
	EnvLogLevel       = "COOLROOF_LOG_LEVEL"
	EnvOutputFormat   = "COOLROOF_OUTPUT_FORMAT"
)

const (
	configFileName = "config.yaml"
	homeDirName    = ".coolroof"
	defaultLogFile = "coolroof.log"
)

// Config is the whole configuration file.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Charts   ChartsConfig   `yaml:"charts"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DefaultsConfig holds the calculator inputs used when a flag is not given.
type DefaultsConfig struct {
	AreaM2         float64 `yaml:"area_m2"`
	RoofType       string  `yaml:"roof_type"`
	RoofInsulation string  `yaml:"roof_insulation"`
	WallInsulation string  `yaml:"wall_insulation"`
	EERBand        string  `yaml:"eer_band"`
	// EER overrides the band when positive.
	EER            float64 `yaml:"eer,omitempty"`
	EnergyPrice    float64 `yaml:"energy_price"`
	EmissionFactor float64 `yaml:"emission_factor"`
	UnitCost       float64 `yaml:"unit_cost"`
	Currency       string  `yaml:"currency"`
}

// ChartsConfig controls chart axis ranges.
type ChartsConfig struct {
	AutoScale bool           `yaml:"auto_scale"`
	Overrides ChartOverrides `yaml:"overrides"`
}

// ChartOverrides are the manual axis maxima used when auto_scale is off.
type ChartOverrides struct {
	Cumulative float64 `yaml:"cumulative"`
	Trees      float64 `yaml:"trees"`
	CarKm      float64 `yaml:"car_km"`
	Households float64 `yaml:"households"`
	LightBulbs float64 `yaml:"light_bulbs"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			AreaM2:         calculator.DefaultAreaM2,
			RoofType:       calculator.RoofTypeMetal.String(),
			RoofInsulation: calculator.NoInsulation().String(),
			WallInsulation: calculator.NoInsulation().String(),
			EERBand:        calculator.EERBandStandard.String(),
			EnergyPrice:    calculator.DefaultEnergyPrice,
			EmissionFactor: calculator.DefaultEmissionFactor,
			UnitCost:       calculator.DefaultUnitCost,
			Currency:       "PLN",
		},
		Charts: ChartsConfig{
			AutoScale: true,
			Overrides: ChartOverrides{
				Cumulative: 150_000,
				Trees:      300,
				CarKm:      40_000,
				Households: 200,
				LightBulbs: 50_000,
			},
		},
		Output:  OutputConfig{DefaultFormat: FormatTable},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// HomeDir returns $COOLROOF_HOME or ~/.coolroof.
func HomeDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, homeDirName), nil
}

// Path returns the path of the configuration file.
func Path() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DefaultLogPath returns the log file used when logging.file is "default".
func DefaultLogPath() string {
	dir, err := HomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), defaultLogFile)
	}
	return filepath.Join(dir, "logs", defaultLogFile)
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// New loads the configuration file, the .env file in the working directory
// and environment overrides. It always returns a usable configuration; the
// error joins every source that could not be applied, in which case the
// affected values keep their defaults.
func New() (*Config, error) {
	cfg := Default()
	var errs []error

	path, err := Path()
	if err != nil {
		errs = append(errs, err)
	} else if loaded, loadErr := Load(path); loadErr != nil {
		errs = append(errs, loadErr)
	} else {
		cfg = loaded
	}
	if err = LoadDotEnv(".env"); err != nil {
		errs = append(errs, err)
	}
	if err = cfg.ApplyEnv(); err != nil {
		errs = append(errs, fmt.Errorf("environment overrides: %w", err))
	}
	return cfg, errors.Join(errs...)
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil //nolint:nilerr // Missing .env is the normal case.
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies COOLROOF_* environment overrides.
func (c *Config) ApplyEnv() error {
	envKeys := map[string]string{
		EnvEnergyPrice:    "defaults.energy_price",
		EnvEmissionFactor: "defaults.emission_factor",
		EnvCurrency:       "defaults.currency",
		EnvLogLevel:       "logging.level",
		EnvOutputFormat:   "output.default_format",
	}
	var errs []error
	for env, key := range envKeys {
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := c.Set(key, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", env, err))
		}
	}
	return errors.Join(errs...)
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate checks that the defaults describe a computable configuration.
func (c *Config) Validate() error {
	if _, err := c.Defaults.Calculator(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if c.Defaults.UnitCost < 0 {
		return fmt.Errorf("defaults.unit_cost: %w", calculator.ErrNegativeCapex)
	}
	if !IsValidFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("output.default_format: unsupported format %q", c.Output.DefaultFormat)
	}
	o := c.Charts.Overrides
	for name, v := range map[string]float64{
		"cumulative": o.Cumulative, "trees": o.Trees, "car_km": o.CarKm,
		"households": o.Households, "light_bulbs": o.LightBulbs,
	} {
		if v < 0 {
			return fmt.Errorf("charts.overrides.%s must not be negative", name)
		}
	}
	return nil
}

// IsValidFormat reports whether f is a supported output format.
func IsValidFormat(f string) bool {
	switch f {
	case FormatTable, FormatJSON, FormatNDJSON, FormatCSV:
		return true
	default:
		return false
	}
}

// Calculator converts the defaults into a calculator configuration.
func (d DefaultsConfig) Calculator() (calculator.Configuration, error) {
	roof, err := calculator.ParseRoofType(d.RoofType)
	if err != nil {
		return calculator.Configuration{}, err
	}
	roofIns, err := calculator.ParseInsulation(d.RoofInsulation)
	if err != nil {
		return calculator.Configuration{}, fmt.Errorf("roof insulation: %w", err)
	}
	wallIns, err := calculator.ParseInsulation(d.WallInsulation)
	if err != nil {
		return calculator.Configuration{}, fmt.Errorf("wall insulation: %w", err)
	}
	band, err := calculator.ParseEERBand(d.EERBand)
	if err != nil {
		return calculator.Configuration{}, err
	}

	cfg := calculator.Configuration{
		AreaM2:         d.AreaM2,
		RoofType:       roof,
		RoofInsulation: roofIns,
		WallInsulation: wallIns,
		EER:            calculator.ResolveEER(band, d.EER),
		EnergyPrice:    d.EnergyPrice,
		EmissionFactor: d.EmissionFactor,
	}
	return cfg, cfg.Validate()
}

//nolint:gochecknoglobals // Process-wide configuration, set once per CLI invocation.
var (
	globalConfig    *Config
	globalConfigErr error
	globalConfigMu  sync.RWMutex
)

// GetGlobalConfig returns the process configuration, loading it on first use.
// Load problems are kept for GlobalConfigErr.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig, globalConfigErr = New()
	}
	return globalConfig
}

// GlobalConfigErr returns the error from loading the process configuration,
// loading it first if needed.
func GlobalConfigErr() error {
	GetGlobalConfig()
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfigErr
}

// SetGlobalConfig replaces the process configuration. Tests use it to
// inject a known configuration; nil forces a reload on next use.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	globalConfigErr = nil
}

// GetDefaultOutputFormat returns the configured output format.
func GetDefaultOutputFormat() string {
	f := GetGlobalConfig().Output.DefaultFormat
	if f == "" {
		return FormatTable
	}
	return f
}
