package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rshade/coolroof/internal/calculator"
)

// ErrUnknownKey is returned by Get and Set for keys outside Keys().
var ErrUnknownKey = errors.New("unknown config key")

// field binds a dotted key to a config value.
type field struct {
	get func(*Config) string
	set func(*Config, string) error
}

func floatField(ptr func(*Config) *float64, nonNegative bool) field {
	return field{
		get: func(c *Config) string { return strconv.FormatFloat(*ptr(c), 'f', -1, 64) },
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", v, err)
			}
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("invalid number %q: must be finite", v)
			}
			if nonNegative && f < 0 {
				return fmt.Errorf("value must not be negative: %v", f)
			}
			*ptr(c) = f
			return nil
		},
	}
}

func stringField(ptr func(*Config) *string, check func(string) error) field {
	return field{
		get: func(c *Config) string { return *ptr(c) },
		set: func(c *Config, v string) error {
			v = strings.TrimSpace(v)
			if check != nil {
				if err := check(v); err != nil {
					return err
				}
			}
			*ptr(c) = v
			return nil
		},
	}
}

func checkRoofType(v string) error {
	_, err := calculator.ParseRoofType(v)
	return err
}

func checkInsulation(v string) error {
	_, err := calculator.ParseInsulation(v)
	return err
}

func checkEERBand(v string) error {
	_, err := calculator.ParseEERBand(v)
	return err
}

func checkFormat(v string) error {
	if !IsValidFormat(v) {
		return fmt.Errorf("unsupported format %q (table, json, ndjson, csv)", v)
	}
	return nil
}

//nolint:gochecknoglobals // Fixed key table.
var fields = map[string]field{
	"defaults.area_m2":         floatField(func(c *Config) *float64 { return &c.Defaults.AreaM2 }, true),
	"defaults.roof_type":       stringField(func(c *Config) *string { return &c.Defaults.RoofType }, checkRoofType),
	"defaults.roof_insulation": stringField(func(c *Config) *string { return &c.Defaults.RoofInsulation }, checkInsulation),
	"defaults.wall_insulation": stringField(func(c *Config) *string { return &c.Defaults.WallInsulation }, checkInsulation),
	"defaults.eer_band":        stringField(func(c *Config) *string { return &c.Defaults.EERBand }, checkEERBand),
	"defaults.eer":             floatField(func(c *Config) *float64 { return &c.Defaults.EER }, true),
	"defaults.energy_price":    floatField(func(c *Config) *float64 { return &c.Defaults.EnergyPrice }, true),
	"defaults.emission_factor": floatField(func(c *Config) *float64 { return &c.Defaults.EmissionFactor }, true),
	"defaults.unit_cost":       floatField(func(c *Config) *float64 { return &c.Defaults.UnitCost }, true),
	"defaults.currency":        stringField(func(c *Config) *string { return &c.Defaults.Currency }, nil),
	"charts.auto_scale": {
		get: func(c *Config) string { return strconv.FormatBool(c.Charts.AutoScale) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("invalid boolean %q: %w", v, err)
			}
			c.Charts.AutoScale = b
			return nil
		},
	},
	"charts.overrides.cumulative":  floatField(func(c *Config) *float64 { return &c.Charts.Overrides.Cumulative }, true),
	"charts.overrides.trees":       floatField(func(c *Config) *float64 { return &c.Charts.Overrides.Trees }, true),
	"charts.overrides.car_km":      floatField(func(c *Config) *float64 { return &c.Charts.Overrides.CarKm }, true),
	"charts.overrides.households":  floatField(func(c *Config) *float64 { return &c.Charts.Overrides.Households }, true),
	"charts.overrides.light_bulbs": floatField(func(c *Config) *float64 { return &c.Charts.Overrides.LightBulbs }, true),
	"output.default_format":        stringField(func(c *Config) *string { return &c.Output.DefaultFormat }, checkFormat),
	"logging.level":                stringField(func(c *Config) *string { return &c.Logging.Level }, nil),
	"logging.format":               stringField(func(c *Config) *string { return &c.Logging.Format }, nil),
	"logging.file":                 stringField(func(c *Config) *string { return &c.Logging.File }, nil),
}

// Keys returns every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "defaults.energy_price".
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return f.get(c), nil
}

// Set parses and stores the value of a dotted key.
func (c *Config) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := f.set(c, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}
