package config

import (
	"os"
	"sort"

	"codeberg.org/mutker/smuscan/internal/errors"
	"codeberg.org/mutker/smuscan/internal/pmtable"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load reads configuration from defaults, the config file
// (/etc/smuscan.toml, overridable via SMUSCAN_CONFIG), SMUSCAN_*
// environment variables, and finally any flags the caller already
// parsed. Later sources win.
func Load(flags *pflag.FlagSet) (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path := os.Getenv("SMUSCAN_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("smuscan")
		v.AddConfigPath("/etc")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	v.SetEnvPrefix("SMUSCAN")
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
		// Dashed flag spellings map onto the underscored config keys.
		if f := flags.Lookup("log-level"); f != nil {
			if err := v.BindPFlag("log_level", f); err != nil {
				return nil, errFactory.Wrap(errors.ErrBindFlags, err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("cores", 0)
	v.SetDefault("path", DefaultPath)

	v.SetDefault("ranges.temperature", []float64{30, 95})
	v.SetDefault("ranges.power", []float64{5, 200})
	v.SetDefault("ranges.frequency", []float64{1000, 7000})
	v.SetDefault("ranges.voltage", []float64{0.5, 2.0})
	v.SetDefault("ranges.tctl", []float64{40, 95})
	v.SetDefault("ranges.soc", []float64{30, 70})

	v.SetDefault("arrays.temperature.mode", "strict")
	v.SetDefault("arrays.temperature.value", []float64{25, 100})
	v.SetDefault("arrays.temperature.mean", []float64{35, 85})
	v.SetDefault("arrays.temperature.spread", 30.0)

	v.SetDefault("arrays.power.mode", "strict")
	v.SetDefault("arrays.power.value", []float64{0.5, 20})
	v.SetDefault("arrays.power.mean", []float64{2, 15})
	v.SetDefault("arrays.power.spread", 20.0)

	v.SetDefault("arrays.frequency.mode", "tolerant")
	v.SetDefault("arrays.frequency.value", []float64{400, 6000})
	v.SetDefault("arrays.frequency.outliers", 2)
}

func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if c.Cores < 0 {
		return errFactory.WithData(errors.ErrInvalidConfig, "cores must be non-negative")
	}

	for name, bounds := range c.Ranges {
		if len(bounds) != 2 || bounds[0] >= bounds[1] {
			return errFactory.WithData(errors.ErrInvalidConfig, "range "+name+" must be a [low, high] pair with low < high")
		}
	}

	for name, setting := range c.Arrays {
		switch setting.Mode {
		case "strict":
			if len(setting.Mean) != 2 || setting.Mean[0] >= setting.Mean[1] {
				return errFactory.WithData(errors.ErrInvalidConfig, "array "+name+" mean must be a [low, high] pair with low < high")
			}
			if setting.Spread <= 0 {
				return errFactory.WithData(errors.ErrInvalidConfig, "array "+name+" spread must be positive")
			}
		case "tolerant":
			if setting.Outliers < 0 {
				return errFactory.WithData(errors.ErrInvalidConfig, "array "+name+" outliers must be non-negative")
			}
		default:
			return errFactory.WithData(errors.ErrInvalidConfig, "array "+name+" has unknown mode "+setting.Mode)
		}
		if len(setting.Value) != 2 || setting.Value[0] >= setting.Value[1] {
			return errFactory.WithData(errors.ErrInvalidConfig, "array "+name+" value must be a [low, high] pair with low < high")
		}
	}

	return nil
}

// Range returns the named entry of the range catalog.
func (c *Config) Range(name string) (pmtable.Range, bool) {
	bounds, ok := c.Ranges[name]
	if !ok {
		return pmtable.Range{}, false
	}

	return pmtable.Range{Name: name, Low: bounds[0], High: bounds[1]}, true
}

// RangeNames returns the catalog's quantity names in stable order.
func (c *Config) RangeNames() []string {
	names := make([]string, 0, len(c.Ranges))
	for name := range c.Ranges {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ArrayProfile returns the named array scan profile.
func (c *Config) ArrayProfile(name string) (pmtable.ArrayProfile, bool) {
	setting, ok := c.Arrays[name]
	if !ok {
		return pmtable.ArrayProfile{}, false
	}

	profile := pmtable.ArrayProfile{
		Mode:     pmtable.ArrayMode(setting.Mode),
		Value:    pmtable.Range{Name: name, Low: setting.Value[0], High: setting.Value[1]},
		Outliers: setting.Outliers,
	}
	if setting.Mode == "strict" {
		profile.Mean = pmtable.Range{Low: setting.Mean[0], High: setting.Mean[1]}
		profile.MaxSpread = setting.Spread
	}

	return profile, true
}

// ArrayNames returns the configured array scan names in stable order.
func (c *Config) ArrayNames() []string {
	names := make([]string, 0, len(c.Arrays))
	for name := range c.Arrays {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
