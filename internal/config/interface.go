package config

import "time"

// Config carries everything tunable about a scan: the ambient settings
// plus the range catalog and array profiles. The bounds are empirical
// priors for current hardware generations, carried as data so they can
// be tuned per generation without touching detector logic.
type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Interval time.Duration `mapstructure:"interval"`
	Cores    int           `mapstructure:"cores"`
	Path     string        `mapstructure:"path"`

	Ranges map[string][]float64    `mapstructure:"ranges"`
	Arrays map[string]ArraySetting `mapstructure:"arrays"`
}

// ArraySetting configures one named array scan. Mean and Spread apply
// to strict mode, Outliers to tolerant mode.
type ArraySetting struct {
	Mode     string    `mapstructure:"mode"`
	Value    []float64 `mapstructure:"value"`
	Mean     []float64 `mapstructure:"mean"`
	Spread   float64   `mapstructure:"spread"`
	Outliers int       `mapstructure:"outliers"`
}

const (
	DefaultLogLevel = "info"
	DefaultInterval = time.Second
	DefaultPath     = "/sys/kernel/ryzen_smu_drv"
)
