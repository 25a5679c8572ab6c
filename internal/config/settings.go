package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds the tunables that may be overridden from a config file or
// the environment. Fixed geometry and buffer sizes live in the const block.
type Settings struct {
	VitalsInterval     time.Duration `mapstructure:"vitalsInterval"`
	DroneInterval      time.Duration `mapstructure:"droneInterval"`
	DroneProbability   float64       `mapstructure:"droneProbability"`
	GunfireInterval    time.Duration `mapstructure:"gunfireInterval"`
	GunfireProbability float64       `mapstructure:"gunfireProbability"`
	DriftInterval      time.Duration `mapstructure:"driftInterval"`
	JamClearDelay      time.Duration `mapstructure:"jamClearDelay"`
	DeadManTick        time.Duration `mapstructure:"deadManTick"`

	Seed     int64  `mapstructure:"seed"`
	LogLevel string `mapstructure:"logLevel"`
	LogFile  string `mapstructure:"logFile"`
}

// Defaults returns the settings used when nothing is overridden.
func Defaults() Settings {
	return Settings{
		VitalsInterval:     time.Second,
		DroneInterval:      3 * time.Second,
		DroneProbability:   0.15,
		GunfireInterval:    5 * time.Second,
		GunfireProbability: 0.08,
		DriftInterval:      2 * time.Second,
		JamClearDelay:      10 * time.Second,
		DeadManTick:        time.Second,
		Seed:               0,
		LogLevel:           "info",
		LogFile:            "",
	}
}

// Load reads settings from the optional config file at path and from
// VAJRA_* environment variables, on top of Defaults.
// An empty path skips the file.
func Load(path string) (Settings, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("vitalsInterval", d.VitalsInterval)
	v.SetDefault("droneInterval", d.DroneInterval)
	v.SetDefault("droneProbability", d.DroneProbability)
	v.SetDefault("gunfireInterval", d.GunfireInterval)
	v.SetDefault("gunfireProbability", d.GunfireProbability)
	v.SetDefault("driftInterval", d.DriftInterval)
	v.SetDefault("jamClearDelay", d.JamClearDelay)
	v.SetDefault("deadManTick", d.DeadManTick)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("logFile", d.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if s.DroneProbability < 0 || s.DroneProbability > 1 {
		return Settings{}, fmt.Errorf("droneProbability must be within [0,1], got %v", s.DroneProbability)
	}
	if s.GunfireProbability < 0 || s.GunfireProbability > 1 {
		return Settings{}, fmt.Errorf("gunfireProbability must be within [0,1], got %v", s.GunfireProbability)
	}
	return s, nil
}
