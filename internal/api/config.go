package api

import (
	"github.com/spf13/viper"
)

// Config holds the HTTP server settings. Values come from medsim.yaml when
// present, with MEDSIM_ environment variables taking precedence.
type Config struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Debug          bool     `mapstructure:"debug"`
}

// DefaultConfig returns the server defaults: loopback on port 8080, CORS
// open to any origin.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		AllowedOrigins: []string{"*"},
	}
}

// LoadConfig reads medsim.yaml from the working directory or ~/.config/medsim.
// A missing file is not an error; defaults and environment overrides apply.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName("medsim")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/medsim")

	v.SetDefault("addr", ":8080")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("debug", false)

	v.SetEnvPrefix("MEDSIM_SERVER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
