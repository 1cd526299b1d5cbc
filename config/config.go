package config

import (
	"time"

	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL string        `mapstructure:"baseURL"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type StateConfig struct {
	// Dir holds the persisted client state (token, user, cart, theme),
	// one file per key. Ignored when Redis is configured.
	Dir      string `mapstructure:"dir"`
	RedisURL string `mapstructure:"redisURL"`
}

type DashboardConfig struct {
	RefreshInterval time.Duration `mapstructure:"refreshInterval"`
}

type Config struct {
	API       APIConfig       `mapstructure:"api"`
	State     StateConfig     `mapstructure:"state"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
}

// LoadConfig reads configuration from a YAML file and overrides it with
// environment variables. A missing config file is not an error; the
// environment alone is enough to run.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("api.baseURL", "API_BASE_URL")
	viper.BindEnv("api.timeout", "API_TIMEOUT")
	viper.BindEnv("state.dir", "STATE_DIR")
	viper.BindEnv("state.redisURL", "STATE_REDIS_URL")
	viper.BindEnv("dashboard.refreshInterval", "DASHBOARD_REFRESH_INTERVAL")

	viper.SetDefault("api.baseURL", "http://localhost:5000/api")
	viper.SetDefault("api.timeout", 30*time.Second)
	viper.SetDefault("state.dir", ".inventory-client")
	viper.SetDefault("dashboard.refreshInterval", 30*time.Second)

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return
}
