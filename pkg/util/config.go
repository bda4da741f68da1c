package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lintang-b-s/drivingroute/pkg"
	"github.com/spf13/viper"
)

func SetConfigDefaults() {
	viper.SetDefault("DISTANCE_TABLE_PATH", "./data/Distances.csv")
	viper.SetDefault("REQUEST_PATH", "./input.txt")
	viper.SetDefault("REPORT_PATH", "./output.txt")
	viper.SetDefault("GRAPH_CAPACITY", pkg.DEFAULT_GRAPH_CAPACITY)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("BATCH_WORKERS", 4)

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("API_RATE_LIMIT", 50.0)
	viper.SetDefault("API_RATE_BURST", 100)
	viper.SetDefault("RESULT_CACHE_SIZE", 1<<12)
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")
}

// ReadConfig loads ./data/config.* when present. Every key can be overridden from the
// environment with the DRIVINGROUTE_ prefix.
func ReadConfig() error {
	SetConfigDefaults()

	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.SetEnvPrefix("DRIVINGROUTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
