package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string  `mapstructure:"PORT"`
	ZonesPath       string  `mapstructure:"ZONES_PATH"`
	TileURL         string  `mapstructure:"TILE_URL"`
	TileAttribution string  `mapstructure:"TILE_ATTRIBUTION"`
	MapCenterLat    float64 `mapstructure:"MAP_CENTER_LAT"`
	MapCenterLng    float64 `mapstructure:"MAP_CENTER_LNG"`
	MapZoom         int     `mapstructure:"MAP_ZOOM"`
	FitPaddingPx    int     `mapstructure:"FIT_PADDING_PX"`
}

func LoadConfig() (c Config, err error) {
	// Get environment type from ENV variable or use development as default
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Set default values
	viper.SetDefault("PORT", ":8080")
	viper.SetDefault("ZONES_PATH", "zones_with_dss.geojson")
	viper.SetDefault("TILE_URL", "https://tile.openstreetmap.org/{z}/{x}/{y}.png")
	viper.SetDefault("TILE_ATTRIBUTION", "&copy; OpenStreetMap contributors")
	viper.SetDefault("MAP_CENTER_LAT", -6.2)
	viper.SetDefault("MAP_CENTER_LNG", 106.82)
	viper.SetDefault("MAP_ZOOM", 12)
	viper.SetDefault("FIT_PADDING_PX", 20)

	// Load environment file
	viper.SetConfigName(fmt.Sprintf(".env.%s", env))
	viper.SetConfigType("env")
	viper.AddConfigPath(".") // Look in the project root directory

	// Environment variables take precedence over config file
	viper.AutomaticEnv()

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		// Continue even if file is not found
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	// Map the values to the Config struct
	err = viper.Unmarshal(&c)
	return
}
