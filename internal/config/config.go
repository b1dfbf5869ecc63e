package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/flyermap/planner/internal/density"
	"github.com/flyermap/planner/internal/geoarea"
)

// Config holds this service's runtime settings, overridable via
// FLYERROUTED_* environment variables or a flyerrouted.yaml config file.
type Config struct {
	Host string
	Port int

	// ProviderTimeout bounds every individual RoadNetworkProvider and
	// BuildingProvider call.
	ProviderTimeout time.Duration

	// BuildingMaxDistanceM is the acceptance radius the orchestrator passes
	// to density.Estimate for every request.
	BuildingMaxDistanceM float64

	WalkSpeedKMH  float64
	DriveSpeedKMH float64

	// ExportMaxWaypoints is loaded from configuration (default 23) but is
	// not read by the export package: GoogleMapsURL applies its own fixed
	// cap of 23 points.
	ExportMaxWaypoints int

	// DefaultCirclePoints is loaded from configuration (default 64) but is
	// not read when resolving a circle area: the transport layer always
	// uses geoarea.DefaultCirclePoints.
	DefaultCirclePoints int
}

// Load reads configuration from environment variables (prefixed
// FLYERROUTED_) and, if present, a flyerrouted.yaml file in the working
// directory or /etc/flyerrouted, falling back to defaults for anything
// neither source supplies.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FLYERROUTED")
	v.AutomaticEnv()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("provider_timeout_seconds", 300)
	v.SetDefault("building_max_distance_m", density.DefaultMaxDistanceM)
	v.SetDefault("walk_speed_kmh", 4.0)
	v.SetDefault("drive_speed_kmh", 30.0)
	v.SetDefault("export_max_waypoints", 23)
	v.SetDefault("circle_points", geoarea.DefaultCirclePoints)

	v.SetConfigName("flyerrouted")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/flyerrouted")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	return &Config{
		Host:                 v.GetString("host"),
		Port:                 v.GetInt("port"),
		ProviderTimeout:      time.Duration(v.GetInt("provider_timeout_seconds")) * time.Second,
		BuildingMaxDistanceM: v.GetFloat64("building_max_distance_m"),
		WalkSpeedKMH:         v.GetFloat64("walk_speed_kmh"),
		DriveSpeedKMH:        v.GetFloat64("drive_speed_kmh"),
		ExportMaxWaypoints:   v.GetInt("export_max_waypoints"),
		DefaultCirclePoints:  v.GetInt("circle_points"),
	}, nil
}
