// Package config loads this service's runtime configuration from
// environment variables (and, optionally, a config file) via viper.
package config
