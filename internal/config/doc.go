// Package config loads the service configuration from environment variables,
// with validation of required settings at startup.
package config
