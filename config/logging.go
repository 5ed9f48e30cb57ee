package config

import "fmt"

type LoggingConfig struct {
	// Level is the minimum level emitted: debug, info, warn or error.
	Level string `json:"level"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", c.Level)
}

type MetricsConfig struct {
	// PrometheusEnabled registers the Prometheus sink on the default
	// registerer; decode failures and constructions are then counted.
	PrometheusEnabled bool `json:"prometheusEnabled"`
}
