package cmd

import (
	"github.com/spf13/cobra"

	"github.com/instancekit/instancekit/config"
	coremetrics "github.com/instancekit/instancekit/core/metrics"
	inframetrics "github.com/instancekit/instancekit/infra/metrics"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "instancekit",
	Short:        "Inspect and convert instance descriptor files",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}

func newSink(cfg *config.Config) (coremetrics.Sink, error) {
	if !cfg.Metrics.PrometheusEnabled {
		return coremetrics.NopSink{}, nil
	}
	return inframetrics.NewPromSink(nil)
}
