package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/instancekit/instancekit/core/descriptor"
	"github.com/instancekit/instancekit/infra/logger"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Decode a binary descriptor file and report its fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.NewZerologLogger("inspect", cfg.Logging.Level)
	sink, err := newSink(cfg)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	var d descriptor.InstanceDescriptor
	if err := d.DecodeBinary(f); err != nil {
		if serr := sink.RecordDecodeFailure(decodeFailureKind(err)); serr != nil {
			logg.Warnf("metrics sink: %v", serr)
		}
		logg.Errorf("decode %s: %v", args[0], err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "factory tag:   %s\n", d.FactoryTag)
	fmt.Fprintf(out, "instance tag:  %s\n", d.InstanceTag)
	fmt.Fprintf(out, "instance name: %s\n", d.InstanceName)
	fmt.Fprintf(out, "valid:         %t\n", d.IsValid())
	return nil
}

func decodeFailureKind(err error) string {
	switch {
	case errors.Is(err, descriptor.ErrStartMarkerNotFound):
		return "start_marker"
	case errors.Is(err, descriptor.ErrEndMarkerNotFound):
		return "end_marker"
	default:
		return "stream"
	}
}
