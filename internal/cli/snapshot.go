package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/edward-ap/stepslider/internal/config"
	"github.com/edward-ap/stepslider/internal/snapshot"
)

func newSnapshotCmd() *cobra.Command {
	var (
		configPath string
		out        string
		value      int
		scale      float64
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a slider to PNG",
		Long: `Render a slider to a PNG file without opening a window.

The slider comes from --config, or from the built-in defaults when no config
is given. --value overrides the selected step from the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			start := time.Now()

			cfg := config.Default()
			if configPath != "" {
				c, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				cfg = c
			}
			if cmd.Flags().Changed("value") {
				cfg.Value = value
			}

			props, err := cfg.Props(func(int) {}).Resolve()
			if err != nil {
				return fmt.Errorf("invalid slider config: %w", err)
			}

			// render fully before touching out so a failure leaves no file
			var buf bytes.Buffer
			if err := snapshot.WritePNG(&buf, props, cfg.Value, snapshot.WithScale(scale)); err != nil {
				return fmt.Errorf("render png: %w", err)
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			logger.Infof("Wrote %s (%s)", out, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "slider config file (.json or .toml)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path")
	cmd.Flags().IntVar(&value, "value", 0, "selected step index")
	cmd.Flags().Float64Var(&scale, "scale", 1, "scale factor")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
