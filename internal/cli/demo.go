package cli

import (
	"github.com/spf13/cobra"

	"github.com/edward-ap/stepslider/internal/config"
	"github.com/edward-ap/stepslider/internal/sliderapp"
)

func newDemoCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open a window with a StepSlider",
		Long: `Open a window hosting a StepSlider built from a config file.

Without --config the slider is read from, and saved back to, config.json in
the user config directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			logger.Debug("starting demo", "options", len(cfg.Options), "anchor", cfg.Anchor, "value", cfg.Value)

			a, err := sliderapp.NewApp(cfg, configPath, logger)
			if err != nil {
				return err
			}
			a.Run()
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "slider config file (.json or .toml)")
	return cmd
}

// loadConfig reads path, or the user config when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}
