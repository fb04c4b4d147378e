package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DavidEgerton1/student-report-generator/internal/config"
)

var initConfigForce bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the current settings to config.toml",
	Long: `Writes the effective settings (defaults, config file, environment and
--data-dir) to the config path so they can be edited.`,
	RunE: runInitConfig,
}

func init() {
	initConfigCmd.Flags().BoolVar(&initConfigForce, "force", false, "Overwrite an existing config file")
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := cfgInfo.Path
	if path == "" {
		path = config.DefaultPath()
	}

	if _, err := os.Stat(path); err == nil && !initConfigForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
	return nil
}
