package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DavidEgerton1/student-report-generator/internal/config"
	"github.com/DavidEgerton1/student-report-generator/internal/service/report"
	"github.com/DavidEgerton1/student-report-generator/internal/store"
)

// version 构建时通过 -ldflags 注入
var version = "dev"

var (
	// 全局参数
	verbose    bool
	configPath string
	dataDir    string

	logger  *zap.Logger
	cfg     *config.AppConfig
	cfgInfo config.LoadConfigInfo
)

var rootCmd = &cobra.Command{
	Use:   "reportgen",
	Short: "Student Report Generator",
	Long: `Builds the end-of-term student report workbook from a behavior form,
two mini-test score sheets and a comment bank.

Run "reportgen serve" to use the upload form in the browser.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, cfgInfo, err = config.LoadConfigWithInfo(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			cfg.Data.DataDir = dataDir
		}
		logger.Debug("config loaded",
			zap.String("path", cfgInfo.Path),
			zap.Bool("found", cfgInfo.Found),
			zap.String("data_dir", cfg.Data.DataDir),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml (default: next to the executable)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (overrides config)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "reportgen", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, report.FailureMessage(err))
		os.Exit(1)
	}
}

// reportSettings 由配置生成报表参数
func reportSettings(c *config.AppConfig) report.Settings {
	return report.Settings{
		DefaultScore: c.Report.DefaultScore,
		InputSheet:   c.Report.InputSheet,
		OutputSheet:  c.Report.SheetName,
	}
}

// openHistory 按配置打开历史库；未启用时返回 nil
func openHistory(c *config.AppConfig) (*store.Store, error) {
	if !c.Data.History {
		return nil, nil
	}
	dir, err := config.EnsureDataDir(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return store.Open(dir)
}
