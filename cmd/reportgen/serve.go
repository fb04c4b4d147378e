package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DavidEgerton1/student-report-generator/internal/api"
	"github.com/DavidEgerton1/student-report-generator/internal/config"
	"github.com/DavidEgerton1/student-report-generator/internal/server"
	"github.com/DavidEgerton1/student-report-generator/internal/util"
)

var serveOpts struct {
	port int
	dev  bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web form",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&serveOpts.port, "port", 0, "Port (only used when config.toml does not set one)")
	serveCmd.Flags().BoolVar(&serveOpts.dev, "dev", false, "Development mode (no browser, CORS enabled)")
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("==========================================")
	fmt.Println("  Student Report Generator")
	fmt.Println("==========================================")

	// 命令行参数覆盖配置
	if serveOpts.port > 0 && !cfgInfo.PortSpecified {
		cfg.Server.Port = serveOpts.port
	}
	if serveOpts.dev {
		cfg.Server.DevMode = true
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	fmt.Printf("Data directory: %s\n", dir)

	opts := api.Options{
		Version:   version,
		Settings:  reportSettings(cfg),
		Seed:      cfg.Report.Seed,
		UploadDir: config.GetDataPath(cfg, "uploads", ""),
		ExportDir: config.GetDataPath(cfg, "exports", ""),
		Logger:    logger,
	}
	history, err := openHistory(cfg)
	if err != nil {
		logger.Warn("run history disabled", zap.Error(err))
	}
	if history != nil {
		defer history.Close()
		opts.Store = history
	}

	srv := server.NewServer(opts, cfg.Server.DevMode)

	port := cfg.Server.Port
	if !cfgInfo.PortSpecified {
		port = util.FindAvailablePort(port, 10)
	}
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d", port)

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Listening on port %d ...\n", port)
		errCh <- srv.Run(addr)
	}()

	// 打开浏览器
	if !cfg.Server.DevMode {
		fmt.Printf("Opening browser: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("Could not open a browser, please visit: %s\n", url)
		}
	} else {
		fmt.Printf("Development mode: visit %s\n", url)
	}

	fmt.Println("\nPress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		fmt.Println("\nShutting down...")
		return nil
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	}
}
