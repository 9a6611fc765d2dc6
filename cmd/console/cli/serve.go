package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eduplay/console/internal/config"
	"github.com/eduplay/console/internal/live"
	"github.com/eduplay/console/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		host string
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the console API server",
		Long:  "Start the HTTP server that exposes the admin API and the live-effect websocket endpoint.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port, dev)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP listen port")
	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "HTTP listen host")
	cmd.Flags().BoolVar(&dev, "dev", false, "Enable development mode (verbose logging, CORS *)")

	viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))

	return cmd
}

func runServe(host string, port int, dev bool) error {
	logLevel := slog.LevelInfo
	if dev {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	srvCfg := server.DefaultConfig()
	srvCfg.Host = host
	srvCfg.Port = port

	// Layer in file config when present. Env vars and flags win.
	if cfgFile != "" {
		fileCfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if fileCfg.Server.Host != "" && host == "0.0.0.0" {
			srvCfg.Host = fileCfg.Server.Host
		}
		if fileCfg.Server.Port != 0 && port == 8080 {
			srvCfg.Port = fileCfg.Server.Port
		}
		if len(fileCfg.Server.CORSOrigins) > 0 {
			srvCfg.CORSOrigins = fileCfg.Server.CORSOrigins
		}
		if fileCfg.Logging.Level == "debug" {
			logLevel = slog.LevelDebug
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
		}
		if dataDir == "" && fileCfg.DataDir != "" {
			dataDir = fileCfg.DataDir
		}
	}
	if origins := viper.GetStringSlice("cors_origins"); len(origins) > 0 {
		srvCfg.CORSOrigins = origins
	}

	st, err := openStore()
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer st.Close()
	logger.Info("store initialized", "path", resolveDataDir())

	authSvc := newAuthService()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	hasAdmin, err := st.HasAnyAdmin(ctx)
	if err != nil {
		logger.Warn("failed to check for admin", "error", err)
	}
	if !hasAdmin {
		logger.Warn("no admin account found - register via the API or run: console admin create")
	}

	registry := live.NewRegistry()

	srv := server.New(srvCfg, st, authSvc, registry, logger)
	return srv.ListenAndServe()
}
