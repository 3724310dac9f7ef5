package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cristianadrielbraun/qrgen/internal/config"
	"github.com/cristianadrielbraun/qrgen/internal/handlers"
	"github.com/cristianadrielbraun/qrgen/internal/logging"
	"github.com/cristianadrielbraun/qrgen/internal/qr"
	"github.com/cristianadrielbraun/qrgen/internal/server"
	"github.com/cristianadrielbraun/qrgen/internal/studio"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:           "qrgen",
		Short:         "QR code generator",
		Long:          "qrgen turns text, URLs or any data into QR code images, from a web page or the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.PersistentFlags().String("config", "", "path to a YAML config file")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(serve, newEncodeCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web generator",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	readTimeout, _ := cfg.ReadTimeout()
	writeTimeout, _ := cfg.WriteTimeout()

	logger, err := logging.New(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		DevMode: cfg.Server.DevMode,
	})
	if err != nil {
		return err
	}

	engine, err := qr.EngineByName(cfg.QR.Engine)
	if err != nil {
		return err
	}
	enc := qr.NewEncoder(engine, logger)

	router, err := server.NewRouter(server.RouterOptions{
		Handler: handlers.New(handlers.Options{
			Studio:  studio.New(enc, logger),
			Encoder: enc,
			Logger:  logger,
			Version: version,
		}),
		Logger:       logger,
		DevMode:      cfg.Server.DevMode,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}

	logger.WithFields(logrus.Fields{
		"component": "main",
		"version":   version,
		"engine":    enc.Engine(),
		"dev_mode":  cfg.Server.DevMode,
	}).Info("qrgen_starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx, srv, logger)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "qrgen %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
