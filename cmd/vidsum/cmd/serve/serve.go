package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vidsum/internal/app"
	"vidsum/internal/app/logger"
	"vidsum/internal/app/media"
	"vidsum/internal/config"
)

var (
	configPath string
	host       string
	port       string
)

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "optional YAML server config file")
	Cmd.Flags().StringVar(&host, "host", "", "listen host (overrides config)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides config)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI and HTTP API",
	Long: `Start the web UI and HTTP API

- Uploads are processed asynchronously; poll the job, then download
  transcript.txt and summary.txt
- API keys are taken per request from headers and are never persisted`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadServerConfig(configPath)
		if err != nil {
			return err
		}
		if host != "" {
			cfg.Host = host
		}
		if port != "" {
			cfg.Port = port
		}

		keys, err := config.GetAPIKeys()
		if err != nil {
			return err
		}

		zapLogger := logger.MustNewLogger(cfg.Environment != "production")
		defer zapLogger.Sync()

		// Conversion needs ffmpeg; warn up front instead of failing the
		// first non-MP4 upload.
		if err := media.NewDiagnostics().Check(); err != nil {
			zapLogger.Warn("media binaries missing, non-MP4 uploads will fail", zap.Error(err))
		}

		application := app.InitializeApp(cfg, *keys, zapLogger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application.Store.StartSweeper(ctx, 5*time.Minute, cfg.JobTTL)

		errCh := make(chan error, 1)
		go func() {
			errCh <- application.Server.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return application.Server.Shutdown(shutdownCtx)
	},
}
