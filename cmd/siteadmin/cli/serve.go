package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arpmotors/siteadmin/internal/server"
	"github.com/arpmotors/siteadmin/internal/service"
	"github.com/arpmotors/siteadmin/internal/store"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		host string
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the site admin API server",
		Long:  "Start the HTTP server that exposes the site content API and the admin endpoints.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port, dev)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP listen port")
	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "HTTP listen host")
	cmd.Flags().BoolVar(&dev, "dev", false, "Enable development mode (verbose logging)")

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

	st, err := store.New(resolveDataDir())
	if err != nil {
		return fmt.Errorf("init content store: %w", err)
	}
	defer st.Close()
	logger.Info("content store initialized", "path", resolveDataDir())

	// The config file may carry a ${VAR} placeholder for the secret.
	jwtSecret := os.ExpandEnv(viper.GetString("auth.jwt_secret"))
	if jwtSecret == "" {
		jwtSecret = "siteadmin-dev-secret-change-me"
		logger.Warn("auth.jwt_secret not set, using development default")
	}

	tokenTTL := 24 * time.Hour
	if raw := viper.GetString("auth.token_ttl"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parse auth.token_ttl: %w", err)
		}
		tokenTTL = ttl
	}

	authSvc := service.NewAuthService(st, jwtSecret, tokenTTL)

	hasAdmin, err := st.HasAnyAdmin(context.Background())
	if err != nil {
		logger.Warn("failed to check for admin", "error", err)
	}
	if !hasAdmin {
		logger.Warn("no admin account found - run: siteadmin admin create")
	}

	srvCfg := server.DefaultConfig()
	srvCfg.Host = host
	srvCfg.Port = port
	if origins := viper.GetStringSlice("server.cors.origins"); len(origins) > 0 {
		srvCfg.CORSOrigins = origins
	}

	srv := server.New(srvCfg, st, authSvc, logger)

	fmt.Printf("→ Listening on http://%s:%d\n", host, port)
	fmt.Printf("→ Health:    http://%s:%d/healthz\n", host, port)
	fmt.Println()

	return srv.ListenAndServe()
}
