package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"notesapi/internal/config"
	"notesapi/internal/db"
	"notesapi/internal/handler"
	"notesapi/internal/job"
	"notesapi/internal/middleware"
	"notesapi/internal/repo"
	"notesapi/internal/revoke"
	"notesapi/internal/schedule"
	"notesapi/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "notesapi",
		Short: "notesapi backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run notesapi server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			conn, err := db.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := db.ApplyMigrations(conn); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, conn)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, conn *sql.DB) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.Bool("cookie_secure", *cfg.CookieSecure),
	)

	userRepo := repo.NewUserRepo(conn)
	noteRepo := repo.NewNoteRepo(conn)
	tagRepo := repo.NewTagRepo(conn)
	noteTagRepo := repo.NewNoteTagRepo(conn)
	revokedRepo := repo.NewRevokedTokenRepo(conn)

	accessTTL := time.Hour * time.Duration(cfg.AccessTTLHours)
	refreshTTL := 24 * time.Hour * time.Duration(cfg.RefreshTTLDays)
	revocations := revoke.NewStore(revokedRepo, 4096, 5*time.Minute)

	authService := service.NewAuthService(userRepo, revocations, []byte(cfg.JWTSecret), accessTTL, refreshTTL)
	noteService := service.NewNoteService(noteRepo, noteTagRepo, tagRepo)
	tagService := service.NewTagService(tagRepo, noteTagRepo)
	exportService := service.NewExportService(noteRepo, tagRepo, noteTagRepo)

	cookies := handler.NewCookieWriter(*cfg.CookieSecure, accessTTL, refreshTTL)

	deps := handler.RouterDeps{
		Auth:        handler.NewAuthHandler(authService, cookies),
		Notes:       handler.NewNoteHandler(noteService),
		Tags:        handler.NewTagHandler(tagService),
		Export:      handler.NewExportHandler(exportService),
		JWTSecret:   []byte(cfg.JWTSecret),
		Revocations: revocations,
		AuthWindow:  time.Second * time.Duration(cfg.AuthRateWindow),
	}

	engine, err := webapi.NewEngine(
		"/api",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSOrigins),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	scheduler := schedule.NewCronScheduler()
	if err := scheduler.AddJob(job.NewRevokedTokenCleanupJob(revokedRepo), cfg.RevokePurgeSpec); err != nil {
		return fmt.Errorf("schedule cleanup job: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	scheduler.Start(ctx)

	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))
	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	scheduler.Stop()
	return nil
}
