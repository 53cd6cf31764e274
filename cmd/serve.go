package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	_ "time/tzdata" // コンテナに zoneinfo がなくても Asia/Tokyo を読めるように

	"tabebui/internal/config"
	"tabebui/internal/handlers"
	"tabebui/internal/llm"
	"tabebui/internal/middleware"
	"tabebui/internal/repository"
	"tabebui/internal/seed"
	"tabebui/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "API サーバーを起動する",
		Example: `  # config.yaml の server.port で起動
  tabebui serve

  # ポートを指定
  tabebui serve --port :3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Cfg
			if port != "" {
				cfg.Server.Port = port
			}
			return runServer(cmd.Context(), cfg, slog.Default())
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "待ち受けアドレス (例: :8080)")

	return cmd
}

func runServer(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	logger.Info("Application starting...", slog.String("version", config.AppVersion))

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.App.Timezone, err)
	}
	defaultUserID, err := uuid.Parse(cfg.App.DefaultUserID)
	if err != nil {
		return fmt.Errorf("app.default_user_id: %w", err)
	}

	// 1. DB接続
	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeDB(db, logger)

	partRepo := repository.NewGormPartRepository()
	sessionRepo := repository.NewGormSessionRepository()
	recordRepo := repository.NewGormRecordRepository()

	if cfg.Database.Seed {
		parts, err := seed.Load()
		if err != nil {
			return err
		}
		if _, err := seed.Apply(middleware.WithLogger(ctx, logger), db, partRepo, parts); err != nil {
			return err
		}
	}

	// 2. 依存関係の組み立て
	provider, err := llm.New(llm.Config{Provider: cfg.Chat.Provider, APIKey: cfg.Chat.APIKey})
	if err != nil {
		return err
	}
	if cfg.Chat.APIKey == "" {
		logger.Warn("Chat API key is not set; /chat/message will return 502")
	}

	clock := service.RealClock{}
	partService := service.NewPartService(db, partRepo)
	recordService := service.NewRecordService(db, partRepo, sessionRepo, recordRepo, clock, cfg.App.MaxPerPage)
	progressService := service.NewProgressService(db, partRepo, sessionRepo, recordRepo, clock, loc)
	chatService := service.NewChatService(provider, progressService, cfg.Chat)

	h := &handlers.Handlers{
		Part:     handlers.NewPartHandler(partService, logger),
		Record:   handlers.NewRecordHandler(recordService, logger),
		Progress: handlers.NewProgressHandler(progressService, logger),
		Chat:     handlers.NewChatHandler(chatService, logger),
		Health: handlers.NewHealthHandler(func(ctx context.Context) error {
			return repository.Ping(ctx, db)
		}, logger),
	}

	// 3. ルーター
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	// チャットは再試行を含めて待つので、その分だけ長めにとる
	r.Use(chimiddleware.Timeout(requestTimeout(cfg.Chat)))

	h.RegisterRoutes(r, middleware.UserContextMiddleware(defaultUserID))

	// 4. 起動
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: requestTimeout(cfg.Chat) + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", slog.Any("error", err))
			return err
		}
		logger.Info("Server stopped")
		return nil
	case err := <-serverErr:
		logger.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		return err
	}
}

// requestTimeout はチャットの最大待ち時間 (1回 + 再試行) に余裕を足したもの
func requestTimeout(chat config.ChatConfig) time.Duration {
	return time.Duration(1+chat.MaxRetries)*chat.Timeout + 10*time.Second
}

func closeDB(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", slog.Any("error", err))
		return
	}
	logger.Info("Database connection closed.")
}
