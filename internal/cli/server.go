package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crorepati-quiz-service/internal/app"
	"crorepati-quiz-service/internal/config"
	"crorepati-quiz-service/internal/domain"
	"crorepati-quiz-service/internal/infra/memory"
	pgloader "crorepati-quiz-service/internal/infra/postgres"
	infraredis "crorepati-quiz-service/internal/infra/redis"
	"crorepati-quiz-service/internal/prize"
	"crorepati-quiz-service/internal/question"
	transport "crorepati-quiz-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	defaults := domain.Settings{DefaultTimeLimit: cfg.Quiz.DefaultTimeLimit}
	if defaults.DefaultTimeLimit <= 0 {
		defaults.DefaultTimeLimit = question.FallbackTimeLimit
	}

	var questionStore question.TeacherStore
	var settingsStore prize.SettingsStore
	var giftStore prize.GiftStore
	var leaderboard app.LeaderboardStore
	if redisClient != nil {
		questionStore = infraredis.NewQuestionStore(redisClient)
		settingsStore = infraredis.NewSettingsStore(redisClient, defaults)
		giftStore = infraredis.NewGiftStore(redisClient)
		leaderboard = infraredis.NewLeaderboardStore(redisClient)
	} else {
		questionStore = memory.NewQuestionStore()
		settingsStore = memory.NewSettingsStore(defaults)
		giftStore = memory.NewGiftStore()
		leaderboard = memory.NewLeaderboardStore()
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var bank question.BankLoader = memory.NewStaticBankLoader(question.DefaultBank())
	if pool != nil {
		bank = pgloader.NewBankLoader(pool, cfg.Postgres.BankID)
	}

	bankTTL := config.TTLDuration(cfg.Quiz.BankCacheTTL, 10*time.Minute)
	repo := question.NewRepository(questionStore, bank, settingsStore, bankTTL)

	serverCtx, stopBackground := context.WithCancel(ctx)
	defer stopBackground()
	sweepInterval := config.TTLDuration(cfg.Quiz.SweepInterval, question.SweepInterval)
	repo.StartSweeper(serverCtx, sweepInterval)

	ladder := prize.NewLadder(settingsStore)
	gifts := prize.NewGiftResolver(giftStore)

	wsHandler := transport.NewWSHandler(func() *app.Game {
		return app.NewGame(repo, leaderboard, gifts, settingsStore)
	})
	admin := transport.NewAdminHandler(repo, ladder, gifts, settingsStore, leaderboard)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	admin.Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
