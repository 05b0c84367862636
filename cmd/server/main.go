package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/singhsaravjit/portfolio-assistant/internal/assistant"
	"github.com/singhsaravjit/portfolio-assistant/internal/chat"
	"github.com/singhsaravjit/portfolio-assistant/internal/config"
	"github.com/singhsaravjit/portfolio-assistant/internal/db"
	"github.com/singhsaravjit/portfolio-assistant/internal/httpapi"
	"github.com/singhsaravjit/portfolio-assistant/internal/httpapi/handlers"
	"github.com/singhsaravjit/portfolio-assistant/internal/profile"
	"github.com/singhsaravjit/portfolio-assistant/internal/store/rabbitmq"
	"github.com/singhsaravjit/portfolio-assistant/internal/store/redisstore"
)

const janitorSweepInterval = time.Minute

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional section cache
	var cache profile.SectionCache
	if cfg.RedisAddr != "" {
		rds := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.ProfileCacheTTL)
		defer rds.Close()
		cache = rds
	}

	// Profile source registry (route by PROFILE_SOURCE)
	var repo *profile.Repo
	reg := profile.NewRegistry()
	reg.Register("http", func() (profile.Provider, error) {
		return profile.NewHTTPProvider(cfg.ProfileBaseURL, cache), nil
	})
	reg.Register("db", func() (profile.Provider, error) {
		gdb, err := db.Connect(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		repo = profile.NewRepo(gdb)
		if err := repo.Migrate(); err != nil {
			return nil, err
		}
		return profile.NewDBProvider(repo), nil
	})

	provider, err := reg.Get(cfg.ProfileSource)
	if err != nil {
		log.Fatalf("profile source: %v", err)
	}

	profiles := profile.NewStore(provider)
	if err := profiles.Refresh(ctx); err != nil {
		// The composer degrades per-field; an empty snapshot is a
		// valid (if bare) starting state.
		log.Printf("initial profile load failed: %v", err)
	}
	go profiles.RunRefresher(ctx, cfg.ProfileRefresh)

	// Optional engagement events
	var sink chat.EventSink
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			log.Fatalf("rabbit dial: %v", err)
		}
		defer pub.Close()
		sink = pub
	}

	engine := assistant.NewEngine(profiles)
	timing := chat.Timing{
		AutoOpenDelay:         cfg.AutoOpenDelay,
		ReplyThinkingDelay:    cfg.ReplyThinkingDelay,
		QuickActionRelayDelay: cfg.QuickActionRelayDelay,
	}
	sessions := chat.NewManager(engine, chat.RealClock(), timing, cfg.SessionIdleTTL, sink)
	go sessions.RunJanitor(ctx, janitorSweepInterval)

	h := handlers.NewHandler(cfg, sessions, profiles, repo, cache)
	router := httpapi.NewRouter(h)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		log.Printf("server started, addr=%s profile_source=%s", cfg.HTTPAddr, cfg.ProfileSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
