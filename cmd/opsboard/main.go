package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opsboard/internal/config"
	"opsboard/internal/notify"
	"opsboard/internal/repository"
	"opsboard/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	locationRepo := repository.NewLocationRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	completionRepo := repository.NewCompletionRepository(db)
	streakRepo := repository.NewStreakRepository(db)

	streakSvc := service.NewStreakService(streakRepo)
	taskSvc := service.NewTaskService(taskRepo, completionRepo, streakSvc)
	leaderboardSvc := service.NewLeaderboardService(locationRepo, taskRepo, completionRepo)
	digestSvc := service.NewDigestService(taskSvc, streakSvc, leaderboardSvc)

	if cfg.TelegramToken == "" {
		log.Println("TELEGRAM_TOKEN not set and the daemon only delivers digests; use opsctl for queries")
		return
	}

	notifier, err := notify.NewTelegramNotifier(cfg.TelegramToken, locationRepo, digestSvc)
	if err != nil {
		log.Fatalf("notifier: %v", err)
	}

	scheduler := service.NewSchedulerService(cfg.Timezone)
	if _, err := scheduler.ScheduleDaily(cfg.DigestTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := notifier.SendDailyDigests(jobCtx, time.Now().In(cfg.Timezone)); err != nil {
			log.Printf("digest: %v", err)
		}
	}); err != nil {
		log.Fatalf("schedule digests: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Printf("[info] opsboard started, digests at %s", cfg.DigestTime)
	<-ctx.Done()
	log.Println("Shutdown complete.")
}
