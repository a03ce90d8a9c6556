package cli

import (
	"gorm.io/gorm"

	"opsboard/internal/config"
	"opsboard/internal/repository"
	"opsboard/internal/service"
)

// env bundles the repositories and services a command needs. Each command
// opens its own handle so opsctl works against whatever DATABASE_URL points at.
type env struct {
	db             *gorm.DB
	locations      *repository.LocationRepository
	tasks          *repository.TaskRepository
	completions    *repository.CompletionRepository
	streaks        *repository.StreakRepository
	taskSvc        *service.TaskService
	streakSvc      *service.StreakService
	leaderboardSvc *service.LeaderboardService
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	e := &env{
		db:          db,
		locations:   repository.NewLocationRepository(db),
		tasks:       repository.NewTaskRepository(db),
		completions: repository.NewCompletionRepository(db),
		streaks:     repository.NewStreakRepository(db),
	}
	e.streakSvc = service.NewStreakService(e.streaks)
	e.taskSvc = service.NewTaskService(e.tasks, e.completions, e.streakSvc)
	e.leaderboardSvc = service.NewLeaderboardService(e.locations, e.tasks, e.completions)
	return e, nil
}

func (e *env) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		sqlDB.Close()
	}
}
