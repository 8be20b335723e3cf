package expirer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shaiso/Delega/internal/domain"
	"github.com/shaiso/Delega/internal/service"
)

// TaskExpirer — команды над задачами, нужные expirer'у.
type TaskExpirer interface {
	ExpireTask(ctx context.Context, id domain.TaskID) error
}

// Expirer — сервис истечения сроков задач.
type Expirer struct {
	management TaskExpirer
	taskRepo   service.TaskRepository
	orgRepo    service.OrganizationRepository
	logger     *slog.Logger
}

// Config — конфигурация Expirer.
type Config struct {
	Management TaskExpirer
	TaskRepo   service.TaskRepository
	OrgRepo    service.OrganizationRepository
	Logger     *slog.Logger
}

// New создаёт новый Expirer.
func New(cfg Config) *Expirer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Expirer{
		management: cfg.Management,
		taskRepo:   cfg.TaskRepo,
		orgRepo:    cfg.OrgRepo,
		logger:     logger,
	}
}

// Tick выполняет один тик.
//
// 1. Находит PENDING задачи с expires <= now
// 2. Каждую проводит через команду Expire
//
// Ошибки одной задачи не блокируют обработку остальных.
func (e *Expirer) Tick(ctx context.Context) (int, error) {
	tasks, err := e.taskRepo.QueryExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("query expired tasks: %w", err)
	}

	if len(tasks) == 0 {
		return 0, nil
	}

	e.logger.Debug("found expired tasks", "count", len(tasks))

	var expired int
	for _, task := range tasks {
		if err := e.management.ExpireTask(ctx, task.ID()); err != nil {
			e.logger.Error("failed to expire task",
				"task_id", task.ID(),
				"org_id", task.Organization(),
				"error", err,
			)
			// Продолжаем обработку остальных
			continue
		}
		expired++
	}

	e.logger.Info("expirer tick completed",
		"due", len(tasks),
		"expired", expired,
	)

	return expired, nil
}

// ReportDueRepeats логирует организации с наступившими повторяющимися
// задачами. Автоназначения повторов пока нет, сервис только
// подсвечивает их операторам.
func (e *Expirer) ReportDueRepeats(ctx context.Context, now time.Time) {
	orgs, err := e.orgRepo.QueryPendingRepeats(ctx, now)
	if err != nil {
		e.logger.Warn("failed to query pending repeats", "error", err)
		return
	}
	for _, org := range orgs {
		e.logger.Info("organization has due repeating tasks",
			"org_id", org.ID(),
			"name", org.Name(),
		)
	}
}
