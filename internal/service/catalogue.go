package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shaiso/Delega/internal/domain"
	"github.com/shaiso/Delega/internal/repo"
)

// Catalogue — сервис каталога определений задач. Обычный CRUD,
// event sourcing здесь не нужен.
type Catalogue struct {
	repo   CatalogueRepository
	logger *slog.Logger
}

// NewCatalogue создаёт Catalogue.
func NewCatalogue(repo CatalogueRepository, logger *slog.Logger) *Catalogue {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalogue{repo: repo, logger: logger}
}

// CreateTask создаёт определение задачи и возвращает его id.
func (c *Catalogue) CreateTask(ctx context.Context, cmd CreateCatalogueTaskCommand) (domain.CatalogueTaskID, error) {
	task := domain.CatalogueTask{
		ID:           domain.NewCatalogueTaskID(),
		Organization: cmd.Organization,
		CreatedBy:    cmd.CreatedBy,
		Title:        cmd.Title,
		Description:  cmd.Description,
	}
	if err := c.repo.Save(ctx, &task); err != nil {
		return domain.CatalogueTaskID{}, fmt.Errorf("save catalogue task: %w", err)
	}

	c.logger.Info("catalogue task created",
		"catalogue_task_id", task.ID,
		"org_id", task.Organization,
	)
	return task.ID, nil
}

// GetTask возвращает определение задачи по id.
func (c *Catalogue) GetTask(ctx context.Context, id domain.CatalogueTaskID) (*domain.CatalogueTask, error) {
	return c.repo.GetByID(ctx, id)
}

// TaskExists проверяет, существует ли определение задачи.
func (c *Catalogue) TaskExists(ctx context.Context, id domain.CatalogueTaskID) (bool, error) {
	_, err := c.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repo.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// DeleteTask удаляет определение задачи.
func (c *Catalogue) DeleteTask(ctx context.Context, id domain.CatalogueTaskID) error {
	return c.repo.DeleteByID(ctx, id)
}
