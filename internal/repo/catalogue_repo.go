package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaiso/Delega/internal/domain"
)

// CatalogueRepo — хранилище шаблонов задач. Обычный CRUD без
// event sourcing: шаблон — справочная запись, истории не требует.
type CatalogueRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewCatalogueRepo создаёт CatalogueRepo.
func NewCatalogueRepo(pool *pgxpool.Pool, logger *slog.Logger) *CatalogueRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogueRepo{pool: pool, logger: logger}
}

// Save вставляет или обновляет шаблон задачи.
func (r *CatalogueRepo) Save(ctx context.Context, task *domain.CatalogueTask) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO catalogue_tasks (id, organization, created_by, title, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			title       = EXCLUDED.title,
			description = EXCLUDED.description
	`, task.ID.UUID(), task.Organization.UUID(), task.CreatedBy.UUID(), task.Title, task.Description)
	if err != nil {
		return fmt.Errorf("save catalogue task: %w", err)
	}
	return nil
}

// GetByID возвращает шаблон по идентификатору.
func (r *CatalogueRepo) GetByID(ctx context.Context, id domain.CatalogueTaskID) (*domain.CatalogueTask, error) {
	var (
		task                   domain.CatalogueTask
		taskID, org, createdBy uuid.UUID
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, organization, created_by, title, description
		FROM catalogue_tasks
		WHERE id = $1
	`, id.UUID()).Scan(&taskID, &org, &createdBy, &task.Title, &task.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get catalogue task: %w", err)
	}

	task.ID = domain.CatalogueTaskID(taskID)
	task.Organization = domain.OrganizationID(org)
	task.CreatedBy = domain.AccountID(createdBy)
	return &task, nil
}

// DeleteByID удаляет шаблон. Отсутствие строки — не ошибка.
func (r *CatalogueRepo) DeleteByID(ctx context.Context, id domain.CatalogueTaskID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM catalogue_tasks WHERE id = $1
	`, id.UUID())
	if err != nil {
		return fmt.Errorf("delete catalogue task: %w", err)
	}
	return nil
}
