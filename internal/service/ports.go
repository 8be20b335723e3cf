package service

import (
	"context"
	"time"

	"github.com/shaiso/Delega/internal/domain"
)

// Порты репозиториев, которые потребляет оркестрация.
// Реализации живут в internal/repo; доменное ядро про них не знает.

// OrganizationRepository — хранилище агрегата организации.
//
// Контракт: Handle/HandleMany атомарно дописывают события в историю
// агрегата; конкурентная запись по одному id должна быть
// сериализована реализацией (уникальность номера события).
type OrganizationRepository interface {
	// FindByID восстанавливает организацию из её истории событий.
	FindByID(ctx context.Context, id domain.OrganizationID) (domain.Organization, error)

	// Handle дописывает одно событие в историю.
	Handle(ctx context.Context, id domain.OrganizationID, event domain.OrganizationEvent) error

	// HandleMany атомарно дописывает список событий: весь список
	// либо ничего.
	HandleMany(ctx context.Context, id domain.OrganizationID, events []domain.OrganizationEvent) error

	// Publish уведомляет подписчиков о событии. Fire-and-forget:
	// ошибка публикации не откатывает уже записанные события.
	Publish(ctx context.Context, id domain.OrganizationID, event domain.OrganizationEvent)

	// QueryPendingRepeats возвращает организации, у которых есть
	// повторяющиеся назначения с подошедшим сроком.
	QueryPendingRepeats(ctx context.Context, now time.Time) ([]domain.Organization, error)
}

// TaskRepository — хранилище экземпляров задач.
// Тот же контракт атомарности и сериализации, что у организаций.
type TaskRepository interface {
	// FindByID восстанавливает экземпляр задачи из его истории событий.
	FindByID(ctx context.Context, id domain.TaskID) (domain.TaskInstance, error)

	// Handle дописывает одно событие в историю.
	Handle(ctx context.Context, id domain.TaskID, event domain.TaskEvent) error

	// HandleMany атомарно дописывает события нескольких задач.
	HandleMany(ctx context.Context, events []domain.TaskEvent) error

	// Publish уведомляет подписчиков о событии. Fire-and-forget.
	Publish(ctx context.Context, id domain.TaskID, event domain.TaskEvent)

	// QueryExpired возвращает PENDING задачи с истёкшим сроком.
	QueryExpired(ctx context.Context) ([]domain.TaskInstance, error)
}

// CatalogueRepository — простое CRUD-хранилище определений задач.
type CatalogueRepository interface {
	Save(ctx context.Context, task *domain.CatalogueTask) error
	GetByID(ctx context.Context, id domain.CatalogueTaskID) (*domain.CatalogueTask, error)
	DeleteByID(ctx context.Context, id domain.CatalogueTaskID) error
}
