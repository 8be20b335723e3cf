package repo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaiso/Delega/internal/domain"
	"github.com/shaiso/Delega/internal/mq"
)

// TaskRepo — event store экземпляров задач поверх Postgres.
//
// Журнал task_events(aggregate_id, seq, kind, payload, recorded_at)
// устроен как у организаций. Рядом живёт проекция task_instances
// (id, organization, catalogue_id, assigned_to, assigned_by, expires,
// status) — текущее состояние для выборок: просроченные задачи,
// нагрузка исполнителей организации. Проекция обновляется в одной
// транзакции с журналом.
type TaskRepo struct {
	pool      *pgxpool.Pool
	publisher *mq.Publisher
	logger    *slog.Logger
}

// NewTaskRepo создаёт TaskRepo.
// publisher может быть nil — тогда события не публикуются.
func NewTaskRepo(pool *pgxpool.Pool, publisher *mq.Publisher, logger *slog.Logger) *TaskRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskRepo{pool: pool, publisher: publisher, logger: logger}
}

// FindByID восстанавливает экземпляр задачи свёрткой его истории.
func (r *TaskRepo) FindByID(ctx context.Context, id domain.TaskID) (domain.TaskInstance, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT kind, payload
		FROM task_events
		WHERE aggregate_id = $1
		ORDER BY seq ASC
	`, id.UUID())
	if err != nil {
		return domain.TaskInstance{}, fmt.Errorf("query task events: %w", err)
	}
	defer rows.Close()

	var events []domain.TaskEvent
	for rows.Next() {
		var kind string
		var payload []byte
		if err := rows.Scan(&kind, &payload); err != nil {
			return domain.TaskInstance{}, fmt.Errorf("scan task event: %w", err)
		}
		event, err := decodeTaskEvent(kind, payload)
		if err != nil {
			return domain.TaskInstance{}, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return domain.TaskInstance{}, fmt.Errorf("iterate task events: %w", err)
	}
	if len(events) == 0 {
		return domain.TaskInstance{}, ErrNotFound
	}

	return domain.ReplayTask(events), nil
}

// Handle дописывает одно событие в историю задачи.
func (r *TaskRepo) Handle(ctx context.Context, id domain.TaskID, event domain.TaskEvent) error {
	return r.HandleMany(ctx, []domain.TaskEvent{event})
}

// HandleMany атомарно дописывает события, возможно нескольких задач
// (батч назначения): все события либо ничего.
func (r *TaskRepo) HandleMany(ctx context.Context, events []domain.TaskEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	seqs := make(map[domain.TaskID]int64)

	for _, event := range events {
		id := taskEventID(event)
		if id.IsZero() {
			return fmt.Errorf("task event %s without task id", event.Kind())
		}

		seq, ok := seqs[id]
		if !ok {
			err = tx.QueryRow(ctx, `
				SELECT COALESCE(MAX(seq), 0)
				FROM task_events
				WHERE aggregate_id = $1
			`, id.UUID()).Scan(&seq)
			if err != nil {
				return fmt.Errorf("query last seq: %w", err)
			}
		}
		seq++
		seqs[id] = seq

		kind, payload, err := encodeTaskEvent(event)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO task_events (aggregate_id, seq, kind, payload, recorded_at)
			VALUES ($1, $2, $3, $4, $5)
		`, id.UUID(), seq, kind, payload, now)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrConcurrentUpdate
			}
			return fmt.Errorf("insert task event: %w", err)
		}

		if err := applyToProjection(ctx, tx, event); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// applyToProjection обновляет проекцию task_instances под событие.
func applyToProjection(ctx context.Context, tx pgx.Tx, event domain.TaskEvent) error {
	switch e := event.(type) {
	case domain.TaskAssigned:
		_, err := tx.Exec(ctx, `
			INSERT INTO task_instances (id, organization, catalogue_id, assigned_to, assigned_by, expires, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, e.ID.UUID(), e.Organization.UUID(), e.Task.UUID(), e.AssignedTo.UUID(), e.AssignedBy.UUID(), e.Expires, domain.TaskStatusPending)
		if err != nil {
			return fmt.Errorf("project task assigned: %w", err)
		}
	case domain.TaskFinished:
		return projectStatus(ctx, tx, e.TaskID, domain.TaskStatusFinished)
	case domain.TaskRejected:
		return projectStatus(ctx, tx, e.TaskID, domain.TaskStatusRejected)
	case domain.TaskExpired:
		return projectStatus(ctx, tx, e.TaskID, domain.TaskStatusExpired)
	case domain.TaskTimeAdded:
		_, err := tx.Exec(ctx, `
			UPDATE task_instances
			SET expires = expires + make_interval(secs => $2)
			WHERE id = $1 AND expires IS NOT NULL
		`, e.TaskID.UUID(), e.Duration.Seconds())
		if err != nil {
			return fmt.Errorf("project task time added: %w", err)
		}
	}
	return nil
}

func projectStatus(ctx context.Context, tx pgx.Tx, id domain.TaskID, status domain.TaskStatus) error {
	_, err := tx.Exec(ctx, `
		UPDATE task_instances SET status = $2 WHERE id = $1
	`, id.UUID(), status)
	if err != nil {
		return fmt.Errorf("project task status: %w", err)
	}
	return nil
}

// Publish отправляет событие в RabbitMQ. Fire-and-forget.
func (r *TaskRepo) Publish(ctx context.Context, id domain.TaskID, event domain.TaskEvent) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.PublishTaskEvent(ctx, id, event); err != nil {
		r.logger.Warn("failed to publish task event",
			"task_id", id,
			"kind", event.Kind(),
			"error", err,
		)
	}
}

// QueryExpired возвращает PENDING задачи с истёкшим сроком.
func (r *TaskRepo) QueryExpired(ctx context.Context) ([]domain.TaskInstance, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, organization, catalogue_id, assigned_to, assigned_by, expires, status
		FROM task_instances
		WHERE status = 'PENDING' AND expires IS NOT NULL AND expires <= now()
		ORDER BY expires ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query expired tasks: %w", err)
	}
	defer rows.Close()

	var out []domain.TaskInstance
	for rows.Next() {
		task, err := scanTaskInstance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

// scanTaskInstance собирает доменный снимок из строки проекции.
func scanTaskInstance(rows pgx.Rows) (domain.TaskInstance, error) {
	var (
		id, organization, catalogueID, assignedTo, assignedBy uuid.UUID
		expires                                               *time.Time
		status                                                string
	)
	err := rows.Scan(&id, &organization, &catalogueID, &assignedTo, &assignedBy, &expires, &status)
	if err != nil {
		return domain.TaskInstance{}, fmt.Errorf("scan task instance: %w", err)
	}

	return domain.NewTaskInstance(
		domain.TaskID(id),
		domain.OrganizationID(organization),
		domain.AccountID(assignedTo),
		domain.AccountID(assignedBy),
		expires,
		domain.CatalogueTaskID(catalogueID),
		domain.TaskStatus(status),
	), nil
}
