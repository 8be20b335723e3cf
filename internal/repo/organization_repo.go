package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaiso/Delega/internal/domain"
	"github.com/shaiso/Delega/internal/mq"
)

// OrganizationRepo — event store организаций поверх Postgres.
//
// Таблица organization_events(aggregate_id, seq, kind, payload, recorded_at)
// с PK (aggregate_id, seq): история агрегата — упорядоченный журнал,
// восстановление — свёртка журнала доменной apply-функцией. Уникальность
// seq сериализует конкурентных writer'ов по одному агрегату: проигравший
// получает ErrConcurrentUpdate и может перечитать снимок.
type OrganizationRepo struct {
	pool      *pgxpool.Pool
	publisher *mq.Publisher
	logger    *slog.Logger
}

// NewOrganizationRepo создаёт OrganizationRepo.
// publisher может быть nil — тогда события не публикуются.
func NewOrganizationRepo(pool *pgxpool.Pool, publisher *mq.Publisher, logger *slog.Logger) *OrganizationRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrganizationRepo{pool: pool, publisher: publisher, logger: logger}
}

// FindByID восстанавливает организацию свёрткой её истории событий,
// затем доносит списки задач привязанных аккаунтов из проекции
// task_instances (назначения живут в журнале задач, не организации).
func (r *OrganizationRepo) FindByID(ctx context.Context, id domain.OrganizationID) (domain.Organization, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT kind, payload
		FROM organization_events
		WHERE aggregate_id = $1
		ORDER BY seq ASC
	`, id.UUID())
	if err != nil {
		return domain.Organization{}, fmt.Errorf("query organization events: %w", err)
	}
	defer rows.Close()

	var events []domain.OrganizationEvent
	for rows.Next() {
		var kind string
		var payload []byte
		if err := rows.Scan(&kind, &payload); err != nil {
			return domain.Organization{}, fmt.Errorf("scan organization event: %w", err)
		}
		event, err := decodeOrganizationEvent(kind, payload)
		if err != nil {
			return domain.Organization{}, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return domain.Organization{}, fmt.Errorf("iterate organization events: %w", err)
	}
	if len(events) == 0 {
		return domain.Organization{}, ErrNotFound
	}

	org := domain.ReplayOrganization(events)

	tasks, err := r.tasksByAccount(ctx, id)
	if err != nil {
		return domain.Organization{}, err
	}
	return org.AttachTasks(tasks), nil
}

// tasksByAccount группирует экземпляры задач организации по исполнителям.
func (r *OrganizationRepo) tasksByAccount(ctx context.Context, id domain.OrganizationID) (map[domain.AccountID][]domain.TaskID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, assigned_to
		FROM task_instances
		WHERE organization = $1
		ORDER BY id ASC
	`, id.UUID())
	if err != nil {
		return nil, fmt.Errorf("query organization tasks: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.AccountID][]domain.TaskID)
	for rows.Next() {
		var taskID, account uuid.UUID
		if err := rows.Scan(&taskID, &account); err != nil {
			return nil, fmt.Errorf("scan organization task: %w", err)
		}
		acc := domain.AccountID(account)
		out[acc] = append(out[acc], domain.TaskID(taskID))
	}
	return out, rows.Err()
}

// Handle дописывает одно событие в историю организации.
func (r *OrganizationRepo) Handle(ctx context.Context, id domain.OrganizationID, event domain.OrganizationEvent) error {
	return r.HandleMany(ctx, id, []domain.OrganizationEvent{event})
}

// HandleMany атомарно дописывает список событий: весь список либо ничего.
func (r *OrganizationRepo) HandleMany(ctx context.Context, id domain.OrganizationID, events []domain.OrganizationEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var lastSeq int64
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(seq), 0)
		FROM organization_events
		WHERE aggregate_id = $1
	`, id.UUID()).Scan(&lastSeq)
	if err != nil {
		return fmt.Errorf("query last seq: %w", err)
	}

	now := time.Now()
	for i, event := range events {
		kind, payload, err := encodeOrganizationEvent(event)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO organization_events (aggregate_id, seq, kind, payload, recorded_at)
			VALUES ($1, $2, $3, $4, $5)
		`, id.UUID(), lastSeq+int64(i)+1, kind, payload, now)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrConcurrentUpdate
			}
			return fmt.Errorf("insert organization event: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Publish отправляет событие в RabbitMQ. Fire-and-forget: ошибка
// публикации логируется и не влияет на результат команды.
func (r *OrganizationRepo) Publish(ctx context.Context, id domain.OrganizationID, event domain.OrganizationEvent) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.PublishOrganizationEvent(ctx, id, event); err != nil {
		r.logger.Warn("failed to publish organization event",
			"org_id", id,
			"kind", event.Kind(),
			"error", err,
		)
	}
}

// QueryPendingRepeats возвращает организации с повторяющимися
// назначениями, чей срок подошёл.
func (r *OrganizationRepo) QueryPendingRepeats(ctx context.Context, now time.Time) ([]domain.Organization, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT organization
		FROM repeating_tasks
		WHERE next_due_at <= $1
	`, now)
	if err != nil {
		return nil, fmt.Errorf("query pending repeats: %w", err)
	}
	defer rows.Close()

	var ids []domain.OrganizationID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan pending repeat: %w", err)
		}
		ids = append(ids, domain.OrganizationID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	orgs := make([]domain.Organization, 0, len(ids))
	for _, id := range ids {
		org, err := r.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}

// isUniqueViolation проверяет, что ошибка — нарушение уникальности.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
