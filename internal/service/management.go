package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shaiso/Delega/internal/domain"
)

// Management — оркестрация команд организаций и задач.
//
// Сервис без состояния: снимок агрегата живёт внутри одного вызова.
type Management struct {
	orgRepo  OrganizationRepository
	taskRepo TaskRepository
	logger   *slog.Logger
}

// NewManagement создаёт Management.
func NewManagement(orgRepo OrganizationRepository, taskRepo TaskRepository, logger *slog.Logger) *Management {
	if logger == nil {
		logger = slog.Default()
	}
	return &Management{orgRepo: orgRepo, taskRepo: taskRepo, logger: logger}
}

// CreateOrg создаёт организацию и возвращает её id.
func (m *Management) CreateOrg(ctx context.Context, cmd CreateOrgCommand) (domain.OrganizationID, error) {
	org := domain.CreateOrganization(cmd.Name, cmd.RequestingAccount)
	events, err := org.IntoCreateEvents()
	if err != nil {
		return domain.OrganizationID{}, err
	}
	if err := m.orgRepo.HandleMany(ctx, org.ID(), events); err != nil {
		return domain.OrganizationID{}, fmt.Errorf("persist organization events: %w", err)
	}
	m.publishOrgEvents(ctx, org.ID(), events)

	m.logger.Info("organization created",
		"org_id", org.ID(),
		"name", org.Name(),
		"owner", cmd.RequestingAccount,
	)
	return org.ID(), nil
}

// AddTag добавляет тег в организацию и возвращает id нового тега.
func (m *Management) AddTag(ctx context.Context, cmd AddTagCommand) (domain.TagID, error) {
	org, err := m.orgRepo.FindByID(ctx, cmd.Organization)
	if err != nil {
		return domain.TagID{}, err
	}
	events, err := org.AddTag(cmd.Name, cmd.RequestingAccount)
	if err != nil {
		return domain.TagID{}, err
	}
	if err := m.orgRepo.HandleMany(ctx, org.ID(), events); err != nil {
		return domain.TagID{}, fmt.Errorf("persist organization events: %w", err)
	}
	m.publishOrgEvents(ctx, org.ID(), events)

	// Первое событие всегда TagAdded с id нового тега.
	added := events[0].(domain.TagAdded)
	return added.TagID, nil
}

// AddWorkerToTag добавляет исполнителя в тег.
func (m *Management) AddWorkerToTag(ctx context.Context, cmd TagMemberCommand) error {
	org, err := m.orgRepo.FindByID(ctx, cmd.Organization)
	if err != nil {
		return err
	}
	event, err := org.AddWorkerToTag(cmd.Tag, cmd.RequestingAccount, cmd.Account)
	if err != nil {
		return err
	}
	return m.handleOrgEvent(ctx, org.ID(), event)
}

// AddEditorToTag добавляет редактора в тег.
func (m *Management) AddEditorToTag(ctx context.Context, cmd TagMemberCommand) error {
	org, err := m.orgRepo.FindByID(ctx, cmd.Organization)
	if err != nil {
		return err
	}
	event, err := org.AddEditorToTag(cmd.Tag, cmd.RequestingAccount, cmd.Account)
	if err != nil {
		return err
	}
	return m.handleOrgEvent(ctx, org.ID(), event)
}

// LinkAccount привязывает аккаунт к организации.
func (m *Management) LinkAccount(ctx context.Context, cmd AccountLinkCommand) error {
	org, err := m.orgRepo.FindByID(ctx, cmd.Organization)
	if err != nil {
		return err
	}
	event, err := org.LinkAccount(cmd.RequestingAccount, cmd.Account, cmd.AccountType)
	if err != nil {
		return err
	}
	return m.handleOrgEvent(ctx, org.ID(), event)
}

// TransferOwnership передаёт владение организацией.
// Операция объявлена, но не поддерживается.
func (m *Management) TransferOwnership(ctx context.Context, organization domain.OrganizationID, requestingAccount, newOwner domain.AccountID) error {
	org, err := m.orgRepo.FindByID(ctx, organization)
	if err != nil {
		return err
	}
	_, err = org.TransferOwnership(requestingAccount, newOwner)
	return err
}

// AssignTasks распределяет каталожные задачи по тегам и возвращает
// id созданных экземпляров.
func (m *Management) AssignTasks(ctx context.Context, cmd AssignTaskCommand) ([]domain.TaskID, error) {
	org, err := m.orgRepo.FindByID(ctx, cmd.Organization)
	if err != nil {
		return nil, err
	}

	tagSet := make(map[domain.TagID]struct{}, len(cmd.Tags))
	for _, tag := range cmd.Tags {
		tagSet[tag] = struct{}{}
	}

	instances, err := org.AssignTasksToTags(cmd.RequestingAccount, tagSet, cmd.Tasks, cmd.AssignmentType)
	if err != nil {
		return nil, err
	}
	return m.persistAssignments(ctx, instances)
}

// AssignTasksToAccount назначает задачи напрямую аккаунту.
func (m *Management) AssignTasksToAccount(ctx context.Context, cmd DirectAssignCommand) ([]domain.TaskID, error) {
	org, err := m.orgRepo.FindByID(ctx, cmd.Organization)
	if err != nil {
		return nil, err
	}
	instances, err := org.AssignTasksToAccount(cmd.RequestingAccount, cmd.Worker, cmd.Tasks)
	if err != nil {
		return nil, err
	}
	return m.persistAssignments(ctx, instances)
}

// FinishTask завершает задачу.
func (m *Management) FinishTask(ctx context.Context, cmd FinishTaskCommand) error {
	task, err := m.taskRepo.FindByID(ctx, cmd.Task)
	if err != nil {
		return err
	}
	event, err := task.Finish(cmd.RequestingAccount)
	if err != nil {
		return err
	}
	return m.handleTaskEvent(ctx, task.ID(), event)
}

// RejectTask отклоняет задачу.
func (m *Management) RejectTask(ctx context.Context, cmd FinishTaskCommand) error {
	task, err := m.taskRepo.FindByID(ctx, cmd.Task)
	if err != nil {
		return err
	}
	event, err := task.Reject(cmd.RequestingAccount)
	if err != nil {
		return err
	}
	return m.handleTaskEvent(ctx, task.ID(), event)
}

// ExpireTask помечает задачу просроченной. Системная операция,
// вызывается expirer-сервисом.
func (m *Management) ExpireTask(ctx context.Context, id domain.TaskID) error {
	task, err := m.taskRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	event, err := task.Expire()
	if err != nil {
		return err
	}
	return m.handleTaskEvent(ctx, task.ID(), event)
}

// AddTime продлевает срок задачи.
func (m *Management) AddTime(ctx context.Context, cmd AddTimeCommand) error {
	task, err := m.taskRepo.FindByID(ctx, cmd.Task)
	if err != nil {
		return err
	}
	event, err := task.AddTime(cmd.RequestingAccount, cmd.Duration)
	if err != nil {
		return err
	}
	return m.handleTaskEvent(ctx, task.ID(), event)
}

// GetTask возвращает текущий снимок экземпляра задачи.
func (m *Management) GetTask(ctx context.Context, id domain.TaskID) (domain.TaskInstance, error) {
	return m.taskRepo.FindByID(ctx, id)
}

// GetOrg возвращает текущий снимок организации.
func (m *Management) GetOrg(ctx context.Context, id domain.OrganizationID) (domain.Organization, error) {
	return m.orgRepo.FindByID(ctx, id)
}

// persistAssignments превращает свежие экземпляры в события Assigned,
// персистирует их одним батчем и публикует.
func (m *Management) persistAssignments(ctx context.Context, instances []domain.TaskInstance) ([]domain.TaskID, error) {
	events := make([]domain.TaskEvent, len(instances))
	ids := make([]domain.TaskID, len(instances))
	for i, inst := range instances {
		events[i] = inst.CreateEvent()
		ids[i] = inst.ID()
	}
	if err := m.taskRepo.HandleMany(ctx, events); err != nil {
		return nil, fmt.Errorf("persist task events: %w", err)
	}
	for i, event := range events {
		m.taskRepo.Publish(ctx, ids[i], event)
	}

	m.logger.Info("tasks assigned", "count", len(ids))
	return ids, nil
}

// handleOrgEvent персистирует и публикует одно событие организации.
func (m *Management) handleOrgEvent(ctx context.Context, id domain.OrganizationID, event domain.OrganizationEvent) error {
	if err := m.orgRepo.Handle(ctx, id, event); err != nil {
		return fmt.Errorf("persist organization event: %w", err)
	}
	m.orgRepo.Publish(ctx, id, event)
	return nil
}

// handleTaskEvent персистирует и публикует одно событие задачи.
func (m *Management) handleTaskEvent(ctx context.Context, id domain.TaskID, event domain.TaskEvent) error {
	if err := m.taskRepo.Handle(ctx, id, event); err != nil {
		return fmt.Errorf("persist task event: %w", err)
	}
	m.taskRepo.Publish(ctx, id, event)
	return nil
}

func (m *Management) publishOrgEvents(ctx context.Context, id domain.OrganizationID, events []domain.OrganizationEvent) {
	for _, event := range events {
		m.orgRepo.Publish(ctx, id, event)
	}
}
