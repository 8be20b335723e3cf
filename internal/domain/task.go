package domain

import "time"

// TaskStatus — статус экземпляра задачи.
//
// Жизненный цикл:
//
//	PENDING → FINISHED
//	        ↘ REJECTED
//	        ↘ EXPIRED
//
// PENDING — единственный нетерминальный статус.
type TaskStatus string

const (
	// TaskStatusPending — задача назначена и ожидает выполнения.
	TaskStatusPending TaskStatus = "PENDING"

	// TaskStatusFinished — исполнитель завершил задачу.
	TaskStatusFinished TaskStatus = "FINISHED"

	// TaskStatusRejected — исполнитель отклонил задачу.
	TaskStatusRejected TaskStatus = "REJECTED"

	// TaskStatusExpired — срок задачи вышел.
	TaskStatusExpired TaskStatus = "EXPIRED"
)

// IsTerminal возвращает true, если статус финальный.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusFinished, TaskStatusRejected, TaskStatusExpired:
		return true
	default:
		return false
	}
}

// TaskInstance — одно конкретное назначение каталожной задачи аккаунту.
//
// Агрегат-снимок: команды не мутируют состояние, они проверяют
// инварианты и возвращают событие. Apply сворачивает событие в новый
// снимок — и при онлайн-применении, и при восстановлении из истории.
type TaskInstance struct {
	id           TaskID
	catalogueID  CatalogueTaskID
	organization OrganizationID
	assignedTo   AccountID
	assignedBy   AccountID
	expires      *time.Time
	status       TaskStatus
}

// NewTaskInstance собирает экземпляр задачи из готовых полей.
// Используется командами назначения и репозиториями.
func NewTaskInstance(
	id TaskID,
	organization OrganizationID,
	assignedTo AccountID,
	assignedBy AccountID,
	expires *time.Time,
	catalogueID CatalogueTaskID,
	status TaskStatus,
) TaskInstance {
	return TaskInstance{
		id:           id,
		catalogueID:  catalogueID,
		organization: organization,
		assignedTo:   assignedTo,
		assignedBy:   assignedBy,
		expires:      expires,
		status:       status,
	}
}

// ID возвращает идентификатор экземпляра.
func (t TaskInstance) ID() TaskID { return t.id }

// CatalogueID возвращает ссылку на определение задачи в каталоге.
func (t TaskInstance) CatalogueID() CatalogueTaskID { return t.catalogueID }

// Organization возвращает организацию, в рамках которой сделано назначение.
func (t TaskInstance) Organization() OrganizationID { return t.organization }

// AssignedTo возвращает исполнителя.
func (t TaskInstance) AssignedTo() AccountID { return t.assignedTo }

// AssignedBy возвращает назначившего.
func (t TaskInstance) AssignedBy() AccountID { return t.assignedBy }

// Expires возвращает срок задачи (nil — задача бессрочная).
func (t TaskInstance) Expires() *time.Time { return t.expires }

// Status возвращает текущий статус.
func (t TaskInstance) Status() TaskStatus { return t.status }

// CreateEvent возвращает событие создания экземпляра.
// Вызывается оркестрацией для персистентности свежих назначений.
func (t TaskInstance) CreateEvent() TaskEvent {
	return TaskAssigned{
		ID:           t.id,
		Organization: t.organization,
		AssignedTo:   t.assignedTo,
		AssignedBy:   t.assignedBy,
		Task:         t.catalogueID,
		Expires:      t.expires,
	}
}

// Finish завершает задачу. Разрешено только исполнителю и только
// из статуса PENDING.
func (t TaskInstance) Finish(requestingAccount AccountID) (TaskEvent, error) {
	if requestingAccount != t.assignedTo {
		return nil, ErrNotAuthorized
	}
	if t.status != TaskStatusPending {
		return nil, ErrStatusNotApplicable
	}
	return TaskFinished{TaskID: t.id}, nil
}

// Reject отклоняет задачу. Правила те же, что у Finish.
func (t TaskInstance) Reject(requestingAccount AccountID) (TaskEvent, error) {
	if requestingAccount != t.assignedTo {
		return nil, ErrNotAuthorized
	}
	if t.status != TaskStatusPending {
		return nil, ErrStatusNotApplicable
	}
	return TaskRejected{TaskID: t.id, AssignedBy: t.assignedBy}, nil
}

// Expire помечает задачу просроченной. Системная операция, актор
// не проверяется.
func (t TaskInstance) Expire() (TaskEvent, error) {
	if t.status != TaskStatusPending {
		return nil, ErrStatusNotApplicable
	}
	return TaskExpired{TaskID: t.id, AssignedBy: t.assignedBy}, nil
}

// AddTime продлевает срок задачи. Разрешено только назначившему;
// просроченную задачу продлить нельзя, бессрочную — не из чего.
func (t TaskInstance) AddTime(requestingAccount AccountID, d time.Duration) (TaskEvent, error) {
	if requestingAccount != t.assignedBy {
		return nil, ErrNotAuthorized
	}
	if t.status == TaskStatusExpired {
		return nil, ErrStatusNotApplicable
	}
	if t.expires == nil {
		return nil, ErrTaskDoesNotExpire
	}
	return TaskTimeAdded{TaskID: t.id, Duration: d}, nil
}

// Apply сворачивает событие в новый снимок. Единственный мутатор:
// и свежие события, и восстановление из истории идут через него.
func (t TaskInstance) Apply(event TaskEvent) TaskInstance {
	switch e := event.(type) {
	case TaskAssigned:
		t.id = e.ID
		t.organization = e.Organization
		t.assignedTo = e.AssignedTo
		t.assignedBy = e.AssignedBy
		t.catalogueID = e.Task
		t.expires = e.Expires
		t.status = TaskStatusPending
	case TaskFinished:
		t.status = TaskStatusFinished
	case TaskRejected:
		t.status = TaskStatusRejected
	case TaskExpired:
		t.status = TaskStatusExpired
	case TaskTimeAdded:
		// Продление обязано попадать обратно в снимок, иначе
		// replay истории теряет сдвиг срока.
		if t.expires != nil {
			extended := t.expires.Add(e.Duration)
			t.expires = &extended
		}
	}
	return t
}

// ReplayTask восстанавливает экземпляр, сворачивая историю событий
// от старейшего к новейшему поверх пустого снимка.
func ReplayTask(events []TaskEvent) TaskInstance {
	var t TaskInstance
	for _, e := range events {
		t = t.Apply(e)
	}
	return t
}
