package domain

import "time"

// События — единственный легитимный канал мутации агрегатов.
// Команды валидируют и возвращают события, apply-функции сворачивают
// их в состояние. Один и тот же код применяет свежие события и
// восстанавливает агрегат из истории.

// OrganizationEvent — факт изменения организации.
type OrganizationEvent interface {
	// Kind возвращает стабильное имя события для event store и MQ.
	Kind() string

	isOrganizationEvent()
}

// TaskEvent — факт изменения экземпляра задачи.
type TaskEvent interface {
	Kind() string

	isTaskEvent()
}

// Имена событий организации.
const (
	KindOrganizationCreated = "organization.created"
	KindTagAdded            = "organization.tag_added"
	KindTagRemoved          = "organization.tag_removed"
	KindEditorAddedToTag    = "organization.editor_added_to_tag"
	KindWorkerAddedToTag    = "organization.worker_added_to_tag"
	KindAccountLinked       = "organization.account_linked"
)

// Имена событий задач.
const (
	KindTaskAssigned  = "task.assigned"
	KindTaskFinished  = "task.finished"
	KindTaskRejected  = "task.rejected"
	KindTaskExpired   = "task.expired"
	KindTaskTimeAdded = "task.time_added"
)

// OrganizationCreated — организация создана.
type OrganizationCreated struct {
	ID   OrganizationID `json:"id"`
	Name string         `json:"name"`
}

func (OrganizationCreated) Kind() string { return KindOrganizationCreated }

func (OrganizationCreated) isOrganizationEvent() {}

// TagAdded — в организации появился новый тег.
type TagAdded struct {
	OrganizationID OrganizationID `json:"organization_id"`
	TagID          TagID          `json:"tag_id"`
	Name           string         `json:"name"`
}

func (TagAdded) Kind() string { return KindTagAdded }

func (TagAdded) isOrganizationEvent() {}

// TagRemoved — тег удалён из организации.
type TagRemoved struct {
	TagID TagID `json:"tag_id"`
}

func (TagRemoved) Kind() string { return KindTagRemoved }

func (TagRemoved) isOrganizationEvent() {}

// EditorAddedToTag — аккаунт стал редактором тега.
type EditorAddedToTag struct {
	TagID   TagID     `json:"tag_id"`
	Account AccountID `json:"account"`
}

func (EditorAddedToTag) Kind() string { return KindEditorAddedToTag }

func (EditorAddedToTag) isOrganizationEvent() {}

// WorkerAddedToTag — аккаунт стал исполнителем тега.
type WorkerAddedToTag struct {
	TagID   TagID     `json:"tag_id"`
	Account AccountID `json:"account"`
}

func (WorkerAddedToTag) Kind() string { return KindWorkerAddedToTag }

func (WorkerAddedToTag) isOrganizationEvent() {}

// AccountLinked — аккаунт привязан к организации.
type AccountLinked struct {
	Account     AccountID   `json:"account"`
	AccountType AccountType `json:"account_type"`
}

func (AccountLinked) Kind() string { return KindAccountLinked }

func (AccountLinked) isOrganizationEvent() {}

// TaskAssigned — каталожная задача назначена аккаунту.
//
// Несёт полный снимок нового экземпляра: применение события к пустому
// TaskInstance восстанавливает его целиком.
type TaskAssigned struct {
	ID           TaskID          `json:"id"`
	Organization OrganizationID  `json:"organization"`
	AssignedTo   AccountID       `json:"assigned_to"`
	AssignedBy   AccountID       `json:"assigned_by"`
	Task         CatalogueTaskID `json:"task"`
	Expires      *time.Time      `json:"expires,omitempty"`
}

func (TaskAssigned) Kind() string { return KindTaskAssigned }

func (TaskAssigned) isTaskEvent() {}

// TaskFinished — исполнитель завершил задачу.
type TaskFinished struct {
	TaskID TaskID `json:"task_id"`
}

func (TaskFinished) Kind() string { return KindTaskFinished }

func (TaskFinished) isTaskEvent() {}

// TaskRejected — исполнитель отклонил задачу.
type TaskRejected struct {
	TaskID     TaskID    `json:"task_id"`
	AssignedBy AccountID `json:"assigned_by"`
}

func (TaskRejected) Kind() string { return KindTaskRejected }

func (TaskRejected) isTaskEvent() {}

// TaskExpired — срок задачи вышел (системное событие, без актора).
type TaskExpired struct {
	TaskID     TaskID    `json:"task_id"`
	AssignedBy AccountID `json:"assigned_by"`
}

func (TaskExpired) Kind() string { return KindTaskExpired }

func (TaskExpired) isTaskEvent() {}

// TaskTimeAdded — срок задачи продлён на Duration.
type TaskTimeAdded struct {
	TaskID   TaskID        `json:"task_id"`
	Duration time.Duration `json:"duration"`
}

func (TaskTimeAdded) Kind() string { return KindTaskTimeAdded }

func (TaskTimeAdded) isTaskEvent() {}
