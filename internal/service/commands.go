package service

import (
	"time"

	"github.com/shaiso/Delega/internal/domain"
)

// Команды — входной контракт оркестрации для внешнего слоя
// (HTTP API, CLI). Поля уже типизированы доменными идентификаторами;
// парсинг строк — забота транспорта.

// CreateOrgCommand — создание организации.
type CreateOrgCommand struct {
	Name              string
	RequestingAccount domain.AccountID
}

// AccountLinkCommand — привязка аккаунта к организации.
type AccountLinkCommand struct {
	Organization      domain.OrganizationID
	RequestingAccount domain.AccountID
	Account           domain.AccountID
	AccountType       domain.AccountType
}

// AddTagCommand — добавление тега.
type AddTagCommand struct {
	Organization      domain.OrganizationID
	RequestingAccount domain.AccountID
	Name              string
}

// TagMemberCommand — добавление исполнителя или редактора в тег.
type TagMemberCommand struct {
	Organization      domain.OrganizationID
	Tag               domain.TagID
	RequestingAccount domain.AccountID
	Account           domain.AccountID
}

// AssignTaskCommand — назначение каталожных задач по тегам.
type AssignTaskCommand struct {
	Organization      domain.OrganizationID
	Tasks             []domain.CatalogueTaskID
	RequestingAccount domain.AccountID
	AssignmentType    domain.AssignmentType
	Tags              []domain.TagID
}

// DirectAssignCommand — прямое назначение задач аккаунту.
type DirectAssignCommand struct {
	Organization      domain.OrganizationID
	RequestingAccount domain.AccountID
	Worker            domain.AccountID
	Tasks             []domain.CatalogueTaskID
}

// FinishTaskCommand — завершение задачи. Переиспользуется для отклонения.
type FinishTaskCommand struct {
	Task              domain.TaskID
	RequestingAccount domain.AccountID
}

// AddTimeCommand — продление срока задачи.
type AddTimeCommand struct {
	Task              domain.TaskID
	RequestingAccount domain.AccountID
	Duration          time.Duration
}

// CreateCatalogueTaskCommand — создание определения задачи в каталоге.
type CreateCatalogueTaskCommand struct {
	Organization domain.OrganizationID
	CreatedBy    domain.AccountID
	Title        string
	Description  string
}
