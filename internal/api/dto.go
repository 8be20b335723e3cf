package api

import (
	"time"

	"github.com/shaiso/Delega/internal/domain"
)

// Organization DTOs

// CreateOrgRequest — запрос на создание организации.
type CreateOrgRequest struct {
	Name              string `json:"name"`
	RequestingAccount string `json:"requesting_account"`
}

// AddTagRequest — запрос на добавление тега.
type AddTagRequest struct {
	Name              string `json:"name"`
	RequestingAccount string `json:"requesting_account"`
}

// TagMemberRequest — запрос на добавление исполнителя или редактора в тег.
type TagMemberRequest struct {
	RequestingAccount string `json:"requesting_account"`
	Account           string `json:"account"`
}

// LinkAccountRequest — запрос на привязку аккаунта к организации.
type LinkAccountRequest struct {
	RequestingAccount string `json:"requesting_account"`
	Account           string `json:"account"`
	AccountType       string `json:"account_type"`
}

// TransferOwnershipRequest — запрос на передачу владения.
type TransferOwnershipRequest struct {
	RequestingAccount string `json:"requesting_account"`
	NewOwner          string `json:"new_owner"`
}

// TagResponse — тег организации.
type TagResponse struct {
	ID      domain.TagID       `json:"id"`
	Name    string             `json:"name"`
	Editors []domain.AccountID `json:"editors"`
	Workers []domain.AccountID `json:"workers"`
}

// AccountLinkResponse — привязка аккаунта.
type AccountLinkResponse struct {
	Account domain.AccountID `json:"account"`
	Type    string           `json:"type"`
	Tasks   []domain.TaskID  `json:"tasks,omitempty"`
}

// OrgResponse — ответ с организацией.
type OrgResponse struct {
	ID       domain.OrganizationID `json:"id"`
	Name     string                `json:"name"`
	Tags     []TagResponse         `json:"tags"`
	Accounts []AccountLinkResponse `json:"accounts"`
}

// OrgFromDomain конвертирует domain.Organization в OrgResponse.
func OrgFromDomain(org domain.Organization) OrgResponse {
	tags := org.Tags()
	links := org.LinkedAccounts()

	resp := OrgResponse{
		ID:       org.ID(),
		Name:     org.Name(),
		Tags:     make([]TagResponse, len(tags)),
		Accounts: make([]AccountLinkResponse, len(links)),
	}
	for i, tag := range tags {
		resp.Tags[i] = TagResponse{
			ID:      tag.ID(),
			Name:    tag.Name(),
			Editors: tag.Editors(),
			Workers: tag.Workers(),
		}
	}
	for i, link := range links {
		resp.Accounts[i] = AccountLinkResponse{
			Account: link.Account(),
			Type:    string(link.AccountType()),
			Tasks:   link.Tasks(),
		}
	}
	return resp
}

// Assignment DTOs

// AssignmentRequest — стратегия распределения.
type AssignmentRequest struct {
	Kind    string `json:"kind"`
	Account string `json:"account,omitempty"`
}

// AssignTasksRequest — запрос на распределение задач по тегам.
type AssignTasksRequest struct {
	RequestingAccount string            `json:"requesting_account"`
	Tasks             []string          `json:"tasks"`
	Tags              []string          `json:"tags"`
	Assignment        AssignmentRequest `json:"assignment"`
}

// DirectAssignRequest — запрос на прямое назначение задач аккаунту.
type DirectAssignRequest struct {
	RequestingAccount string   `json:"requesting_account"`
	Worker            string   `json:"worker"`
	Tasks             []string `json:"tasks"`
}

// AssignedResponse — ответ со списком созданных экземпляров.
type AssignedResponse struct {
	TaskIDs []domain.TaskID `json:"task_ids"`
}

// Task instance DTOs

// TaskActionRequest — запрос на завершение или отклонение задачи.
type TaskActionRequest struct {
	RequestingAccount string `json:"requesting_account"`
}

// AddTimeRequest — запрос на продление срока задачи.
type AddTimeRequest struct {
	RequestingAccount string `json:"requesting_account"`
	DurationSec       int64  `json:"duration_sec"`
}

// TaskInstanceResponse — ответ с экземпляром задачи.
type TaskInstanceResponse struct {
	ID           domain.TaskID          `json:"id"`
	Organization domain.OrganizationID  `json:"organization"`
	CatalogueID  domain.CatalogueTaskID `json:"catalogue_id"`
	AssignedTo   domain.AccountID       `json:"assigned_to"`
	AssignedBy   domain.AccountID       `json:"assigned_by"`
	Expires      *time.Time             `json:"expires,omitempty"`
	Status       string                 `json:"status"`
}

// TaskInstanceFromDomain конвертирует domain.TaskInstance в TaskInstanceResponse.
func TaskInstanceFromDomain(t domain.TaskInstance) TaskInstanceResponse {
	return TaskInstanceResponse{
		ID:           t.ID(),
		Organization: t.Organization(),
		CatalogueID:  t.CatalogueID(),
		AssignedTo:   t.AssignedTo(),
		AssignedBy:   t.AssignedBy(),
		Expires:      t.Expires(),
		Status:       string(t.Status()),
	}
}

// Catalogue DTOs

// CreateCatalogueTaskRequest — запрос на создание шаблона задачи.
type CreateCatalogueTaskRequest struct {
	CreatedBy   string `json:"created_by"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CatalogueTaskResponse — ответ с шаблоном задачи.
type CatalogueTaskResponse struct {
	ID           domain.CatalogueTaskID `json:"id"`
	Organization domain.OrganizationID  `json:"organization"`
	CreatedBy    domain.AccountID       `json:"created_by"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description,omitempty"`
}

// CatalogueTaskFromDomain конвертирует domain.CatalogueTask в CatalogueTaskResponse.
func CatalogueTaskFromDomain(t domain.CatalogueTask) CatalogueTaskResponse {
	return CatalogueTaskResponse{
		ID:           t.ID,
		Organization: t.Organization,
		CreatedBy:    t.CreatedBy,
		Title:        t.Title,
		Description:  t.Description,
	}
}
