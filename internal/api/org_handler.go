package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shaiso/Delega/internal/domain"
	"github.com/shaiso/Delega/internal/service"
)

// CreateOrg создаёт новую организацию.
// POST /api/v1/orgs
func (h *Handler) CreateOrg(w http.ResponseWriter, r *http.Request) {
	var req CreateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}
	if req.Name == "" {
		BadRequest(w, "name is required")
		return
	}
	account, err := domain.ParseAccountID(req.RequestingAccount)
	if err != nil {
		BadRequest(w, "invalid requesting_account")
		return
	}

	id, err := h.management.CreateOrg(r.Context(), service.CreateOrgCommand{
		Name:              req.Name,
		RequestingAccount: account,
	})
	if HandleDomainError(w, h.logger, err, "") {
		return
	}

	Created(w, map[string]domain.OrganizationID{"id": id})
}

// GetOrg возвращает текущий снимок организации.
// GET /api/v1/orgs/{id}
func (h *Handler) GetOrg(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseOrganizationID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid organization id")
		return
	}

	org, err := h.management.GetOrg(r.Context(), id)
	if HandleDomainError(w, h.logger, err, "organization not found") {
		return
	}

	Success(w, OrgFromDomain(org))
}

// AddTag добавляет тег в организацию.
// POST /api/v1/orgs/{id}/tags
func (h *Handler) AddTag(w http.ResponseWriter, r *http.Request) {
	orgID, err := domain.ParseOrganizationID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid organization id")
		return
	}

	var req AddTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}
	if req.Name == "" {
		BadRequest(w, "name is required")
		return
	}
	account, err := domain.ParseAccountID(req.RequestingAccount)
	if err != nil {
		BadRequest(w, "invalid requesting_account")
		return
	}

	tagID, err := h.management.AddTag(r.Context(), service.AddTagCommand{
		Organization:      orgID,
		RequestingAccount: account,
		Name:              req.Name,
	})
	if HandleDomainError(w, h.logger, err, "organization not found") {
		return
	}

	Created(w, map[string]domain.TagID{"id": tagID})
}

// AddWorkerToTag добавляет исполнителя в тег.
// POST /api/v1/orgs/{id}/tags/{tagID}/workers
func (h *Handler) AddWorkerToTag(w http.ResponseWriter, r *http.Request) {
	h.addTagMember(w, r, h.management.AddWorkerToTag)
}

// AddEditorToTag добавляет редактора в тег.
// POST /api/v1/orgs/{id}/tags/{tagID}/editors
func (h *Handler) AddEditorToTag(w http.ResponseWriter, r *http.Request) {
	h.addTagMember(w, r, h.management.AddEditorToTag)
}

// addTagMember — общий код обработчиков workers/editors.
func (h *Handler) addTagMember(w http.ResponseWriter, r *http.Request, apply func(context.Context, service.TagMemberCommand) error) {
	orgID, err := domain.ParseOrganizationID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid organization id")
		return
	}
	tagID, err := domain.ParseTagID(r.PathValue("tagID"))
	if err != nil {
		BadRequest(w, "invalid tag id")
		return
	}

	var req TagMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}
	requester, err := domain.ParseAccountID(req.RequestingAccount)
	if err != nil {
		BadRequest(w, "invalid requesting_account")
		return
	}
	account, err := domain.ParseAccountID(req.Account)
	if err != nil {
		BadRequest(w, "invalid account")
		return
	}

	err = apply(r.Context(), service.TagMemberCommand{
		Organization:      orgID,
		Tag:               tagID,
		RequestingAccount: requester,
		Account:           account,
	})
	if HandleDomainError(w, h.logger, err, "organization not found") {
		return
	}

	NoContent(w)
}

// LinkAccount привязывает аккаунт к организации.
// POST /api/v1/orgs/{id}/accounts
func (h *Handler) LinkAccount(w http.ResponseWriter, r *http.Request) {
	orgID, err := domain.ParseOrganizationID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid organization id")
		return
	}

	var req LinkAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}
	requester, err := domain.ParseAccountID(req.RequestingAccount)
	if err != nil {
		BadRequest(w, "invalid requesting_account")
		return
	}
	account, err := domain.ParseAccountID(req.Account)
	if err != nil {
		BadRequest(w, "invalid account")
		return
	}
	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		BadRequest(w, "invalid account_type")
		return
	}

	err = h.management.LinkAccount(r.Context(), service.AccountLinkCommand{
		Organization:      orgID,
		RequestingAccount: requester,
		Account:           account,
		AccountType:       accountType,
	})
	if HandleDomainError(w, h.logger, err, "organization not found") {
		return
	}

	NoContent(w)
}

// TransferOwnership передаёт владение организацией.
// POST /api/v1/orgs/{id}/owner
func (h *Handler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	orgID, err := domain.ParseOrganizationID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid organization id")
		return
	}

	var req TransferOwnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}
	requester, err := domain.ParseAccountID(req.RequestingAccount)
	if err != nil {
		BadRequest(w, "invalid requesting_account")
		return
	}
	newOwner, err := domain.ParseAccountID(req.NewOwner)
	if err != nil {
		BadRequest(w, "invalid new_owner")
		return
	}

	err = h.management.TransferOwnership(r.Context(), orgID, requester, newOwner)
	if HandleDomainError(w, h.logger, err, "organization not found") {
		return
	}

	NoContent(w)
}
