package api

import (
	"encoding/json"
	"net/http"

	"github.com/shaiso/Delega/internal/domain"
	"github.com/shaiso/Delega/internal/service"
)

// AssignTasks распределяет каталожные задачи по тегам.
// POST /api/v1/orgs/{id}/assignments
func (h *Handler) AssignTasks(w http.ResponseWriter, r *http.Request) {
	orgID, err := domain.ParseOrganizationID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid organization id")
		return
	}

	var req AssignTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}
	requester, err := domain.ParseAccountID(req.RequestingAccount)
	if err != nil {
		BadRequest(w, "invalid requesting_account")
		return
	}
	if len(req.Tasks) == 0 {
		BadRequest(w, "tasks are required")
		return
	}
	if len(req.Tags) == 0 {
		BadRequest(w, "tags are required")
		return
	}

	tasks := make([]domain.CatalogueTaskID, len(req.Tasks))
	for i, raw := range req.Tasks {
		tasks[i], err = domain.ParseCatalogueTaskID(raw)
		if err != nil {
			BadRequest(w, "invalid task id: "+raw)
			return
		}
	}
	tags := make([]domain.TagID, len(req.Tags))
	for i, raw := range req.Tags {
		tags[i], err = domain.ParseTagID(raw)
		if err != nil {
			BadRequest(w, "invalid tag id: "+raw)
			return
		}
	}

	assignment, err := parseAssignment(req.Assignment)
	if err != nil {
		BadRequest(w, err.Error())
		return
	}

	ids, err := h.management.AssignTasks(r.Context(), service.AssignTaskCommand{
		Organization:      orgID,
		Tasks:             tasks,
		RequestingAccount: requester,
		AssignmentType:    assignment,
		Tags:              tags,
	})
	if HandleDomainError(w, h.logger, err, "organization not found") {
		return
	}

	Created(w, AssignedResponse{TaskIDs: ids})
}

// AssignTasksToAccount назначает задачи напрямую аккаунту.
// POST /api/v1/orgs/{id}/assignments/direct
func (h *Handler) AssignTasksToAccount(w http.ResponseWriter, r *http.Request) {
	orgID, err := domain.ParseOrganizationID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid organization id")
		return
	}

	var req DirectAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}
	requester, err := domain.ParseAccountID(req.RequestingAccount)
	if err != nil {
		BadRequest(w, "invalid requesting_account")
		return
	}
	worker, err := domain.ParseAccountID(req.Worker)
	if err != nil {
		BadRequest(w, "invalid worker")
		return
	}
	if len(req.Tasks) == 0 {
		BadRequest(w, "tasks are required")
		return
	}
	tasks := make([]domain.CatalogueTaskID, len(req.Tasks))
	for i, raw := range req.Tasks {
		tasks[i], err = domain.ParseCatalogueTaskID(raw)
		if err != nil {
			BadRequest(w, "invalid task id: "+raw)
			return
		}
	}

	ids, err := h.management.AssignTasksToAccount(r.Context(), service.DirectAssignCommand{
		Organization:      orgID,
		RequestingAccount: requester,
		Worker:            worker,
		Tasks:             tasks,
	})
	if HandleDomainError(w, h.logger, err, "organization not found") {
		return
	}

	Created(w, AssignedResponse{TaskIDs: ids})
}

// parseAssignment переводит DTO стратегии в доменный тип.
func parseAssignment(req AssignmentRequest) (domain.AssignmentType, error) {
	kind, err := domain.ParseAssignmentKind(req.Kind)
	if err != nil {
		return domain.AssignmentType{}, err
	}

	assignment := domain.AssignmentType{Kind: kind}
	if kind == domain.AssignmentToAccount {
		account, err := domain.ParseAccountID(req.Account)
		if err != nil {
			return domain.AssignmentType{}, err
		}
		assignment.Account = account
	}
	return assignment, nil
}
