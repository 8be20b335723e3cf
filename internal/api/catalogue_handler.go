package api

import (
	"encoding/json"
	"net/http"

	"github.com/shaiso/Delega/internal/domain"
	"github.com/shaiso/Delega/internal/service"
)

// CreateCatalogueTask создаёт шаблон задачи в каталоге организации.
// POST /api/v1/orgs/{id}/catalogue
func (h *Handler) CreateCatalogueTask(w http.ResponseWriter, r *http.Request) {
	orgID, err := domain.ParseOrganizationID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid organization id")
		return
	}

	var req CreateCatalogueTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}
	if req.Title == "" {
		BadRequest(w, "title is required")
		return
	}
	createdBy, err := domain.ParseAccountID(req.CreatedBy)
	if err != nil {
		BadRequest(w, "invalid created_by")
		return
	}

	id, err := h.catalogue.CreateTask(r.Context(), service.CreateCatalogueTaskCommand{
		Organization: orgID,
		CreatedBy:    createdBy,
		Title:        req.Title,
		Description:  req.Description,
	})
	if HandleDomainError(w, h.logger, err, "") {
		return
	}

	Created(w, map[string]domain.CatalogueTaskID{"id": id})
}

// GetCatalogueTask возвращает шаблон задачи.
// GET /api/v1/catalogue/{id}
func (h *Handler) GetCatalogueTask(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseCatalogueTaskID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid catalogue task id")
		return
	}

	task, err := h.catalogue.GetTask(r.Context(), id)
	if HandleDomainError(w, h.logger, err, "catalogue task not found") {
		return
	}

	Success(w, CatalogueTaskFromDomain(*task))
}

// DeleteCatalogueTask удаляет шаблон задачи.
// DELETE /api/v1/catalogue/{id}
func (h *Handler) DeleteCatalogueTask(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseCatalogueTaskID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid catalogue task id")
		return
	}

	if err := h.catalogue.DeleteTask(r.Context(), id); err != nil {
		HandleDomainError(w, h.logger, err, "catalogue task not found")
		return
	}

	NoContent(w)
}
