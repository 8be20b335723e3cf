package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shaiso/Delega/internal/domain"
	"github.com/shaiso/Delega/internal/service"
)

// GetTask возвращает текущий снимок экземпляра задачи.
// GET /api/v1/tasks/{id}
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseTaskID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid task id")
		return
	}

	task, err := h.management.GetTask(r.Context(), id)
	if HandleDomainError(w, h.logger, err, "task not found") {
		return
	}

	Success(w, TaskInstanceFromDomain(task))
}

// FinishTask завершает задачу.
// POST /api/v1/tasks/{id}/finish
func (h *Handler) FinishTask(w http.ResponseWriter, r *http.Request) {
	h.taskAction(w, r, h.management.FinishTask)
}

// RejectTask отклоняет задачу.
// POST /api/v1/tasks/{id}/reject
func (h *Handler) RejectTask(w http.ResponseWriter, r *http.Request) {
	h.taskAction(w, r, h.management.RejectTask)
}

// taskAction — общий код finish/reject.
func (h *Handler) taskAction(w http.ResponseWriter, r *http.Request, apply func(context.Context, service.FinishTaskCommand) error) {
	id, err := domain.ParseTaskID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid task id")
		return
	}

	var req TaskActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}
	requester, err := domain.ParseAccountID(req.RequestingAccount)
	if err != nil {
		BadRequest(w, "invalid requesting_account")
		return
	}

	err = apply(r.Context(), service.FinishTaskCommand{
		Task:              id,
		RequestingAccount: requester,
	})
	if HandleDomainError(w, h.logger, err, "task not found") {
		return
	}

	NoContent(w)
}

// AddTime продлевает срок задачи.
// POST /api/v1/tasks/{id}/time
func (h *Handler) AddTime(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseTaskID(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid task id")
		return
	}

	var req AddTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}
	if req.DurationSec <= 0 {
		BadRequest(w, "duration_sec must be positive")
		return
	}
	requester, err := domain.ParseAccountID(req.RequestingAccount)
	if err != nil {
		BadRequest(w, "invalid requesting_account")
		return
	}

	err = h.management.AddTime(r.Context(), service.AddTimeCommand{
		Task:              id,
		RequestingAccount: requester,
		Duration:          time.Duration(req.DurationSec) * time.Second,
	})
	if HandleDomainError(w, h.logger, err, "task not found") {
		return
	}

	NoContent(w)
}
