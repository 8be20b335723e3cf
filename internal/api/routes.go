package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger),
		Logging(h.logger),
	)

	// Organizations
	mux.Handle("POST /api/v1/orgs", chain(http.HandlerFunc(h.CreateOrg)))
	mux.Handle("GET /api/v1/orgs/{id}", chain(http.HandlerFunc(h.GetOrg)))
	mux.Handle("POST /api/v1/orgs/{id}/tags", chain(http.HandlerFunc(h.AddTag)))
	mux.Handle("POST /api/v1/orgs/{id}/tags/{tagID}/workers", chain(http.HandlerFunc(h.AddWorkerToTag)))
	mux.Handle("POST /api/v1/orgs/{id}/tags/{tagID}/editors", chain(http.HandlerFunc(h.AddEditorToTag)))
	mux.Handle("POST /api/v1/orgs/{id}/accounts", chain(http.HandlerFunc(h.LinkAccount)))
	mux.Handle("POST /api/v1/orgs/{id}/owner", chain(http.HandlerFunc(h.TransferOwnership)))

	// Assignments
	mux.Handle("POST /api/v1/orgs/{id}/assignments", chain(http.HandlerFunc(h.AssignTasks)))
	mux.Handle("POST /api/v1/orgs/{id}/assignments/direct", chain(http.HandlerFunc(h.AssignTasksToAccount)))

	// Task instances
	mux.Handle("GET /api/v1/tasks/{id}", chain(http.HandlerFunc(h.GetTask)))
	mux.Handle("POST /api/v1/tasks/{id}/finish", chain(http.HandlerFunc(h.FinishTask)))
	mux.Handle("POST /api/v1/tasks/{id}/reject", chain(http.HandlerFunc(h.RejectTask)))
	mux.Handle("POST /api/v1/tasks/{id}/time", chain(http.HandlerFunc(h.AddTime)))

	// Catalogue
	mux.Handle("POST /api/v1/orgs/{id}/catalogue", chain(http.HandlerFunc(h.CreateCatalogueTask)))
	mux.Handle("GET /api/v1/catalogue/{id}", chain(http.HandlerFunc(h.GetCatalogueTask)))
	mux.Handle("DELETE /api/v1/catalogue/{id}", chain(http.HandlerFunc(h.DeleteCatalogueTask)))
}
