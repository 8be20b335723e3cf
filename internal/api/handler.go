package api

import (
	"log/slog"

	"github.com/shaiso/Delega/internal/service"
)

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	management *service.Management
	catalogue  *service.Catalogue
	logger     *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	Management *service.Management
	Catalogue  *service.Catalogue
	Logger     *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		management: cfg.Management,
		catalogue:  cfg.Catalogue,
		logger:     cfg.Logger,
	}
}
