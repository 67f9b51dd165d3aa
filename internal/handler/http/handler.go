package http

import (
	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/internal/service"
	"github.com/blackroad-os/hub/internal/web"
)

type Handler struct {
	services *service.Services
	renderer *web.Renderer
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		renderer: web.NewRenderer(),
		version:  version,
		logger:   logger,
	}
}
