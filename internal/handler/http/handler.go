package http

import (
	"github.com/mshakirov/go-journal-keeper/internal/config"
	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
