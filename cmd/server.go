package main

import (
	"mergington-activities/config"
	api "mergington-activities/internal/oapi"
	"mergington-activities/internal/transport/http/middleware"
	"mergington-activities/internal/transport/http/server/handlers-fiber"
	"mergington-activities/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// newServer builds the fiber app with middleware, service routes and the activities API.
func newServer(cfg *config.Config, log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
		ErrorHandler: handlers_fiber.ErrorHandler,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	if cfg.Metrics.Enabled {
		serv.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}
	serv.Static("/static", cfg.Static.Dir)

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlers(serv, h)
	return serv
}
