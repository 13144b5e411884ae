package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/drinktrace-web/internal/application/query"
	"github.com/jhoicas/drinktrace-web/internal/application/usecase"
	"github.com/jhoicas/drinktrace-web/internal/infrastructure/drinkapi"
	infrapdf "github.com/jhoicas/drinktrace-web/internal/infrastructure/pdf"
	"github.com/jhoicas/drinktrace-web/internal/interfaces/web"
	"github.com/jhoicas/drinktrace-web/pkg/config"
	"github.com/jhoicas/drinktrace-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	apiClient := drinkapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	cache := query.NewCache(cfg.Cache.Size, cfg.Cache.TTL)
	guard := usecase.NewInflightGuard()

	productUC := usecase.NewProductUseCase(apiClient, cache, guard, log)
	brandUC := usecase.NewBrandUseCase(apiClient, cache, guard, log)
	storeUC := usecase.NewStoreUseCase(apiClient, cache, guard, log)

	engine := html.New("./web/views", ".html")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(web.AccessLog(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	web.Router(app, web.RouterDeps{
		ProductUC:     productUC,
		BrandUC:       brandUC,
		StoreUC:       storeUC,
		Labels:        infrapdf.NewLabelGenerator(),
		PublicBaseURL: cfg.App.PublicBaseURL,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
