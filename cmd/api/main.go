package main

import (
	"context"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"convertapi/internal/config"
	"convertapi/internal/convert"
	handlers "convertapi/internal/http/handler"
	"convertapi/internal/http/middleware"
	"convertapi/internal/otel"
	"convertapi/internal/service"
	"convertapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()
	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Ensure the two working directories exist before accepting requests
	store, err := storage.NewLocal(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to initialize temporary storage: %v", err)
	}

	// Rasterization pool: browsers are launched lazily, capped by pool size
	extractor := convert.NewDocxExtractor()
	pool := convert.NewRendererPool(convert.ResolvePoolSize(cfg.Convert.Workers), func() convert.Renderer {
		return convert.NewRodRenderer(cfg.Convert.BrowserBin, cfg.Convert.RenderTimeout)
	})
	defer pool.Close()

	svc := service.NewConvertService(store, extractor, pool, cfg.MaxUploadBytes)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app := fiber.New(fiber.Config{
		// Leave slack over the validated size so the limit check in the
		// service, not the transport, decides the response
		BodyLimit:    int(cfg.MaxUploadBytes) + (10 << 20),
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, svc, store, cfg.Storage.CleanupDelay, promMiddleware)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
