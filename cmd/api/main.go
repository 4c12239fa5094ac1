package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	domaininv "github.com/jhoicas/Repuestos-api/internal/domain/inventory"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Repuestos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Repuestos-api/internal/interfaces/http"
	"github.com/jhoicas/Repuestos-api/pkg/config"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

func main() {
	os.Exit(run())
}

// run arranca la API y devuelve el código de salida; los defer (pool, timeouts) se ejecutan siempre.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		return 1
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Precio, peso y medidas salen como números JSON, igual que los envía la UI.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		return 1
	}
	defer pool.Close()

	if cfg.DB.RunMigrations {
		if err := postgres.RunMigrations(pool); err != nil {
			log.Error().Err(err).Msg("migraciones")
			return 1
		}
		log.Info().Msg("migraciones aplicadas")
	}

	appMetrics, err := metrics.New(prometheus.DefaultRegisterer, metrics.Config{
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Env,
	})
	if err != nil {
		log.Error().Err(err).Msg("registrar métricas")
		return 1
	}

	partRepo := postgres.NewSparePartRepository(pool)
	historyRepo := postgres.NewPartHistoryRepository(pool)
	fieldRepo := postgres.NewFieldHistoryRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	quantityUC := inventory.NewQuantityUseCase(txRunner, domaininv.LedgerDefaults{
		Actor:         cfg.Ledger.DefaultActor,
		Comment:       cfg.Ledger.DefaultComment,
		CreatorPrefix: cfg.Ledger.CreatorPrefix,
	}, appMetrics, log)
	historyUC := inventory.NewHistoryUseCase(historyRepo, fieldRepo)

	// Imágenes: sin S3_BUCKET_NAME los endpoints de imagen responden 503.
	var imageStore ports.ImageStore
	if cfg.S3.Enabled() {
		s3Store, err := storage.NewS3ImageStore(ctx, cfg.S3)
		if err != nil {
			log.Error().Err(err).Msg("cliente S3")
			return 1
		}
		imageStore = s3Store
	} else {
		log.Warn().Msg("S3_BUCKET_NAME vacío: subida de imágenes deshabilitada")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimitMB << 20,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.Metrics(appMetrics))

	// Swagger UI en http://localhost:<port>/docs (solo si existe el archivo)
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "Repuestos API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SparePartUC: usecase.NewSparePartUseCase(partRepo),
		QuantityUC:  quantityUC,
		HistoryUC:   historyUC,
		ImportUC:    usecase.NewImportUseCase(quantityUC, spreadsheet.NewReader(), log),
		ExportUC:    usecase.NewExportUseCase(partRepo, spreadsheet.NewWriter()),
		LabelUC:     usecase.NewLabelUseCase(partRepo, infrapdf.NewLabelGenerator("Reservdelar")),
		SettingsUC:  usecase.NewSettingsUseCase(settingsRepo),
		ImageUC:     usecase.NewImageUseCase(imageStore),
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		log.Error().Err(err).Msg("servidor HTTP finalizado")
		return 1
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
		return 1
	}

	log.Info().Msg("aplicación detenida")
	return 0
}
