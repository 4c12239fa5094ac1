package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SparePartUC *usecase.SparePartUseCase
	QuantityUC  *inventory.QuantityUseCase
	HistoryUC   *inventory.HistoryUseCase
	ImportUC    *usecase.ImportUseCase
	ExportUC    *usecase.ExportUseCase
	LabelUC     *usecase.LabelUseCase
	SettingsUC  *usecase.SettingsUseCase
	ImageUC     *usecase.ImageUseCase
}

// Router registra las rutas de la API. Sin autenticación: la API se expone solo a la red interna.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Spare parts. Las rutas fijas van antes de /:id.
	parts := api.Group("/spare-parts")
	partHandler := NewSparePartHandler(deps.SparePartUC, deps.QuantityUC)
	ioHandler := NewImportExportHandler(deps.ImportUC, deps.ExportUC)
	labelHandler := NewLabelHandler(deps.LabelUC)
	parts.Get("/", partHandler.List)
	parts.Post("/", partHandler.Create)
	parts.Post("/import", ioHandler.Import)
	parts.Post("/import/file", ioHandler.ImportFile)
	parts.Get("/export", ioHandler.Export)
	parts.Get("/:id", partHandler.Get)
	parts.Put("/:id", partHandler.UpdateQuantity)
	parts.Delete("/:id", partHandler.Delete)
	parts.Post("/:id/withdraw", partHandler.Withdraw)
	parts.Get("/:id/label", labelHandler.Label)

	api.Post("/labels", labelHandler.Sheet)

	// History
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	api.Get("/part-history/:articleNumber", historyHandler.PartHistory)
	api.Get("/field-history/:articleNumber", historyHandler.FieldHistory)

	// Settings
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/app-settings", settingsHandler.Get)
	api.Post("/app-settings", settingsHandler.Update)

	// Images
	mediaHandler := NewMediaHandler(deps.ImageUC)
	api.Post("/upload-image", mediaHandler.UploadImage)
	api.Post("/delete-image", mediaHandler.DeleteImage)
}
