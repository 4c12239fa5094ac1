package http

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	"github.com/jhoicas/Repuestos-api/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportExportHandler importación masiva y exportación a planilla.
type ImportExportHandler struct {
	imports *usecase.ImportUseCase
	export  *usecase.ExportUseCase
}

// NewImportExportHandler construye el handler.
func NewImportExportHandler(imports *usecase.ImportUseCase, export *usecase.ExportUseCase) *ImportExportHandler {
	return &ImportExportHandler{imports: imports, export: export}
}

// Import godoc
// @Summary      Importar repuestos (JSON)
// @Description  Upsert fila a fila SIN transacción global: las filas confirmadas antes de un fallo
// @Description  de almacenamiento quedan guardadas con su historial (ver failedAt). Las filas inválidas
// @Description  se saltan y se informan en rowErrors.
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportPartsRequest  true  "Repuestos"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ImportResultResponse
// @Router       /api/spare-parts/import [post]
func (h *ImportExportHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportPartsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Parts == nil {
		return writeError(c, domain.Invalid("parts", "es obligatorio"))
	}
	res, err := h.imports.ImportParts(c.Context(), in.Parts)
	return importResult(c, res, err)
}

// ImportFile godoc
// @Summary      Importar repuestos desde planilla
// @Description  Acepta .xlsx o .csv con las cabeceras de la exportación. charset (solo CSV): utf-8 o windows-1252; vacío = detectar.
// @Tags         import
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true   "Planilla .xlsx o .csv"
// @Param        charset  formData  string  false  "Codificación del CSV"
// @Success      200      {object}  dto.ImportResultResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ImportResultResponse
// @Router       /api/spare-parts/import/file [post]
func (h *ImportExportHandler) ImportFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, domain.Invalid("file", "es obligatorio"))
	}
	format, err := sheetFormat(fh.Filename)
	if err != nil {
		return writeError(c, err)
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	res, err := h.imports.ImportFile(c.Context(), f, ports.ReadOptions{Format: format, Charset: c.FormValue("charset")})
	return importResult(c, res, err)
}

// importResult con resultado parcial se devuelve el resultado (imported, failedAt) con el estado del error.
func importResult(c *fiber.Ctx, res *dto.ImportResultResponse, err error) error {
	if err == nil {
		return c.JSON(res)
	}
	if res == nil {
		return writeError(c, err)
	}
	status, _ := statusFor(err)
	return c.Status(status).JSON(res)
}

func sheetFormat(filename string) (ports.SheetFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return ports.FormatXLSX, nil
	case ".csv":
		return ports.FormatCSV, nil
	default:
		return "", domain.Invalid("file", "solo se aceptan .xlsx o .csv")
	}
}

// Export godoc
// @Summary      Exportar repuestos a Excel
// @Tags         import
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        ids  query  string  false  "Números de artículo separados por coma (vacío = todos)"
// @Success      200  {file}    binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/spare-parts/export [get]
func (h *ImportExportHandler) Export(c *fiber.Ctx) error {
	ids := splitIDs(c.Query("ids"))
	var buf bytes.Buffer
	if err := h.export.Export(c.Context(), &buf, ids); err != nil {
		return writeError(c, err)
	}
	filename := "reservdelar.xlsx"
	if len(ids) > 0 {
		filename = "valda_reservdelar.xlsx"
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(buf.Bytes())
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
