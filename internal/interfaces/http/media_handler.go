package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	"github.com/jhoicas/Repuestos-api/internal/domain"
)

// MediaHandler subida y borrado de imágenes de repuestos.
type MediaHandler struct {
	uc *usecase.ImageUseCase
}

// NewMediaHandler construye el handler.
func NewMediaHandler(uc *usecase.ImageUseCase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// UploadImage godoc
// @Summary      Subir imagen de repuesto
// @Description  JPEG, PNG o GIF de hasta 5 MB. Devuelve la URL que la UI guarda en imageUrl.
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        image          formData  file    true  "Imagen"
// @Param        articleNumber  formData  string  true  "Número de artículo interno"
// @Success      200  {object}  dto.UploadImageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/upload-image [post]
func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return writeError(c, domain.Invalid("image", "es obligatorio"))
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	url, err := h.uc.Upload(c.Context(), usecase.UploadImageInput{
		ArticleNumber: c.FormValue("articleNumber"),
		Filename:      fh.Filename,
		ContentType:   fh.Header.Get(fiber.HeaderContentType),
		Size:          fh.Size,
		Body:          f,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.UploadImageResponse{ImageURL: url})
}

// DeleteImage godoc
// @Summary      Borrar imagen
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteImageRequest  true  "URL de la imagen"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/delete-image [post]
func (h *MediaHandler) DeleteImage(c *fiber.Ctx) error {
	var in dto.DeleteImageRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.Delete(c.Context(), in.ImageURL); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "OK"})
}
