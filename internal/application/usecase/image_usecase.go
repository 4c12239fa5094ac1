package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/domain"
)

// MaxImageBytes tamaño máximo de una imagen de repuesto (5 MB).
const MaxImageBytes = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ImageUseCase sube y borra imágenes de repuestos. store nil = almacenamiento no configurado.
type ImageUseCase struct {
	store ports.ImageStore
	now   func() time.Time
}

// NewImageUseCase construye el caso de uso.
func NewImageUseCase(store ports.ImageStore) *ImageUseCase {
	return &ImageUseCase{store: store, now: time.Now}
}

// UploadImageInput archivo recibido por multipart.
type UploadImageInput struct {
	ArticleNumber string
	Filename      string
	ContentType   string
	Size          int64
	Body          io.Reader
}

// Upload valida y sube la imagen; devuelve la URL que la UI guarda en imageUrl.
func (uc *ImageUseCase) Upload(ctx context.Context, in UploadImageInput) (string, error) {
	if uc.store == nil {
		return "", fmt.Errorf("upload image: %w", domain.ErrStorageUnavailable)
	}
	if strings.TrimSpace(in.ArticleNumber) == "" {
		return "", domain.Invalid("articleNumber", "es obligatorio")
	}
	if in.Size <= 0 {
		return "", domain.Invalid("image", "archivo vacío")
	}
	if in.Size > MaxImageBytes {
		return "", domain.Invalid("image", "supera 5 MB")
	}
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(in.ContentType, ";")[0]))
	if !allowedImageTypes[contentType] {
		return "", domain.Invalid("image", "solo se aceptan JPEG, PNG o GIF")
	}

	// Size es lo que declara el cliente; el límite se comprueba sobre lo leído.
	data, err := io.ReadAll(io.LimitReader(in.Body, MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("leer imagen: %w", err)
	}
	if len(data) == 0 {
		return "", domain.Invalid("image", "archivo vacío")
	}
	if len(data) > MaxImageBytes {
		return "", domain.Invalid("image", "supera 5 MB")
	}

	key := ImageKey(in.Filename, uc.now())
	return uc.store.Upload(ctx, key, contentType, bytes.NewReader(data), map[string]string{
		"article-number": strings.TrimSpace(in.ArticleNumber),
	})
}

// Delete borra la imagen referenciada por la URL.
func (uc *ImageUseCase) Delete(ctx context.Context, imageURL string) error {
	if uc.store == nil {
		return fmt.Errorf("delete image: %w", domain.ErrStorageUnavailable)
	}
	if strings.TrimSpace(imageURL) == "" {
		return domain.Invalid("imageUrl", "es obligatorio")
	}
	return uc.store.Delete(ctx, strings.TrimSpace(imageURL))
}

// ImageKey clave del objeto: images/<unixmillis>-<nombre saneado>.
func ImageKey(filename string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Trim(unsafeKeyChars.ReplaceAllString(name, "-"), "-")
	if name == "" || name == "." {
		name = "image"
	}
	return fmt.Sprintf("images/%d-%s", now.UnixMilli(), name)
}
