package ports

import (
	"context"
	"io"
)

// ImageStore define el puerto de salida para el almacenamiento de imágenes de repuestos.
// Cualquier adaptador (S3, MinIO, LocalStack, mock) debe implementar esta interfaz.
type ImageStore interface {
	// Upload guarda body bajo key y devuelve la URL pública estable que se guarda tal cual en el repuesto.
	Upload(ctx context.Context, key, contentType string, body io.Reader, metadata map[string]string) (string, error)
	// Delete borra el objeto referenciado por una URL devuelta antes por Upload.
	Delete(ctx context.Context, imageURL string) error
}
