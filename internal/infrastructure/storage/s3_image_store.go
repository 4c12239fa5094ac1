// Package storage adaptadores de almacenamiento de objetos (imágenes de repuestos).
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/pkg/config"
)

var _ ports.ImageStore = (*S3ImageStore)(nil)

// S3ImageStore guarda imágenes en un bucket S3 (o compatible: MinIO, LocalStack).
type S3ImageStore struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	region   string
	baseURL  string
}

// NewS3ImageStore construye el cliente a partir de la configuración S3.
// Sin credenciales explícitas se usa la cadena por defecto del SDK (env, perfil, rol).
func NewS3ImageStore(ctx context.Context, cfg config.S3Config) (*S3ImageStore, error) {
	opts := []func(*awscfg.LoadOptions) error{awscfg.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" || cfg.SecretKey != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cargar config AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &S3ImageStore{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		baseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload sube el objeto y devuelve su URL pública.
func (s *S3ImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader, metadata map[string]string) (string, error) {
	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		Metadata:    metadata,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s: %w: %w", key, domain.ErrStorageUnavailable, err)
	}
	return PublicURL(s.baseURL, s.bucket, s.region, key, out.Location), nil
}

// Delete borra el objeto referenciado por imageURL. Borrar un objeto inexistente no es error.
func (s *S3ImageStore) Delete(ctx context.Context, imageURL string) error {
	key, err := KeyFromURL(imageURL, s.bucket, s.baseURL)
	if err != nil {
		return err
	}
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("s3 delete %s: %w: %w", key, domain.ErrStorageUnavailable, err)
	}
	return nil
}

// PublicURL prioridad: baseURL configurada, Location devuelta por S3, URL virtual-hosted de AWS.
func PublicURL(baseURL, bucket, region, key, location string) string {
	switch {
	case baseURL != "":
		return strings.TrimRight(baseURL, "/") + "/" + key
	case location != "":
		return location
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
	}
}

// KeyFromURL deriva la clave del objeto desde una URL devuelta por Upload.
// Acepta URLs con baseURL, path-style (/bucket/key) y virtual-hosted (/key).
func KeyFromURL(imageURL, bucket, baseURL string) (string, error) {
	imageURL = strings.TrimSpace(imageURL)
	if baseURL != "" && strings.HasPrefix(imageURL, baseURL+"/") {
		return keyOrInvalid(strings.TrimPrefix(imageURL, baseURL+"/"))
	}
	u, err := url.Parse(imageURL)
	if err != nil || u.Host == "" {
		return "", domain.Invalid("imageUrl", "no es una URL válida")
	}
	p := strings.TrimPrefix(u.Path, "/")
	if !strings.HasPrefix(u.Host, bucket+".") {
		p = strings.TrimPrefix(p, bucket+"/")
	}
	return keyOrInvalid(p)
}

func keyOrInvalid(key string) (string, error) {
	if decoded, err := url.PathUnescape(key); err == nil {
		key = decoded
	}
	if key == "" || !strings.HasPrefix(key, "images/") {
		return "", domain.Invalid("imageUrl", "no pertenece al almacenamiento de imágenes")
	}
	return key, nil
}
