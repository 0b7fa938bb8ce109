// Package storage persists employee image attachments. Two backends exist:
// local disk (development default) and S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/karanvir-s/employee-directory-api/internal/config"
	"github.com/karanvir-s/employee-directory-api/internal/domain"
)

// Storage saves an image and returns the reference recorded on the employee
// row: a bare filename for the local backend, an object URL for S3.
type Storage interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// New selects a backend from configuration.
func New(cfg *config.Config) (Storage, error) {
	switch cfg.StorageBackend {
	case "local":
		return NewLocal(cfg.UploadDir)
	case "s3":
		return NewS3(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// SniffImage detects the content type of an uploaded file from its magic
// bytes and rejects anything that is not JPEG or PNG. Client-declared
// Content-Type headers are ignored.
func SniffImage(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	if !mtype.Is("image/jpeg") && !mtype.Is("image/png") {
		return "", domain.ErrUnsupportedImage
	}
	return mtype.String(), nil
}
