// Package storage stores uploaded artifacts (consent forms, reports,
// invoices) behind a backend-neutral interface.
package storage

import (
	"context"
	"io"

	"medonrent/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService persists uploaded files and resolves them for download.
// Save returns the stable path recorded on the owning rent session.
type StorageService interface {
	Save(ctx context.Context, src io.Reader, originalName string) (string, error)
	// DownloadURL resolves a stored path to something a client can fetch.
	// For the local backend this is a filesystem path served by the API;
	// for Cloudinary it is the asset's public URL.
	DownloadURL(ctx context.Context, path string) (string, error)
	Delete(ctx context.Context, path string) error
}

// New returns the backend selected by configuration.
func New() (StorageService, error) {
	if config.AppConfig.StorageBackend == "cloudinary" {
		cld, err := cloudinary.NewFromParams(
			config.AppConfig.CloudinaryCloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
		)
		if err != nil {
			return nil, err
		}
		return &CloudinaryStorage{cld: cld}, nil
	}
	return &LocalStorage{Dir: config.AppConfig.UploadDir}, nil
}
