package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const cloudinaryFolder = "medonrent/uploads"

// CloudinaryStorage uploads files to Cloudinary. The stored path is the
// asset's public ID.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func (s *CloudinaryStorage) Save(ctx context.Context, src io.Reader, originalName string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   cloudinaryFolder,
		PublicID: uuid.NewString() + "-" + originalName,
	})
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("CloudinaryStorage: no public ID returned")
	}
	return result.PublicID, nil
}

func (s *CloudinaryStorage) DownloadURL(ctx context.Context, path string) (string, error) {
	a, err := s.cld.Media(path)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorage: failed to get asset: %w", err)
	}
	url, err := a.String()
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorage: failed to get URL string: %w", err)
	}
	return url, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, path string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: path}); err != nil {
		return fmt.Errorf("CloudinaryStorage: failed to delete file: %w", err)
	}
	return nil
}
