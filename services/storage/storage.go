package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService uploads user-submitted images and returns their public URLs.
type StorageService interface {
	UploadImage(ctx context.Context, file multipart.File, folder string) (string, error)
}

type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService wraps a configured Cloudinary client.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &cloudinaryStorage{cld: cld}
}

func (s *cloudinaryStorage) UploadImage(ctx context.Context, file multipart.File, folder string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload returned no URL")
	}
	return resp.SecureURL, nil
}
