// Package media uploads onboarding images and documents to Cloudinary
// and returns their delivery URLs for the step payload.
package media

import (
	"context"
	"fmt"

	"tatya/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores local files and returns public URLs.
type Uploader interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
}

// CloudinaryUploader implements Uploader against Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds an uploader from AppConfig credentials.
func NewCloudinaryUploader() (*CloudinaryUploader, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// UploadFile uploads one file into destFolder and returns its secure URL.
func (u *CloudinaryUploader) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file %q: %w", localFilePath, err)
	}
	return result.SecureURL, nil
}
