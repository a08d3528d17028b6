package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"guessdle/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// IconUploader is the slice of the image host the game service depends on.
type IconUploader interface {
	UploadGameIcon(ctx context.Context, file multipart.File, gameID string) (string, error)
}

// CloudinaryService hosts game icon images.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cfg *config.Config) (*CloudinaryService, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryService{cld: cld}, nil
}

// UploadGameIcon uploads a game's icon, replacing any previous one, and
// returns the hosted URL.
func (s *CloudinaryService) UploadGameIcon(ctx context.Context, file multipart.File, gameID string) (string, error) {
	overwrite := true

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       gameID,
		Folder:         "guessdle/icons",
		Overwrite:      &overwrite,
		ResourceType:   "image",
		Transformation: "c_fill,h_256,w_256",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload game icon: %w", err)
	}

	return uploadResult.SecureURL, nil
}

// DeleteGameIcon removes a deleted game's icon from the image host.
func (s *CloudinaryService) DeleteGameIcon(ctx context.Context, gameID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     fmt.Sprintf("guessdle/icons/%s", gameID),
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete game icon: %w", err)
	}
	return nil
}
