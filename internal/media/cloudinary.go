package media

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Service wraps the Cloudinary uploader. Documents store only the returned
// secure URL (plus the public id where later deletion is needed).
type Service struct {
	client *cloudinary.Cloudinary
}

func NewService(cloudName, apiKey, apiSecret string) (*Service, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &Service{client: client}, nil
}

// UploadImage pushes one image to the media host and returns its URL and
// public id.
func (s *Service) UploadImage(ctx context.Context, file io.Reader, folder string) (string, string, error) {
	uploadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := s.client.Upload.Upload(uploadCtx, file, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		log.Println("[MEDIA] [ERROR] upload failed:", err)
		return "", "", err
	}

	return resp.SecureURL, resp.PublicID, nil
}

// DeleteImage removes a previously uploaded asset. A missing asset is not
// an error.
func (s *Service) DeleteImage(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	destroyCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	_, err := s.client.Upload.Destroy(destroyCtx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		log.Println("[MEDIA] [ERROR] destroy failed:", err)
	}
	return err
}
