package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/colocapp/coloc-api/internal/apperr"
	"github.com/colocapp/coloc-api/internal/helpers"
)

// PhotoStorage stores one uploaded profile photo and returns its URL.
type PhotoStorage interface {
	SaveProfilePhoto(ctx context.Context, filename string, src io.Reader) (string, error)
}

type UploadService struct {
	storage PhotoStorage
}

func NewUploadService(storage PhotoStorage) *UploadService {
	return &UploadService{storage: storage}
}

func (us *UploadService) SaveProfilePhoto(ctx context.Context, filename string, src io.Reader) (string, error) {
	if filename == "" {
		return "", apperr.New(apperr.InvalidRequest, "No file uploaded")
	}
	return us.storage.SaveProfilePhoto(ctx, filename, src)
}

// LocalStorage writes uploads under baseDir and returns relative URLs served
// from the static /uploads prefix.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, helpers.ProfileFolder), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

func (s *LocalStorage) SaveProfilePhoto(ctx context.Context, filename string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), helpers.SanitizeFilename(filename))
	path := filepath.Join(s.baseDir, helpers.ProfileFolder, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %v", err)
	}

	return "/uploads/" + helpers.ProfileFolder + "/" + name, nil
}

// CloudinaryStorage uploads photos to Cloudinary and returns the secure URL.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cld *cloudinary.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld}
}

func (s *CloudinaryStorage) SaveProfilePhoto(ctx context.Context, filename string, src io.Reader) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder: helpers.ProfileFolder,
		Tags:   []string{"coloc-app"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo %s: %v", filename, err)
	}
	return result.SecureURL, nil
}
