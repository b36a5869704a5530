package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshstack/site-platform/internal/models"
	"github.com/freshstack/site-platform/internal/tenant"
)

var (
	ErrFileTooLarge       = errors.New("file exceeds maximum upload size")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrFileNotFound       = errors.New("file not found")
	ErrStorageUnavailable = errors.New("object storage is not configured")
)

// AllowedImageTypes maps accepted MIME types to their canonical extension.
var AllowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// ObjectStorage is the subset of the S3 client the upload service needs.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type UploadService struct {
	db      *gorm.DB
	storage ObjectStorage
	maxSize int64
}

func NewUploadService(db *gorm.DB, storage ObjectStorage, maxSize int64) *UploadService {
	return &UploadService{db: db, storage: storage, maxSize: maxSize}
}

// ObjectKey builds a collision-resistant storage key under the category
// prefix, e.g. "products/1724900000000-9f8a3c.png".
func ObjectKey(category, contentType string) (string, error) {
	ext, ok := AllowedImageTypes[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}
	if category == "" {
		category = "general"
	}
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d-%s.%s", category, time.Now().UnixMilli(), hex.EncodeToString(buf), ext), nil
}

// Store validates, uploads to object storage, then records the metadata row.
// Validation happens before any byte leaves the process.
func (s *UploadService) Store(ctx context.Context, clientID *uuid.UUID, filename, contentType, category string, data []byte) (*models.UploadedFile, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}
	if int64(len(data)) > s.maxSize {
		return nil, ErrFileTooLarge
	}
	if _, ok := AllowedImageTypes[contentType]; !ok {
		return nil, ErrUnsupportedType
	}

	key, err := ObjectKey(category, contentType)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Upload(ctx, key, data, contentType); err != nil {
		return nil, err
	}

	file := models.UploadedFile{
		ID:          uuid.New(),
		ClientID:    clientID,
		Filename:    filename,
		StoragePath: key,
		PublicURL:   s.storage.PublicURL(key),
		FileType:    contentType,
		FileSize:    int64(len(data)),
		Category:    category,
		Status:      "active",
	}
	if err := s.db.Create(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (s *UploadService) List(clientID uuid.UUID, category string) ([]models.UploadedFile, error) {
	query := s.db.Scopes(tenant.ForClient(clientID)).
		Where("status = ?", "active").
		Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var files []models.UploadedFile
	if err := query.Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// Remove deletes the object and its metadata row. The row goes even when
// storage deletion fails, so stale keys cannot pin dashboard entries.
func (s *UploadService) Remove(ctx context.Context, clientID, fileID uuid.UUID) error {
	var file models.UploadedFile
	err := s.db.Scopes(tenant.ForClient(clientID)).First(&file, "id = ?", fileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFileNotFound
		}
		return err
	}

	if s.storage != nil {
		if err := s.storage.Delete(ctx, file.StoragePath); err != nil {
			slog.Error("storage delete failed, removing row anyway",
				"key", file.StoragePath, "error", err)
		}
	}

	return s.db.Delete(&file).Error
}
