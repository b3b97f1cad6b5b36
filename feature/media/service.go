package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cdn-manager/core/bunny"
	"cdn-manager/core/imageutil"
	"cdn-manager/core/storage"
	"cdn-manager/feature/media/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoDatabase is returned by record-backed operations when the service
	// runs without a database connection.
	ErrNoDatabase = errors.New("media: database not configured")
	// ErrNoArchive is returned by archive operations when the origin archive
	// is disabled.
	ErrNoArchive = errors.New("media: origin archive not configured")
)

// Defaults applied to uploads that do not specify compression parameters.
const (
	DefaultMaxWidth = 800
	DefaultQuality  = 75
)

// CompressParams selects how an upload is compressed before it hits the CDN.
type CompressParams struct {
	MaxWidth int
	Quality  int
	Format   imageutil.Format
}

func (p CompressParams) withDefaults() CompressParams {
	if p.MaxWidth == 0 {
		p.MaxWidth = DefaultMaxWidth
	}
	if p.Quality == 0 {
		p.Quality = DefaultQuality
	}
	if p.Format == "" {
		p.Format = imageutil.FormatWebP
	}
	return p
}

// Service handles media operations: compression, CDN upload/delete,
// cache purging, original archiving and record keeping.
type Service struct {
	cdn              bunny.Client
	archive          storage.Client
	archiveBucket    string
	logger           *zap.Logger
	db               *gorm.DB
	purgeOnOverwrite bool
}

// NewService creates a new media service. archive and db may be nil, which
// disables original archiving and record keeping respectively.
func NewService(cdn bunny.Client, archive storage.Client, archiveBucket string, logger *zap.Logger, db *gorm.DB, purgeOnOverwrite bool) *Service {
	return &Service{
		cdn:              cdn,
		archive:          archive,
		archiveBucket:    archiveBucket,
		logger:           logger,
		db:               db,
		purgeOnOverwrite: purgeOnOverwrite,
	}
}

// source extensions and content types for archived originals, keyed by the
// format name reported by image.DecodeConfig.
var sourceTypes = map[string]struct {
	ext         string
	contentType string
}{
	"png":  {".png", "image/png"},
	"jpeg": {".jpg", "image/jpeg"},
	"gif":  {".gif", "image/gif"},
	"webp": {".webp", "image/webp"},
	"heic": {".heic", "image/heic"},
	"heif": {".heif", "image/heif"},
}

// UploadImage compresses an image, uploads the derivative to the CDN storage
// zone, archives the original when the archive is enabled, and records the
// asset. An empty publicID generates one.
func (s *Service) UploadImage(ctx context.Context, r io.Reader, folder, publicID string, params CompressParams) (*models.Asset, error) {
	original, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("media: reading upload: %w", err)
	}

	params = params.withDefaults()
	res, err := imageutil.Compress(bytes.NewReader(original), imageutil.Options{
		MaxWidth: params.MaxWidth,
		Quality:  params.Quality,
		Format:   params.Format,
	})
	if err != nil {
		s.logger.Error("Image compression failed", zap.String("public_id", publicID), zap.Error(err))
		return nil, err
	}

	baseName := publicID
	if baseName == "" {
		baseName = uuid.NewString()
	}

	obj, err := s.cdn.UploadBytes(ctx, res.Data, bunny.ByteUploadOptions{
		Folder:      folder,
		BaseName:    baseName,
		ContentType: res.ContentType,
		Extension:   res.Extension,
	})
	if err != nil {
		return nil, err
	}

	archiveKey := s.archiveOriginal(ctx, original, folder, baseName, res.SourceFormat)

	asset := &models.Asset{
		ID:          uuid.NewString(),
		PublicID:    obj.Path,
		URL:         obj.URL,
		Folder:      strings.Trim(folder, "/"),
		ContentType: res.ContentType,
		Size:        int64(len(res.Data)),
		ArchiveKey:  archiveKey,
	}

	if s.db != nil {
		if err := s.db.WithContext(ctx).Create(asset).Error; err != nil {
			return nil, fmt.Errorf("media: saving asset record: %w", err)
		}
	}

	s.logger.Info("Uploaded image",
		zap.String("public_id", asset.PublicID),
		zap.String("source_format", res.SourceFormat),
		zap.Int64("bytes", asset.Size))

	return asset, nil
}

// archiveOriginal stores the untouched upload in the origin archive.
// Failures are logged and swallowed; the CDN copy is already in place.
func (s *Service) archiveOriginal(ctx context.Context, original []byte, folder, baseName, sourceFormat string) string {
	if s.archive == nil {
		return ""
	}

	src, ok := sourceTypes[sourceFormat]
	if !ok {
		src.ext, src.contentType = ".bin", "application/octet-stream"
	}
	key := strings.Trim(folder, "/") + "/" + baseName + src.ext

	_, err := s.archive.PutObject(ctx, s.archiveBucket, key,
		bytes.NewReader(original), int64(len(original)),
		minio.PutObjectOptions{ContentType: src.contentType})
	if err != nil {
		s.logger.Warn("Archiving original failed", zap.String("key", key), zap.Error(err))
		return ""
	}
	return key
}

// DeleteImage removes an object from the storage zone and, when requested and
// enabled, purges its cached URL. Returns whether the delete succeeded.
// An empty publicID is a no-op.
func (s *Service) DeleteImage(ctx context.Context, publicID, url string, purge bool) bool {
	if publicID == "" {
		s.logger.Debug("Skipping deletion: empty public_id")
		return false
	}

	if err := s.cdn.Delete(ctx, publicID); err != nil {
		return false
	}

	if purge && s.purgeOnOverwrite && url != "" {
		result := s.cdn.PurgeCache(ctx, []string{url})
		if len(result.Failed) > 0 {
			s.logger.Warn("Cache purge failed", zap.String("url", url))
		}
	}

	return true
}

// GetAsset fetches a stored asset record.
func (s *Service) GetAsset(ctx context.Context, id string) (*models.Asset, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	var asset models.Asset
	if err := s.db.WithContext(ctx).First(&asset, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// ReplaceImage swaps the stored object of an asset for a new upload. The old
// object is deleted (and purged per the overwrite flag) before the new one is
// uploaded and the record updated.
func (s *Service) ReplaceImage(ctx context.Context, id string, r io.Reader, params CompressParams) (*models.Asset, error) {
	asset, err := s.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	if asset.PublicID != "" {
		s.DeleteImage(ctx, asset.PublicID, asset.URL, true)
	}
	s.removeArchived(ctx, asset.ArchiveKey)

	original, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("media: reading upload: %w", err)
	}

	params = params.withDefaults()
	res, err := imageutil.Compress(bytes.NewReader(original), imageutil.Options{
		MaxWidth: params.MaxWidth,
		Quality:  params.Quality,
		Format:   params.Format,
	})
	if err != nil {
		s.logger.Error("Image compression failed", zap.String("asset_id", id), zap.Error(err))
		return nil, err
	}

	baseName := uuid.NewString()
	obj, err := s.cdn.UploadBytes(ctx, res.Data, bunny.ByteUploadOptions{
		Folder:      asset.Folder,
		BaseName:    baseName,
		ContentType: res.ContentType,
		Extension:   res.Extension,
	})
	if err != nil {
		return nil, err
	}

	archiveKey := s.archiveOriginal(ctx, original, asset.Folder, baseName, res.SourceFormat)

	updates := map[string]any{
		"public_id":    obj.Path,
		"url":          obj.URL,
		"content_type": res.ContentType,
		"size":         int64(len(res.Data)),
		"archive_key":  archiveKey,
	}
	if err := s.db.WithContext(ctx).Model(asset).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("media: updating asset record: %w", err)
	}

	asset.PublicID = obj.Path
	asset.URL = obj.URL
	asset.ContentType = res.ContentType
	asset.Size = int64(len(res.Data))
	asset.ArchiveKey = archiveKey

	s.logger.Info("Replaced image", zap.String("asset_id", id), zap.String("public_id", obj.Path))
	return asset, nil
}

// ClearImage deletes an asset's stored object and blanks the record's
// public id and URL, keeping the record itself.
func (s *Service) ClearImage(ctx context.Context, id string) (*models.Asset, error) {
	asset, err := s.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	if asset.PublicID != "" {
		s.DeleteImage(ctx, asset.PublicID, asset.URL, true)
	}
	s.removeArchived(ctx, asset.ArchiveKey)

	updates := map[string]any{"public_id": "", "url": "", "archive_key": ""}
	if err := s.db.WithContext(ctx).Model(asset).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("media: clearing asset record: %w", err)
	}

	asset.PublicID = ""
	asset.URL = ""
	asset.ArchiveKey = ""

	s.logger.Info("Cleared image", zap.String("asset_id", id))
	return asset, nil
}

// DeleteAsset removes an asset's stored object and its record.
func (s *Service) DeleteAsset(ctx context.Context, id string, purge bool) error {
	asset, err := s.GetAsset(ctx, id)
	if err != nil {
		return err
	}

	if asset.PublicID != "" {
		s.DeleteImage(ctx, asset.PublicID, asset.URL, purge)
	}
	s.removeArchived(ctx, asset.ArchiveKey)

	if err := s.db.WithContext(ctx).Delete(asset).Error; err != nil {
		return fmt.Errorf("media: deleting asset record: %w", err)
	}

	s.logger.Info("Deleted asset", zap.String("asset_id", id))
	return nil
}

func (s *Service) removeArchived(ctx context.Context, key string) {
	if s.archive == nil || key == "" {
		return
	}
	if err := s.archive.RemoveObject(ctx, s.archiveBucket, key, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Warn("Removing archived original failed", zap.String("key", key), zap.Error(err))
	}
}

// BulkDelete deletes a list of stored objects, purging each known URL.
func (s *Service) BulkDelete(ctx context.Context, pairs []models.MediaPair) models.BulkDeleteReport {
	report := models.BulkDeleteReport{Success: []string{}, Failed: []string{}}

	for _, pair := range pairs {
		if pair.PublicID == "" {
			continue
		}
		if s.DeleteImage(ctx, pair.PublicID, pair.URL, true) {
			report.Success = append(report.Success, pair.PublicID)
		} else {
			report.Failed = append(report.Failed, pair.PublicID)
		}
	}

	s.logger.Info("Bulk delete finished",
		zap.Int("succeeded", len(report.Success)),
		zap.Int("failed", len(report.Failed)))
	return report
}

// Purge invalidates cached copies of the given URLs. Unlike the overwrite
// paths this is unconditional; an explicit purge request always purges.
func (s *Service) Purge(ctx context.Context, urls []string) bunny.PurgeResult {
	return s.cdn.PurgeCache(ctx, urls)
}

// VerifyArchive checks that every recorded asset with an archive key still
// has its original present in the origin archive.
func (s *Service) VerifyArchive(ctx context.Context) (*models.VerifyReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	if s.archive == nil {
		return nil, ErrNoArchive
	}

	start := time.Now()

	var assets []models.Asset
	if err := s.db.WithContext(ctx).Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("media: listing asset records: %w", err)
	}

	report := &models.VerifyReport{
		TotalRecords: len(assets),
		Missing:      []string{},
	}

	for _, asset := range assets {
		if asset.ArchiveKey == "" {
			continue
		}
		report.TotalArchived++
		if _, err := s.archive.StatObject(ctx, s.archiveBucket, asset.ArchiveKey, minio.StatObjectOptions{}); err != nil {
			report.Missing = append(report.Missing, asset.ArchiveKey)
		}
	}

	report.GeneratedAt = start.UTC().Format(time.RFC3339)
	report.ExecutionTime = time.Since(start).String()
	return report, nil
}
