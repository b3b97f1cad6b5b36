package bunny

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors returned by the client. Callers match with errors.Is.
var (
	ErrEmptyPath = errors.New("bunny: empty storage path")
	ErrUpload    = errors.New("bunny: upload failed")
	ErrDelete    = errors.New("bunny: delete failed")
)

// DefaultAPIBase is the management API endpoint used for pull zone operations.
const DefaultAPIBase = "https://api.bunny.net"

const (
	uploadTimeout = 60 * time.Second
	deleteTimeout = 30 * time.Second
	purgeTimeout  = 30 * time.Second
)

// Object describes a stored asset: its storage path and public CDN URL.
type Object struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// PurgeResult lists which URLs were purged successfully and which failed.
type PurgeResult struct {
	Success []string `json:"success"`
	Failed  []string `json:"failed"`
}

// UploadOptions controls where a streamed upload lands.
// The extension is derived from FileName, falling back to ContentType.
type UploadOptions struct {
	Folder      string
	BaseName    string
	FileName    string
	ContentType string
}

// ByteUploadOptions controls where a pre-encoded payload lands.
type ByteUploadOptions struct {
	Folder      string
	BaseName    string
	ContentType string
	Extension   string
}

// Client defines the interface for Bunny CDN operations.
type Client interface {
	// Upload streams a file to the storage zone and returns its path and CDN URL.
	Upload(ctx context.Context, r io.Reader, opts UploadOptions) (Object, error)
	// UploadBytes uploads a pre-encoded payload to the storage zone.
	UploadBytes(ctx context.Context, data []byte, opts ByteUploadOptions) (Object, error)
	// Delete removes an object from the storage zone.
	Delete(ctx context.Context, objectPath string) error
	// PurgeCache invalidates cached copies of the given URLs across edge nodes.
	PurgeCache(ctx context.Context, urls []string) PurgeResult
}

// HTTPClient implements Client against the Bunny storage and management APIs.
type HTTPClient struct {
	cfg    Config
	logger *zap.Logger

	// APIBase is overridable for tests; defaults to DefaultAPIBase.
	APIBase string

	httpClient *http.Client
}

// NewClient creates a new Bunny CDN client based on the configuration.
func NewClient(cfg Config, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		cfg:     cfg,
		logger:  logger,
		APIBase: DefaultAPIBase,
		// Per-request deadlines are set via context; the client itself has no
		// global timeout so the longer upload deadline is not clipped.
		httpClient: &http.Client{},
	}
}

// preferred extensions for the content types we actually serve;
// mime.ExtensionsByType ordering is platform dependent.
var extByType = map[string]string{
	"image/webp": ".webp",
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

func extensionFor(fileName, contentType string) string {
	if ext := path.Ext(fileName); ext != "" {
		return ext
	}
	if ext, ok := extByType[contentType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}

func (c *HTTPClient) objectPath(folder, baseName, ext string) string {
	return strings.Trim(folder, "/") + "/" + baseName + ext
}

// cdnURL builds the public URL, appending optimizer defaults when configured.
func (c *HTTPClient) cdnURL(objectPath string) string {
	u := strings.TrimRight(c.cfg.CDNBaseURL, "/") + "/" + objectPath
	qs := c.cfg.OptimizerDefaults
	if qs == "" {
		return u
	}
	connector := "?"
	if strings.Contains(u, "?") {
		connector = "&"
	}
	return u + connector + qs
}

func (c *HTTPClient) Upload(ctx context.Context, r io.Reader, opts UploadOptions) (Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Object{}, fmt.Errorf("%w: reading source: %v", ErrUpload, err)
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return c.UploadBytes(ctx, data, ByteUploadOptions{
		Folder:      opts.Folder,
		BaseName:    opts.BaseName,
		ContentType: contentType,
		Extension:   extensionFor(opts.FileName, opts.ContentType),
	})
}

func (c *HTTPClient) UploadBytes(ctx context.Context, data []byte, opts ByteUploadOptions) (Object, error) {
	objectPath := c.objectPath(opts.Folder, opts.BaseName, opts.Extension)
	putURL := c.cfg.StorageBase() + objectPath

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, putURL, bytes.NewReader(data))
	if err != nil {
		return Object{}, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	req.Header.Set("AccessKey", c.cfg.StoragePassword)
	req.Header.Set("Content-Type", opts.ContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Upload to storage zone failed",
			zap.String("path", objectPath), zap.Error(err))
		return Object{}, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Upload to storage zone rejected",
			zap.String("path", objectPath), zap.Int("status", resp.StatusCode))
		return Object{}, fmt.Errorf("%w: unexpected status %d", ErrUpload, resp.StatusCode)
	}

	c.logger.Info("Uploaded object to storage zone",
		zap.String("path", objectPath), zap.Int("bytes", len(data)))

	return Object{Path: objectPath, URL: c.cdnURL(objectPath)}, nil
}

func (c *HTTPClient) Delete(ctx context.Context, objectPath string) error {
	if objectPath == "" {
		c.logger.Warn("Attempted to delete empty storage path")
		return ErrEmptyPath
	}

	delURL := c.cfg.StorageBase() + strings.TrimLeft(objectPath, "/")

	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, delURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelete, err)
	}
	req.Header.Set("AccessKey", c.cfg.StoragePassword)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Delete from storage zone failed",
			zap.String("path", objectPath), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrDelete, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Delete from storage zone rejected",
			zap.String("path", objectPath), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: unexpected status %d", ErrDelete, resp.StatusCode)
	}

	c.logger.Info("Deleted object from storage zone", zap.String("path", objectPath))
	return nil
}

func (c *HTTPClient) PurgeCache(ctx context.Context, urls []string) PurgeResult {
	result := PurgeResult{Success: []string{}, Failed: []string{}}

	if len(urls) == 0 {
		c.logger.Warn("Attempted cache purge with empty URL list")
		return result
	}

	if !c.cfg.CanPurge() {
		c.logger.Warn("Pull zone purge not configured, skipping cache purge",
			zap.Int("pull_zone_id", c.cfg.PullZoneID))
		for _, u := range urls {
			if u != "" {
				result.Failed = append(result.Failed, u)
			}
		}
		return result
	}

	api := fmt.Sprintf("%s/pullzone/%d/purgeCache", c.APIBase, c.cfg.PullZoneID)

	for _, u := range urls {
		if u == "" {
			continue
		}
		if err := c.purgeOne(ctx, api, u); err != nil {
			result.Failed = append(result.Failed, u)
			c.logger.Error("Cache purge failed", zap.String("url", u), zap.Error(err))
			continue
		}
		result.Success = append(result.Success, u)
		c.logger.Info("Purged cached URL", zap.String("url", u))
	}

	return result
}

func (c *HTTPClient) purgeOne(ctx context.Context, api, url string) error {
	body, err := json.Marshal(map[string]string{"url": url})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, api, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("AccessKey", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
