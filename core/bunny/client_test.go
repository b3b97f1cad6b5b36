package bunny_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cdn-manager/core/bunny"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(endpoint string) bunny.Config {
	return bunny.Config{
		StorageZone:       "media-zone",
		StoragePassword:   "storage-secret",
		StorageEndpoint:   endpoint,
		CDNBaseURL:        "https://cdn.example.com",
		OptimizerDefaults: "auto_optimize=medium",
	}
}

func TestConfig_StorageBase(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		zone     string
		want     string
	}{
		{"Plain", "https://storage.bunnycdn.com", "media", "https://storage.bunnycdn.com/media/"},
		{"TrailingSlashes", "https://storage.bunnycdn.com/", "/media/", "https://storage.bunnycdn.com/media/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := bunny.Config{StorageEndpoint: tt.endpoint, StorageZone: tt.zone}
			assert.Equal(t, tt.want, c.StorageBase())
		})
	}
}

func TestUploadBytes(t *testing.T) {
	var gotPath, gotKey, gotType string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotKey = r.Header.Get("AccessKey")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	client := bunny.NewClient(testConfig(ts.URL), zap.NewNop())

	obj, err := client.UploadBytes(context.Background(), []byte("payload"), bunny.ByteUploadOptions{
		Folder:      "/avatars/",
		BaseName:    "abc123",
		ContentType: "image/webp",
		Extension:   ".webp",
	})

	require.NoError(t, err)
	assert.Equal(t, "/media-zone/avatars/abc123.webp", gotPath)
	assert.Equal(t, "storage-secret", gotKey)
	assert.Equal(t, "image/webp", gotType)
	assert.Equal(t, []byte("payload"), gotBody)
	assert.Equal(t, "avatars/abc123.webp", obj.Path)
	assert.Equal(t, "https://cdn.example.com/avatars/abc123.webp?auto_optimize=medium", obj.URL)
}

func TestUploadBytes_NoOptimizerDefaults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL)
	cfg.OptimizerDefaults = ""
	client := bunny.NewClient(cfg, zap.NewNop())

	obj, err := client.UploadBytes(context.Background(), []byte("x"), bunny.ByteUploadOptions{
		Folder:      "avatars",
		BaseName:    "abc123",
		ContentType: "image/webp",
		Extension:   ".webp",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/abc123.webp", obj.URL)
}

func TestUploadBytes_RejectedStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := bunny.NewClient(testConfig(ts.URL), zap.NewNop())

	_, err := client.UploadBytes(context.Background(), []byte("x"), bunny.ByteUploadOptions{
		Folder:      "avatars",
		BaseName:    "abc123",
		ContentType: "image/webp",
		Extension:   ".webp",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, bunny.ErrUpload)
	assert.Contains(t, err.Error(), "401")
}

func TestUpload_ExtensionFallback(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	client := bunny.NewClient(testConfig(ts.URL), zap.NewNop())

	t.Run("FromFileName", func(t *testing.T) {
		_, err := client.Upload(context.Background(), strings.NewReader("x"), bunny.UploadOptions{
			Folder:   "docs",
			BaseName: "report",
			FileName: "quarterly.pdf",
		})
		require.NoError(t, err)
		assert.Equal(t, "/media-zone/docs/report.pdf", gotPath)
	})

	t.Run("FromContentType", func(t *testing.T) {
		_, err := client.Upload(context.Background(), strings.NewReader("x"), bunny.UploadOptions{
			Folder:      "avatars",
			BaseName:    "pic",
			ContentType: "image/png",
		})
		require.NoError(t, err)
		assert.Equal(t, "/media-zone/avatars/pic.png", gotPath)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := client.Upload(context.Background(), strings.NewReader("x"), bunny.UploadOptions{
			Folder:   "blobs",
			BaseName: "raw",
		})
		require.NoError(t, err)
		assert.Equal(t, "/media-zone/blobs/raw.bin", gotPath)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotPath, gotMethod string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		client := bunny.NewClient(testConfig(ts.URL), zap.NewNop())
		err := client.Delete(context.Background(), "/avatars/abc123.webp")

		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/media-zone/avatars/abc123.webp", gotPath)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		client := bunny.NewClient(testConfig("https://storage.invalid"), zap.NewNop())
		err := client.Delete(context.Background(), "")
		assert.ErrorIs(t, err, bunny.ErrEmptyPath)
	})

	t.Run("NotFound", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := bunny.NewClient(testConfig(ts.URL), zap.NewNop())
		err := client.Delete(context.Background(), "avatars/missing.webp")
		assert.ErrorIs(t, err, bunny.ErrDelete)
	})
}

func TestPurgeCache(t *testing.T) {
	t.Run("NotConfigured", func(t *testing.T) {
		client := bunny.NewClient(testConfig("https://storage.invalid"), zap.NewNop())

		result := client.PurgeCache(context.Background(), []string{"https://cdn.example.com/a.webp", ""})

		assert.Empty(t, result.Success)
		assert.Equal(t, []string{"https://cdn.example.com/a.webp"}, result.Failed)
	})

	t.Run("EmptyList", func(t *testing.T) {
		client := bunny.NewClient(testConfig("https://storage.invalid"), zap.NewNop())
		result := client.PurgeCache(context.Background(), nil)
		assert.Empty(t, result.Success)
		assert.Empty(t, result.Failed)
	})

	t.Run("MixedOutcome", func(t *testing.T) {
		var calls int
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			require.Equal(t, "/pullzone/42/purgeCache", r.URL.Path)
			require.Equal(t, "account-key", r.Header.Get("AccessKey"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			if strings.Contains(body["url"], "bad") {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer ts.Close()

		cfg := testConfig("https://storage.invalid")
		cfg.PullZoneID = 42
		cfg.APIKey = "account-key"

		client := bunny.NewClient(cfg, zap.NewNop())
		client.APIBase = ts.URL

		result := client.PurgeCache(context.Background(), []string{
			"https://cdn.example.com/good.webp",
			"https://cdn.example.com/bad.webp",
			"",
		})

		assert.Equal(t, 2, calls)
		assert.Equal(t, []string{"https://cdn.example.com/good.webp"}, result.Success)
		assert.Equal(t, []string{"https://cdn.example.com/bad.webp"}, result.Failed)
	})
}
