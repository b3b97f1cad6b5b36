package mocks

import (
	"context"
	"io"

	"cdn-manager/core/bunny"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of bunny.Client
type Client struct {
	mock.Mock
}

func (m *Client) Upload(ctx context.Context, r io.Reader, opts bunny.UploadOptions) (bunny.Object, error) {
	args := m.Called(ctx, r, opts)
	return args.Get(0).(bunny.Object), args.Error(1)
}

func (m *Client) UploadBytes(ctx context.Context, data []byte, opts bunny.ByteUploadOptions) (bunny.Object, error) {
	args := m.Called(ctx, data, opts)
	return args.Get(0).(bunny.Object), args.Error(1)
}

func (m *Client) Delete(ctx context.Context, objectPath string) error {
	args := m.Called(ctx, objectPath)
	return args.Error(0)
}

func (m *Client) PurgeCache(ctx context.Context, urls []string) bunny.PurgeResult {
	args := m.Called(ctx, urls)
	return args.Get(0).(bunny.PurgeResult)
}
