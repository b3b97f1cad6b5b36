// Package storage provides the origin archive for uploaded originals.
//
// Compressed derivatives live on the CDN storage zone; the archive keeps the
// untouched originals in an S3-compatible bucket (AWS S3 or self-hosted Minio)
// so assets can be re-encoded later without a lossy source.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Verify or create the archive bucket.
//   - PutObject: Archive an original upload.
//   - StatObject: Verify an archived original is present.
//   - RemoveObject: Drop an archived original.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "originals")
package storage
