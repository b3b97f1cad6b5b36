// Package bunny provides a client for the Bunny CDN storage and management APIs.
//
// It covers the three operations the service needs: uploading objects to a
// storage zone, deleting them, and purging cached copies through the pull zone
// management API. The storage API is a plain HTTP surface (PUT/DELETE with an
// AccessKey header), not S3 compatible, so this client talks to it directly.
//
// # Client Interface
//
// The Client interface abstracts the provider, making it easy to mock CDN
// interactions for unit testing (see core/bunny/mocks).
//
// # URL Building
//
// Uploaded objects are addressed as <endpoint>/<zone>/<folder>/<base><ext>.
// The returned public URL is built from the configured CDN base URL, with the
// optimizer default query string appended when one is configured.
//
// # Purging
//
// PurgeCache is best effort: URLs are purged one by one and reported in
// success/failed lists. When no pull zone id or API key is configured the
// purge is skipped with a warning and all URLs are reported as failed.
package bunny
