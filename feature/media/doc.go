// Package media implements the high-level media lifecycle on top of the
// Bunny CDN client: upload with compression, replace, clear, delete, bulk
// delete, explicit cache purging, and origin archive verification.
//
// Each asset is recorded in the database with its storage path (public id)
// and public CDN URL. Storage deletes and cache purges are best effort on the
// overwrite paths: a failed purge is logged but never fails the request,
// matching how callers treat stale cached copies as tolerable.
package media
