package bunny

import "strings"

// Config holds configuration for the Bunny CDN integration.
type Config struct {
	// StorageZone is the name of the storage zone originals are uploaded to.
	StorageZone string `mapstructure:"storage_zone" default:""`
	// StoragePassword is the AccessKey used for storage zone writes.
	StoragePassword string `mapstructure:"storage_password" default:""`
	// StorageEndpoint is the base address of the storage API.
	StorageEndpoint string `mapstructure:"storage_endpoint" default:"https://storage.bunnycdn.com"`
	// CDNBaseURL is the public base URL assets are served from.
	CDNBaseURL string `mapstructure:"cdn_base_url" default:""`
	// PullZoneID identifies the pull zone used for cache purging. 0 disables purging.
	PullZoneID int `mapstructure:"pull_zone_id" default:"0"`
	// APIKey is the account key used for management API calls (purge).
	APIKey string `mapstructure:"api_key" default:""`
	// OptimizerDefaults is a query string appended to served image URLs.
	// With the Optimizer disabled on the pull zone the parameters are ignored.
	OptimizerDefaults string `mapstructure:"optimizer_defaults" default:"auto_optimize=medium"`
	// PurgeOnOverwrite controls whether replacing or deleting an asset
	// also purges its cached copies.
	PurgeOnOverwrite bool `mapstructure:"purge_on_overwrite" default:"true"`
}

// StorageBase returns the base URL used for storage API calls (upload/delete).
func (c Config) StorageBase() string {
	return strings.TrimRight(c.StorageEndpoint, "/") + "/" + strings.Trim(c.StorageZone, "/") + "/"
}

// CanPurge reports whether the pull zone purge API is configured.
func (c Config) CanPurge() bool {
	return c.PullZoneID != 0 && c.APIKey != ""
}
