// Package config provides configuration management for the CDN Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Bunny: Bunny CDN storage zone, pull zone and optimizer settings
//   - Storage: origin archive (S3/Minio) credentials and bucket settings
//   - Database: MySQL connection details
//   - Log: Logging level and format
//
// Environment keys follow the nested structure: BUNNY_STORAGE_ZONE maps to
// bunny.storage_zone, SERVER_PORT to server.port, and so on.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Bunny.StorageZone)
package config
