// Package database manages the MySQL connection for asset records.
//
// The connection is optional: when it fails at startup the service still runs,
// with persistence-backed operations degraded. Connect applies pool settings
// and verifies the connection with a bounded ping.
package database
