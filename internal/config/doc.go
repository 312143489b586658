// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Server configuration is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//  1. JSON or YAML config file
//  2. .env file (loaded into the process environment)
//  3. Environment variables
//  4. Command-line flags
//
// Fields left empty by every source receive defaults (see [DefaultHTTPAddress]
// and friends) before validation.
//
// The main entry points are [GetStructuredConfig] for server/runtime
// configuration and [GetClientConfig] for the catalogctl client.
package config
