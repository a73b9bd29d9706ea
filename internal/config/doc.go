// Package config provides configuration loading, merging, and validation
// facilities for the search client and the demo search service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetClientConfig] for the client and
// [GetServerConfig] for the search service.
package config
