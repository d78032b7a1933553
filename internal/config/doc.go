// Package config provides configuration loading, merging, and validation
// facilities for the server and the probe client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags
//  3. JSON config file
//
// Fields still zero after merging receive the defaults from [Defaults].
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the probe client.
package config
