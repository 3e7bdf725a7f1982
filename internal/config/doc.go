// Package config provides configuration loading, merging and validation for
// the go-conf-keeper server and client.
//
// Server configuration is assembled from several layers. For every field the
// first layer that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command line client.
package config
