package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-s store backend: json, memory, sqlite or postgres
//	-f settings JSON file path (json backend)
//	-d database DSN (sqlite and postgres backends)
//	-definitions setting definitions file path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level
//	-version application version
//	-max-list-items maximum number of items in a list setting
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("conf-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var backend, settingsJSON, databaseDSN, definitions string
	var jsonConfigPath, logLevel, version string
	var requestTimeout time.Duration
	var maxListItems int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&backend, "s", "", "Store backend: json, memory, sqlite or postgres")
	fs.StringVar(&settingsJSON, "f", "", "Settings JSON file path")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&definitions, "definitions", "", "Setting definitions file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	fs.StringVar(&version, "version", "", "Application version")
	fs.IntVar(&maxListItems, "max-list-items", 0, "Maximum number of items in a list setting")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:         version,
			DefinitionsPath: definitions,
			MaxListItems:    maxListItems,
		},
		Storage: Storage{
			Backend: backend,
			Files:   Files{SettingsJSON: settingsJSON},
			DB:      DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
