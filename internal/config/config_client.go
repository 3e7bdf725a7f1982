package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the settings API, with or without
	// scheme (e.g. "localhost:8080" or "https://feeder.local").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command line client.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// JSONFilePath optionally names a JSON file with client settings.
	// Env: CLIENT_CONFIG
	JSONFilePath string `env:"CLIENT_CONFIG"`
}

type clientJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`
}

// GetClientConfig builds and validates the client configuration. Values
// given in overrides win over environment variables, which win over the JSON
// file, which wins over the built-in defaults.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	layers := []*ClientConfig{&overrides}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}
	layers = append(layers, envCfg)

	jsonPath := overrides.JSONFilePath
	if jsonPath == "" {
		jsonPath = envCfg.JSONFilePath
	}
	if jsonPath != "" {
		jsonCfg, err := parseClientJSON(jsonPath)
		if err != nil {
			return nil, err
		}
		layers = append(layers, jsonCfg)
	}

	layers = append(layers, &ClientConfig{Adapter: ClientAdapter{
		HTTPAddress:    DefaultHTTPAddress,
		RequestTimeout: DefaultRequestTimeout,
	}})

	cfg := new(ClientConfig)
	var err error
	for _, layer := range layers {
		err = errors.Join(err, mergo.Merge(cfg, layer))
	}
	if err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	return cfg, cfg.validate()
}

func parseClientJSON(path string) (*ClientConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer f.Close()

	var raw clientJSONConfig
	if err = json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	return &ClientConfig{Adapter: ClientAdapter{
		HTTPAddress:    raw.Adapter.HTTPAddress,
		RequestTimeout: time.Duration(raw.Adapter.RequestTimeout),
	}}, nil
}
