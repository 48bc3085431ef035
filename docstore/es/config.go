/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package es

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/modelstore/storagemodels"
)

// Config holds the connection and index settings for an Elasticsearch
// backed document store.
type Config struct {
	// Addresses lists the cluster node URLs.
	Addresses []string `yaml:"addresses"`
	// Username and Password authenticate against the cluster, if set.
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// WriteIndex is the canonical index new documents are created in.
	WriteIndex string `yaml:"write_index"`
	// Pattern matches the write index plus prior index generations.
	Pattern string `yaml:"pattern"`

	// Transport overrides the HTTP transport, used by tests.
	Transport http.RoundTripper `yaml:"-"`
}

// IndexDescriptor returns the descriptor to register for entity types
// stored through this backend.
func (c *Config) IndexDescriptor() storagemodels.IndexDescriptor {
	return storagemodels.IndexDescriptor{
		WriteIndex: c.WriteIndex,
		Pattern:    c.Pattern,
	}
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ConfigFromEnv builds a Config from environment variables, loading a
// .env file first when one is present.
//
// Recognized variables: ES_ADDRESSES (comma separated), ES_USERNAME,
// ES_PASSWORD, ES_WRITE_INDEX, ES_PATTERN.
func ConfigFromEnv() *Config {
	// Absence of a .env file is fine; real environments set variables
	// directly.
	_ = godotenv.Load()

	cfg := &Config{
		Username:   os.Getenv("ES_USERNAME"),
		Password:   os.Getenv("ES_PASSWORD"),
		WriteIndex: os.Getenv("ES_WRITE_INDEX"),
		Pattern:    os.Getenv("ES_PATTERN"),
	}
	if addrs := os.Getenv("ES_ADDRESSES"); addrs != "" {
		for _, a := range strings.Split(addrs, ",") {
			if a = strings.TrimSpace(a); a != "" {
				cfg.Addresses = append(cfg.Addresses, a)
			}
		}
	}
	return cfg
}
