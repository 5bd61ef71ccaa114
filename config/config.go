// Licensed to the Apache Software Foundation (ASF) under the Apache 2.0 license. See LICENSE in the project root.

// launcher settings kept in <conf>/metadata-launcher.yaml
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	FILE_NAME = "metadata-launcher.yaml"

	MAIN_CLASS       = "main-class"
	JVM_OPTS         = "jvm-opts"
	WEBAPP_EXTRACTOR = "webapp.extractor"
	PID_FILE         = "pid-file"
)

// Config is a thread-safe key-value map read from YAML.
type Config struct {
	values map[string]string
	mu     sync.RWMutex
}

func New() *Config { return &Config{values: make(map[string]string)} }

// Keys returns the keys that are set, sorted.
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Config) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// GetOr returns the value for key, or fallback when it is unset or empty.
func (c *Config) GetOr(key, fallback string) string {
	if v, ok := c.Get(key); ok && v != "" {
		return v
	}
	return fallback
}

// Read configuration in YAML format from reader r. Empty input gives an
// empty config.
func Read(r io.Reader) (*Config, error) {
	config := New()
	if err := yaml.NewDecoder(r).Decode(&config.values); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if config.values == nil {
		config.values = make(map[string]string)
	}
	return config, nil
}

// ReadFile reads filename; a missing file is the same as an empty one.
func ReadFile(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return c, nil
}
