package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdidvp/shopcart/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the store file looked up when a directory is given.
const DefaultFileName = "shopcart.yaml"

// YAMLLoader implements domain.StoreLoader by reading a YAML store file.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the store file at path. If path is a directory, DefaultFileName
// inside it is read. Returns DefaultStoreConfig if the file does not exist.
func (l *YAMLLoader) Load(path string) (domain.StoreConfig, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFileName)
	}
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultStoreConfig(), nil
		}
		return domain.StoreConfig{}, err
	}

	var cfg domain.StoreConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.StoreConfig{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.StoreConfig{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	return normalize(cfg), nil
}

// normalize trims inventory keys so they match the trimmed catalog SKUs.
// Validate has already rejected keys that trim to the same SKU.
func normalize(cfg domain.StoreConfig) domain.StoreConfig {
	if len(cfg.Inventory) == 0 {
		return cfg
	}
	stock := make(map[string]int, len(cfg.Inventory))
	for sku, qty := range cfg.Inventory {
		stock[strings.TrimSpace(sku)] = qty
	}
	cfg.Inventory = stock
	return cfg
}
