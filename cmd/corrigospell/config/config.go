// Package config loads the corrigospell CLI's YAML configuration file.
package config

import (
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// Config is the decoded shape of a corrigospell config file.
type Config struct {
	MaxEditDistance int    `mapstructure:"max_edit_distance"`
	PrefixLength    int    `mapstructure:"prefix_length"`
	CountThreshold  uint64 `mapstructure:"count_threshold"`
	DictionaryPath  string `mapstructure:"dictionary_path"`
	BigramPath      string `mapstructure:"bigram_path"`
	SnapshotPath    string `mapstructure:"snapshot_path"`
	ListenAddr      string `mapstructure:"listen_addr"`
	Postgres        struct {
		DSN   string `mapstructure:"dsn"`
		Query string `mapstructure:"query"`
	} `mapstructure:"postgres"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		MaxEditDistance: 2,
		PrefixLength:    7,
		CountThreshold:  1,
		ListenAddr:      ":8080",
	}
}

// Load reads a YAML file at path into a generic map first, then decodes it
// through mapstructure into Config. The two-step path (rather than
// yaml.Unmarshal straight into Config) is what lets the CLI accept loosely
// shaped config files and report which field failed to convert.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, err
	}

	return cfg, nil
}
