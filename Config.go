package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const DefaultListenAddr = ":8080"

const DefaultHubUrl = "http://localhost:3001"

const DefaultHubTimeout = time.Second * 10

var ConfigError = errors.New("invalid config")

// Config is read from an optional TOML file, then overridden by environment variables
type Config struct {
	DatabaseFilepath string        `toml:"database_filepath"`
	ListenAddr       string        `toml:"listen_addr"`
	HubUrl           string        `toml:"hub_url"`
	SubmitUrl        string        `toml:"submit_url"`
	SubmitterEmail   string        `toml:"submitter_email"`
	WebhookWorkers   int           `toml:"webhook_workers"`
	HubTimeout       time.Duration `toml:"hub_timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		ListenAddr:     DefaultListenAddr,
		HubUrl:         DefaultHubUrl,
		WebhookWorkers: DefaultWebhookWorkersCount,
		HubTimeout:     DefaultHubTimeout,
	}
}

func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := config.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) error {
	stringVars := map[string]*string{
		"DATABASE_FILEPATH": &c.DatabaseFilepath,
		"LISTEN_ADDR":       &c.ListenAddr,
		"HUB_URL":           &c.HubUrl,
		"SUBMIT_URL":        &c.SubmitUrl,
		"SUBMITTER_EMAIL":   &c.SubmitterEmail,
	}

	for name, target := range stringVars {
		if value, ok := lookupEnv(name); ok && value != "" {
			*target = value
		}
	}

	if value, ok := lookupEnv("WEBHOOK_WORKERS"); ok && value != "" {
		workers, err := strconv.Atoi(value)
		if err != nil || workers <= 0 {
			return fmt.Errorf("%w: WEBHOOK_WORKERS=%s", ConfigError, value)
		}
		c.WebhookWorkers = workers
	}

	return nil
}
