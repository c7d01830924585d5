package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/siteconf/internal/errors"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
)

// ErrInvalidConfiguration is matched (errors.Is) by every error Load and Parse return.
var ErrInvalidConfiguration = derrors.ErrInvalidConfiguration

// Load reads, normalizes and validates the site configuration at configPath.
// A .env or .env.local next to the file is loaded first so ${VAR} references
// can be resolved.
func Load(configPath string) (*SiteConfig, error) {
	cfg, _, err := LoadWithWarnings(configPath)
	return cfg, err
}

// LoadWithWarnings is Load that also returns the normalization warnings.
func LoadWithWarnings(configPath string) (*SiteConfig, []string, error) {
	if envPath, err := LoadEnvFile(filepath.Dir(configPath)); err != nil {
		slog.Warn("Failed to load environment file", logfields.Error(err))
	} else if envPath != "" {
		slog.Debug("Loaded environment variables", logfields.Path(envPath))
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, derrors.ConfigNotFound(configPath)
		}
		return nil, nil, derrors.ConfigUnreadable(configPath, err)
	}

	cfg, warnings, err := parse(data)
	if err != nil {
		var se *derrors.SiteError
		if errors.As(err, &se) {
			se.WithContext("path", configPath)
		}
		return nil, warnings, err
	}
	slog.Debug("Loaded site configuration",
		logfields.Path(configPath),
		logfields.Count(len(cfg.Locales)))
	return cfg, warnings, nil
}

// Parse runs the load pipeline (env expansion, strict decode, normalization,
// validation) on in-memory YAML.
func Parse(data []byte) (*SiteConfig, error) {
	cfg, _, err := parse(data)
	return cfg, err
}

func parse(data []byte) (*SiteConfig, []string, error) {
	cfg, err := decode(expandEnv(data))
	if err != nil {
		return nil, nil, derrors.ConfigMalformed(err)
	}

	res := Normalize(cfg)
	for _, w := range res.Warnings {
		slog.Debug("config normalization", slog.String("warning", w))
	}

	if err := Validate(cfg); err != nil {
		return nil, res.Warnings, derrors.ValidationFailed(err)
	}
	return cfg, res.Warnings, nil
}

// decode strictly unmarshals a single YAML document. Unknown fields and
// duplicate mapping keys are errors.
func decode(data []byte) (*SiteConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg SiteConfig
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("configuration is empty")
		}
		return nil, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("configuration must contain a single YAML document")
	}
	return &cfg, nil
}
