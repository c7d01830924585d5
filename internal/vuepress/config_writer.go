package vuepress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/siteconf/internal/config"
	derrors "git.home.luguber.info/inful/siteconf/internal/errors"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
)

const jsHeader = "// Generated by siteconf. Do not edit by hand.\n"

// Encode renders the generator-facing configuration object in format f.
func Encode(cfg *config.SiteConfig, f Format) ([]byte, error) {
	root := cfg.Generator()
	switch f {
	case FormatJSON:
		return encodeJSON(root)
	case FormatJS:
		body, err := encodeJSON(root)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		buf.WriteString(jsHeader)
		buf.WriteString("module.exports = ")
		buf.Write(bytes.TrimRight(body, "\n"))
		buf.WriteString(";\n")
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return nil, fmt.Errorf("failed to marshal generator config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal generator config: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", f)
	}
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal generator config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfig encodes cfg and atomically replaces path (temp file + rename).
func WriteConfig(cfg *config.SiteConfig, path string, f Format) error {
	data, err := Encode(cfg, f)
	if err != nil {
		return derrors.InternalError("encode generator configuration", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return derrors.EmitFailed(path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return derrors.EmitFailed(path, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return derrors.EmitFailed(path, err)
	}
	if err := tmp.Close(); err != nil {
		return derrors.EmitFailed(path, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return derrors.EmitFailed(path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return derrors.EmitFailed(path, err)
	}

	slog.Info("Generated VuePress configuration",
		logfields.Path(path),
		logfields.Format(string(f)),
		logfields.Snapshot(cfg.Snapshot()))
	return nil
}
