package vuepress

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/siteconf/internal/foundation/normalization"
)

// Format is the encoding of an emitted generator configuration.
type Format string

const (
	FormatJSON Format = "json"
	FormatJS   Format = "js"
	FormatYAML Format = "yaml"
)

var formatNormalizer = normalization.NewNormalizer(map[string]Format{
	"json":       FormatJSON,
	"js":         FormatJS,
	"cjs":        FormatJS,
	"javascript": FormatJS,
	"yaml":       FormatYAML,
	"yml":        FormatYAML,
}, FormatJSON)

// ParseFormat normalizes a user supplied format name; "" selects JSON.
func ParseFormat(raw string) (Format, error) {
	return formatNormalizer.NormalizeWithError(raw)
}

// FormatForPath infers the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return formatNormalizer.Normalize(ext)
}

// DefaultFileName is the conventional file name for f inside the .vuepress directory.
func DefaultFileName(f Format) string {
	switch f {
	case FormatJS:
		return "config.js"
	case FormatYAML:
		return "config.yml"
	default:
		return "config.json"
	}
}
