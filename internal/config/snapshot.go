package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Snapshot computes a stable hash of the configuration content. Map keys are
// serialized in sorted order, so two loads of the same file always produce the
// same snapshot. Callers should Normalize first so cosmetic differences such as
// tag casing do not change the hash.
func (c *SiteConfig) Snapshot() string {
	if c == nil {
		return ""
	}
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
