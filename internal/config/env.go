package config

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; the first one present is loaded.
var envFiles = []string{".env", ".env.local"}

// LoadEnvFile loads KEY=VALUE pairs from the first .env/.env.local found in dir.
// Existing process environment variables are not overwritten. It returns the
// file that was loaded, or "" when none exists.
func LoadEnvFile(dir string) (string, error) {
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", err
		}
		if err := godotenv.Load(p); err != nil {
			return "", err
		}
		return p, nil
	}
	return "", nil
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${NAME} references with environment values. Bare $NAME is
// left alone so literal dollar signs in site text survive.
func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(m []byte) []byte {
		name := envRef.FindSubmatch(m)[1]
		return []byte(os.Getenv(string(name)))
	})
}
