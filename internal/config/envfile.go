package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/joho/godotenv"
)

// EnvFileName holds BUDDY_* overrides next to config.yaml.
const EnvFileName = "buddy.env"

// DefaultEnvFile is the env file read at startup.
func DefaultEnvFile() string {
	return filepath.Join(DefaultConfigDir(), EnvFileName)
}

// LoadEnvFile exports the variables in path into the process environment.
// Variables that are already set keep their value. A missing file is not an
// error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(ExpandPath(path)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: env file %s: %w", common.ErrInvalidConfig, path, err)
	}
	return nil
}
