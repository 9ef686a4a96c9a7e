package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
)

// loadEnvFiles loads .env and .env.local from the project root so that
// ${VAR} references in the configuration file can be expanded.
// Existing process environment variables are not overwritten.
func loadEnvFiles(root string) {
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(root, name)
		err := godotenv.Load(path)
		switch {
		case err == nil:
			slog.Debug("Loaded environment variables", slog.String("path", path))
		case errors.Is(err, fs.ErrNotExist):
		default:
			slog.Warn("Failed to load environment file", slog.String("path", path), slog.String("error", err.Error()))
		}
	}
}
