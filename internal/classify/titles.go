package classify

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs"
	"github.com/oracle-sql-features/oracle-sql-features.github.io/internal/logfields"
)

// LoadTitles reads group description documents from dir. Each file named
// <label><suffix> contributes its level-1 heading as the title of the group
// whose key is normalize(<label>). A missing dir yields no titles.
func LoadTitles(dir, suffix string, normalize func(string) string) (map[string]string, error) {
	titles := make(map[string]string)

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return titles, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read title directory %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		label := strings.TrimSuffix(e.Name(), suffix)
		key := label
		if normalize != nil {
			key = normalize(label)
		}
		path := filepath.Join(dir, e.Name())
		title, err := docs.ExtractTitle(path)
		if err != nil {
			return nil, err
		}
		titles[key] = title
		slog.Debug("Loaded group title", logfields.Group(key), slog.String("title", title), logfields.Path(path))
	}
	return titles, nil
}
