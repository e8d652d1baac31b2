package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"shownotes/internal/domain"
)

const transcriptExt = ".txt"

func (c *implCatalog) List(ctx context.Context, byRecency bool) ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read transcript dir: %w", err)
	}

	type file struct {
		name    string
		modTime time.Time
	}

	var files []file
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) != transcriptExt {
			continue
		}
		info, err := e.Info()
		if err != nil {
			c.logger.Warn(ctx, "Skipping %s: %v", e.Name(), err)
			continue
		}
		files = append(files, file{
			name:    strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			modTime: info.ModTime(),
		})
	}

	if byRecency {
		sort.Slice(files, func(i, j int) bool {
			if files[i].modTime.Equal(files[j].modTime) {
				return files[i].name < files[j].name
			}
			return files[i].modTime.After(files[j].modTime)
		})
	} else {
		sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.name)
	}
	return names, nil
}

func (c *implCatalog) Read(ctx context.Context, name string) (string, error) {
	// filepath.Base strips any path components so a caller cannot
	// reach outside the transcript directory.
	base := filepath.Base(name)
	if !strings.HasSuffix(strings.ToLower(base), transcriptExt) {
		base += transcriptExt
	}

	data, err := os.ReadFile(filepath.Join(c.dir, base))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("transcript %q: %w", name, domain.ErrNotFound)
		}
		return "", fmt.Errorf("read transcript %q: %w", name, err)
	}

	return string(data), nil
}
