package bibfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extension is the file extension recognised as bibliography input.
const Extension = ".bib"

// ErrNoInputs is returned when a directory holds no bibliography files.
var ErrNoInputs = errors.New("no .bib files found")

// Discover returns the bibliography files directly inside dir, sorted by name.
// Files whose name starts with skipPrefix are ignored so a previous run's
// output is never merged back in.
func Discover(dir, skipPrefix string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input directory: %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) != Extension {
			continue
		}
		if skipPrefix != "" && strings.HasPrefix(name, skipPrefix) {
			continue
		}
		path := filepath.Join(dir, name)
		// Stat follows symlinks so linked bibliographies are still picked up.
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoInputs)
	}
	sort.Strings(paths)
	return paths, nil
}
