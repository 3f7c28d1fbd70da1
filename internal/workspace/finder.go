package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension recursively searches root for files ending with the
// given extension and returns their full paths in sorted order.
func FindFilesByExtension(root, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// WriteEventList builds the <base>.list file from the FITS event files found
// under dir. It refuses to overwrite an existing list so a hand-curated one
// survives re-runs.
func (w *Workspace) WriteEventList(dir string) (int, error) {
	listPath := w.EventList()
	if _, err := os.Stat(listPath); err == nil {
		return 0, fmt.Errorf("event list %s already exists", listPath)
	}

	files, err := FindFilesByExtension(dir, ".fits")
	if err != nil {
		return 0, fmt.Errorf("scanning %s for event files: %w", dir, err)
	}

	// The spacecraft file lives next to the event files but must not be
	// selected as one.
	events := files[:0]
	for _, f := range files {
		if strings.HasSuffix(f, "_SC.fits") {
			continue
		}
		events = append(events, f)
	}
	if len(events) == 0 {
		return 0, fmt.Errorf("no event files found under %s", dir)
	}

	var b strings.Builder
	for _, f := range events {
		b.WriteString(f)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(listPath, []byte(b.String()), 0o644); err != nil {
		return 0, fmt.Errorf("writing event list: %w", err)
	}
	return len(events), nil
}
