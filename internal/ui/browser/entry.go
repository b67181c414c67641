package browser

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/llehouerou/halftone/internal/imaging"
)

// Entry represents a file or directory in the browser listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64 // bytes, 0 for directories
}

// ListDir reads a directory and returns its browsable entries:
// subdirectories and image files, hidden entries skipped,
// directories first, names compared case-insensitively.
func ListDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		name := e.Name()

		// Skip hidden files and directories
		if strings.HasPrefix(name, ".") {
			continue
		}

		if !e.IsDir() && !imaging.IsImageFile(name) {
			continue
		}

		var size int64
		if !e.IsDir() {
			if info, err := e.Info(); err == nil {
				size = info.Size()
			}
		}

		entries = append(entries, Entry{
			Name:  name,
			Path:  filepath.Join(dir, name),
			IsDir: e.IsDir(),
			Size:  size,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}
