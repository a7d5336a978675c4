package batch

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DiscoverAudio walks root recursively and returns every MP3 file,
// matched by case-insensitive extension, in lexical walk order.
//
// The walk does not follow symlinks. An unreadable directory aborts
// discovery with an error rather than silently shrinking the batch.
func DiscoverAudio(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".mp3") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
