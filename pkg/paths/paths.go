package paths

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/soxt/soxt/pkg/logger"
)

type Path struct {
	Path         string
	FileName     string
	Directory    string
	Size         int64
	ModifiedTime time.Time
}

type callbackAllowed func(string) *string

var (
	log = logger.GetLogger("paths")
)

// InFolder traverses folder and returns the files below it, plus their
// total size. A custom accept function can filter (or rewrite) results.
// Directories are traversed but never returned; extraction inputs are
// always files.
func InFolder(folder string, acceptFn callbackAllowed) ([]Path, uint64) {
	var paths []Path
	var size uint64 = 0
	var mutex sync.Mutex

	conf := fastwalk.Config{
		Follow: false,
	}

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.WithError(err).Errorf("Error accessing path %q during walk", path)
			return nil
		}

		if path == folder || d.IsDir() {
			return nil
		}

		finalPath := path
		if acceptFn != nil {
			acceptedPath := acceptFn(path)
			if acceptedPath == nil {
				log.Tracef("Skipping rejected path: %s", path)
				return nil
			}
			finalPath = *acceptedPath
		}

		info, err := d.Info()
		if err != nil {
			log.WithError(err).Errorf("Failed to get file info for %s", path)
			return nil
		}

		foundPath := Path{
			Path:         finalPath,
			FileName:     info.Name(),
			Directory:    filepath.Dir(path),
			Size:         info.Size(),
			ModifiedTime: info.ModTime(),
		}

		mutex.Lock()
		paths = append(paths, foundPath)
		size += uint64(info.Size())
		mutex.Unlock()

		return nil
	}

	err := fastwalk.Walk(&conf, folder, walkFn)
	if err != nil {
		log.WithError(err).Errorf("Failed to walk directory %s", folder)
	}

	return paths, size
}

// IsIgnored checks if a path is in the provided ignore list
func IsIgnored(path string, ignoreList []string) bool {
	return slices.ContainsFunc(ignoreList, func(s string) bool {
		return strings.HasPrefix(path, s)
	})
}
