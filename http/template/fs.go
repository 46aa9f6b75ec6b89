package template

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
)

// mergeFS implements fs.FS over a stack of layers.
type mergeFS struct {
	// Which layer last held a file.
	cache map[string]fs.FS

	layers []fs.FS

	sync.RWMutex
}

// Open opens the file matching the name using the following strategy:
//   - check the cache
//   - check each layer in order
//
// A cached layer no longer holding the file is dropped from the cache
// and the layers are searched again.
func (mfs *mergeFS) Open(name string) (fs.File, error) {
	mfs.RLock()
	cached, ok := mfs.cache[name]
	mfs.RUnlock()

	if ok {
		file, err := cached.Open(name)
		if err == nil {
			return file, nil
		}

		mfs.Lock()
		delete(mfs.cache, name)
		mfs.Unlock()
	}

	for _, layer := range mfs.layers {
		file, err := layer.Open(name)
		if err == nil {
			mfs.Lock()
			mfs.cache[name] = layer
			mfs.Unlock()

			return file, nil
		}

		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid) {
			return nil, fmt.Errorf("unable to open template: %w", err)
		}
	}

	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// Glob matches pattern against each layer, keeping the first of duplicate names.
func (mfs *mergeFS) Glob(pattern string) ([]string, error) {
	seen := make(map[string]bool)
	matches := make([]string, 0)
	for _, layer := range mfs.layers {
		found, err := fs.Glob(layer, pattern)
		if err != nil {
			return nil, err
		}

		for _, m := range found {
			if !seen[m] {
				seen[m] = true
				matches = append(matches, m)
			}
		}
	}

	return matches, nil
}
