// Package assets builds the read-only image registry from a directory with
// one subdirectory per bucket (gods/, heroes/, ...).
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Pattern selects the image files of every bucket.
const Pattern = "*/*.{webp,png,jpg,jpeg}"

// Registry is an immutable snapshot of the asset files found at scan time.
// It implements ports.AssetRegistry.
type Registry struct {
	root      string
	urlPrefix string
	buckets   map[string]map[string]struct{}
}

// Scan enumerates dir once. A missing dir yields an empty registry.
// When urlPrefix is set, asset URLs are <prefix>/<bucket>/<file>; otherwise
// they are file paths under dir.
func Scan(dir, urlPrefix string) (*Registry, error) {
	r := &Registry{
		root:      dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		buckets:   make(map[string]map[string]struct{}),
	}

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading assets directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets path is not a directory: %s", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("scanning assets: %w", err)
	}

	for _, m := range matches {
		bucket, file := path.Split(m)
		bucket = strings.TrimSuffix(bucket, "/")
		if r.buckets[bucket] == nil {
			r.buckets[bucket] = make(map[string]struct{})
		}
		r.buckets[bucket][file] = struct{}{}
	}

	return r, nil
}

// Lookup returns the URL of fileName within bucket, if present.
func (r *Registry) Lookup(bucket, fileName string) (string, bool) {
	if _, ok := r.buckets[bucket][fileName]; !ok {
		return "", false
	}
	if r.urlPrefix != "" {
		return r.urlPrefix + "/" + bucket + "/" + fileName, true
	}
	return filepath.Join(r.root, bucket, fileName), true
}

// Buckets returns the bucket names in sorted order.
func (r *Registry) Buckets() []string {
	names := make([]string, 0, len(r.buckets))
	for b := range r.buckets {
		names = append(names, b)
	}
	sort.Strings(names)
	return names
}

// Files returns the file names of a bucket in sorted order.
func (r *Registry) Files(bucket string) []string {
	files := make([]string, 0, len(r.buckets[bucket]))
	for f := range r.buckets[bucket] {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Len returns the total number of registered files.
func (r *Registry) Len() int {
	n := 0
	for _, files := range r.buckets {
		n += len(files)
	}
	return n
}
