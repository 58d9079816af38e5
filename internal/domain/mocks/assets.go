package mocks

import "path"

// AssetRegistry is a mock implementation of ports.AssetRegistry.
// Files maps bucket name to the file names it contains.
type AssetRegistry struct {
	Files   map[string][]string
	BaseURL string

	LookupCallCount int
}

// Lookup returns BaseURL/bucket/fileName when the file is registered.
func (m *AssetRegistry) Lookup(bucket, fileName string) (string, bool) {
	m.LookupCallCount++
	for _, f := range m.Files[bucket] {
		if f == fileName {
			return path.Join(m.BaseURL, bucket, fileName), true
		}
	}
	return "", false
}
