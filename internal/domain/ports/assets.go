package ports

// AssetRegistry is a read-only snapshot of the locally available image files,
// grouped into buckets (one per category path, e.g. "gods").
type AssetRegistry interface {
	// Lookup returns the URL of fileName within bucket, if present.
	Lookup(bucket, fileName string) (string, bool)
}
