package audit

import (
	"github.com/replicatedhq/treeship/pkg/nameset"
)

// ComparisonResult splits the union of manifest and disk names into three disjoint sets
type ComparisonResult struct {
	Both         nameset.Set
	DiskOnly     nameset.Set
	ManifestOnly nameset.Set
}

// Audit compares the file names a manifest references with the names found on disk
func Audit(manifestFiles, diskFiles nameset.Set) ComparisonResult {
	if manifestFiles == nil {
		manifestFiles = nameset.New()
	}
	if diskFiles == nil {
		diskFiles = nameset.New()
	}

	return ComparisonResult{
		Both:         manifestFiles.Intersect(diskFiles),
		DiskOnly:     diskFiles.Minus(manifestFiles),
		ManifestOnly: manifestFiles.Minus(diskFiles),
	}
}

// InSync is true when every manifest file was found and nothing extra was downloaded
func (r ComparisonResult) InSync() bool {
	return r.DiskOnly.Len() == 0 && r.ManifestOnly.Len() == 0
}
