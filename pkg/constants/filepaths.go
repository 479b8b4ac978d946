package constants

const (
	// DefaultSourceDir is the flat download directory used when --source-dir is not set
	DefaultSourceDir = "DOWNLOADED_SOURCE_FILES"
	// DefaultTargetDir is the directory the tree is materialized into when --target-dir is not set
	DefaultTargetDir = "GENERATED_SOURCE_CODE_STRUCTURE"
)
