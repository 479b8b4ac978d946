package constants

const (
	// ManifestFlag is the path to the manifest json
	ManifestFlag = "manifest"
	// SourceDirFlag is the flat directory holding downloaded files
	SourceDirFlag = "source-dir"
	// TargetDirFlag is the directory to materialize the tree into
	TargetDirFlag = "target-dir"
	// ExcludePrefixFlag lists name prefixes left out of the flat file set
	ExcludePrefixFlag = "exclude-prefix"
	// ExcludeNameFlag lists exact names left out of the flat file set
	ExcludeNameFlag = "exclude-name"
	// StrictFlag makes the audit exit non-zero when the sets differ
	StrictFlag = "strict"
	// OutputFlag selects the audit report format
	OutputFlag = "output"
	// DryRunFlag runs materialize against an in-memory overlay
	DryRunFlag = "dry-run"
	// OpenFlag opens the target dir in the file manager after materialize
	OpenFlag = "open"
	// DebugLogFlag is an optional file that receives debug level logs regardless of --log-level
	DebugLogFlag = "debug-log"
	// NoOSExitFlag keeps the process alive after a failed run, used by tests
	NoOSExitFlag = "no-os-exit"
)
