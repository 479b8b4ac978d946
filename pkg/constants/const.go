package constants

// DefaultManifestPrefix is the name prefix of manifest files saved next to the
// flat downloads. Files carrying it are never part of the flat file set.
const DefaultManifestPrefix = "vibe.powerapps."

// LatestManifestSuffix is appended to the manifest prefix to name the manifest
// preferred by discovery
const LatestManifestSuffix = "latest.json"

// ManifestExtension is the extension every discoverable manifest carries
const ManifestExtension = ".json"

// DefaultExcludedNames are platform metadata entries that never count as
// downloaded files
var DefaultExcludedNames = []string{".DS_Store", "Thumbs.db", "desktop.ini"}
