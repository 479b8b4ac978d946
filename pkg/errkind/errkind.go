// Package errkind holds the error kinds a treeship run can end with.
// Callers wrap them freely with github.com/pkg/errors; the Is* helpers
// unwrap with errors.Cause before checking the kind.
package errkind

import (
	"fmt"

	"github.com/pkg/errors"
)

// ManifestReadError means the manifest could not be read or is not valid json.
type ManifestReadError struct {
	Path string
	Err  error
}

func (e ManifestReadError) Error() string {
	return fmt.Sprintf("read manifest %s: %v", e.Path, e.Err)
}

// MalformedManifest means a node does not follow the manifest schema.
// Path is the slash separated location of the node inside the manifest.
type MalformedManifest struct {
	Path   string
	Reason string
}

func (e MalformedManifest) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed manifest: %s", e.Reason)
	}
	return fmt.Sprintf("malformed manifest at %q: %s", e.Path, e.Reason)
}

// MissingSourceFile is recorded when a file node has no counterpart in the
// source directory. It never aborts a run.
type MissingSourceFile struct {
	Name string
	Dest string
}

func (e MissingSourceFile) Error() string {
	return fmt.Sprintf("missing source file %s for %s", e.Name, e.Dest)
}

// DirectoryCreateError means a directory in the target tree could not be created.
type DirectoryCreateError struct {
	Path string
	Err  error
}

func (e DirectoryCreateError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Path, e.Err)
}

func IsManifestRead(err error) bool {
	_, ok := errors.Cause(err).(ManifestReadError)
	return ok
}

func IsMalformedManifest(err error) bool {
	_, ok := errors.Cause(err).(MalformedManifest)
	return ok
}

func IsMissingSourceFile(err error) bool {
	_, ok := errors.Cause(err).(MissingSourceFile)
	return ok
}

func IsDirectoryCreate(err error) bool {
	_, ok := errors.Cause(err).(DirectoryCreateError)
	return ok
}
