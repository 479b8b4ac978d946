package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/replicatedhq/treeship/pkg/errkind"
)

// ValidateNames checks that every name in the manifest is a single path
// segment, so that joining it under a target directory cannot escape it.
// Decode does not require this; only callers writing to disk do.
func ValidateNames(m Manifest) error {
	return Walk(m, func(n *Node, parents []string) error {
		if reason := nameProblem(n.Name); reason != "" {
			return errkind.MalformedManifest{Path: PathOf(parents, n.Name), Reason: reason}
		}
		return nil
	})
}

func nameProblem(name string) string {
	if name == "." || name == ".." {
		return fmt.Sprintf("name %q is not allowed", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return "name must not contain path separators"
	}
	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "name must not be an absolute path"
	}
	return ""
}
