package manifest

import (
	"fmt"
	"strings"

	"github.com/replicatedhq/treeship/pkg/errkind"
	"github.com/replicatedhq/treeship/pkg/nameset"
)

// WalkFunc is called for every node in pre-order. parents holds the names of
// the enclosing folders, outermost first, and must not be retained.
// Returning an error stops the walk.
type WalkFunc func(n *Node, parents []string) error

// Walk visits the manifest depth first, folders before their children.
// Nodes built by hand are checked with the same rules Decode applies, and a
// node that shows up again below itself is reported as a cycle.
func Walk(m Manifest, fn WalkFunc) error {
	onPath := map[*Node]bool{}
	return walkForest(m, nil, onPath, fn)
}

func walkForest(nodes []*Node, parents []string, onPath map[*Node]bool, fn WalkFunc) error {
	for i, n := range nodes {
		if err := walkNode(n, i, parents, onPath, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkNode(n *Node, index int, parents []string, onPath map[*Node]bool, fn WalkFunc) error {
	if err := check(n, index, parents); err != nil {
		return err
	}
	if onPath[n] {
		return errkind.MalformedManifest{Path: PathOf(parents, n.Name), Reason: "cycle: folder contains itself"}
	}

	if err := fn(n, parents); err != nil {
		return err
	}
	if !n.IsFolder() {
		return nil
	}

	onPath[n] = true
	defer delete(onPath, n)

	// full slice expression so siblings never share a backing array
	below := append(parents[:len(parents):len(parents)], n.Name)
	return walkForest(n.Children, below, onPath, fn)
}

func check(n *Node, index int, parents []string) error {
	if n == nil {
		return errkind.MalformedManifest{Path: PathOf(parents, fmt.Sprintf("[%d]", index)), Reason: "node is null"}
	}
	if n.Name == "" {
		return errkind.MalformedManifest{Path: PathOf(parents, fmt.Sprintf("[%d]", index)), Reason: "missing name"}
	}

	where := PathOf(parents, n.Name)
	switch n.Type {
	case KindFile:
		if len(n.Children) != 0 {
			return errkind.MalformedManifest{Path: where, Reason: "file node has children"}
		}
	case KindFolder:
		if n.Children == nil {
			return errkind.MalformedManifest{Path: where, Reason: "folder node without children"}
		}
	case "":
		return errkind.MalformedManifest{Path: where, Reason: "missing type"}
	default:
		return errkind.MalformedManifest{Path: where, Reason: fmt.Sprintf("unknown type %q", n.Type)}
	}
	return nil
}

// Index returns the distinct file names reachable from the manifest.
// Folder names are not included and a name used in several folders appears once.
func Index(m Manifest) (nameset.Set, error) {
	files := nameset.New()
	err := Walk(m, func(n *Node, _ []string) error {
		if n.Type == KindFile {
			files.Add(n.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// PathOf joins folder names and a leaf name with slashes, without cleaning
func PathOf(parents []string, name string) string {
	if len(parents) == 0 {
		return name
	}
	return strings.Join(parents, "/") + "/" + name
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
