package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/replicatedhq/treeship/pkg/errkind"
)

// rawNode keeps every field optional so a missing key can be told apart
// from an empty one
type rawNode struct {
	Type     *string     `json:"type"`
	Name     *string     `json:"name"`
	Children *[]*rawNode `json:"children"`
}

// Decode parses manifest json. Syntax errors come back as ManifestReadError,
// schema violations as MalformedManifest naming the offending node.
// A "children": null on a file is treated as absent.
func Decode(data []byte) (Manifest, error) {
	if !json.Valid(data) {
		var discard interface{}
		err := json.Unmarshal(data, &discard)
		if err == nil {
			err = fmt.Errorf("invalid json")
		}
		return nil, errkind.ManifestReadError{Err: err}
	}

	var raw []*rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok && typeErr.Field != "" {
			return nil, errkind.MalformedManifest{
				Path:   typeErr.Field,
				Reason: fmt.Sprintf("expected %s, found json %s", typeErr.Type, typeErr.Value),
			}
		}
		return nil, errkind.MalformedManifest{Reason: "manifest must be a json array of nodes"}
	}
	if raw == nil {
		return nil, errkind.MalformedManifest{Reason: "manifest must be a json array of nodes"}
	}

	return buildForest(raw, "")
}

func buildForest(raw []*rawNode, parent string) ([]*Node, error) {
	nodes := make([]*Node, 0, len(raw))
	for i, r := range raw {
		node, err := buildNode(r, parent, i)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func buildNode(r *rawNode, parent string, index int) (*Node, error) {
	where := joinPath(parent, fmt.Sprintf("[%d]", index))
	if r == nil {
		return nil, errkind.MalformedManifest{Path: where, Reason: "node is null"}
	}
	if r.Name == nil || *r.Name == "" {
		return nil, errkind.MalformedManifest{Path: where, Reason: "missing name"}
	}
	where = joinPath(parent, *r.Name)

	if r.Type == nil {
		return nil, errkind.MalformedManifest{Path: where, Reason: "missing type"}
	}

	switch Kind(*r.Type) {
	case KindFile:
		if r.Children != nil {
			return nil, errkind.MalformedManifest{Path: where, Reason: "file node has children"}
		}
		return File(*r.Name), nil

	case KindFolder:
		if r.Children == nil {
			return nil, errkind.MalformedManifest{Path: where, Reason: "folder node without children"}
		}
		children, err := buildForest(*r.Children, where)
		if err != nil {
			return nil, err
		}
		return Folder(*r.Name, children...), nil

	default:
		return nil, errkind.MalformedManifest{Path: where, Reason: fmt.Sprintf("unknown type %q", *r.Type)}
	}
}
