package manifest

import "encoding/json"

type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

// Node is one entry of a manifest: a file leaf or a folder with ordered children
type Node struct {
	Type     Kind    `json:"type" yaml:"type"`
	Name     string  `json:"name" yaml:"name"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Manifest is the top level forest of a manifest file
type Manifest []*Node

func File(name string) *Node {
	return &Node{Type: KindFile, Name: name}
}

func Folder(name string, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{Type: KindFolder, Name: name, Children: children}
}

func (n *Node) IsFolder() bool {
	return n.Type == KindFolder
}

// MarshalJSON always writes children for folders, an empty folder included,
// so that encoded manifests decode again.
func (n Node) MarshalJSON() ([]byte, error) {
	if n.Type != KindFolder {
		return json.Marshal(struct {
			Type Kind   `json:"type"`
			Name string `json:"name"`
		}{n.Type, n.Name})
	}

	children := n.Children
	if children == nil {
		children = []*Node{}
	}
	return json.Marshal(struct {
		Type     Kind    `json:"type"`
		Name     string  `json:"name"`
		Children []*Node `json:"children"`
	}{n.Type, n.Name, children})
}

// UnmarshalJSON decodes and validates the whole forest, see Decode
func (m *Manifest) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}
