package manifest

import (
	"encoding/json"
	"io/ioutil"
	"path"
	"testing"

	"github.com/replicatedhq/treeship/pkg/errkind"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type TestCase struct {
	Name        string   `yaml:"name"`
	Manifest    string   `yaml:"manifest"`
	ExpectFiles []string `yaml:"expectFiles"`
	ExpectKind  string   `yaml:"expectKind"`
	ExpectErr   string   `yaml:"expectErr"`
}

func loadTestCases(t *testing.T) []TestCase {
	contents, err := ioutil.ReadFile(path.Join("test-cases", "tests.yml"))
	require.NoError(t, err, "load test cases")

	var cases []TestCase
	err = yaml.Unmarshal(contents, &cases)
	require.NoError(t, err, "unmarshal test cases")
	require.NotEmpty(t, cases)

	return cases
}

func TestDecodeAndIndex(t *testing.T) {
	tests := loadTestCases(t)

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			req := require.New(t)

			m, err := Decode([]byte(test.Manifest))
			if test.ExpectErr != "" {
				req.Error(err)
				req.Regexp(test.ExpectErr, err.Error())
				switch test.ExpectKind {
				case "read":
					req.True(errkind.IsManifestRead(err), "expected ManifestReadError, got %T", err)
				case "malformed":
					req.True(errkind.IsMalformedManifest(err), "expected MalformedManifest, got %T", err)
				}
				return
			}
			req.NoError(err)

			files, err := Index(m)
			req.NoError(err)

			expect := test.ExpectFiles
			if expect == nil {
				expect = []string{}
			}
			req.Equal(expect, files.Sorted())
		})
	}
}

func TestManifestUnmarshalValidates(t *testing.T) {
	req := require.New(t)

	var m Manifest
	err := json.Unmarshal([]byte(`[{"type":"folder","name":"src","children":[{"type":"file","name":"a.txt"}]}]`), &m)
	req.NoError(err)
	req.Len(m, 1)
	req.Equal(KindFolder, m[0].Type)
	req.Equal("a.txt", m[0].Children[0].Name)

	err = json.Unmarshal([]byte(`[{"type":"folder","name":"src"}]`), &m)
	req.True(errkind.IsMalformedManifest(err))
}

func TestMarshalKeepsEmptyFolders(t *testing.T) {
	req := require.New(t)

	m := Manifest{
		Folder("src", File("a.txt"), Folder("empty")),
		File("README.md"),
	}

	out, err := json.Marshal(m)
	req.NoError(err)
	req.JSONEq(`[
		{"type":"folder","name":"src","children":[
			{"type":"file","name":"a.txt"},
			{"type":"folder","name":"empty","children":[]}
		]},
		{"type":"file","name":"README.md"}
	]`, string(out))

	again, err := Decode(out)
	req.NoError(err)
	req.Len(again[0].Children[1].Children, 0)
	req.NotNil(again[0].Children[1].Children)
}
