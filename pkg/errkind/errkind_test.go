package errkind

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectRead      bool
		expectMalformed bool
		expectMissing   bool
		expectMkdir     bool
		expectMessage   string
	}{
		{
			name:          "plain error",
			err:           fmt.Errorf("nope"),
			expectMessage: "nope",
		},
		{
			name:          "wrapped manifest read",
			err:           errors.Wrap(ManifestReadError{Path: "m.json", Err: fmt.Errorf("eof")}, "load manifest"),
			expectRead:    true,
			expectMessage: "load manifest: read manifest m.json: eof",
		},
		{
			name:            "malformed with path",
			err:             MalformedManifest{Path: "src/a.txt", Reason: "file node has children"},
			expectMalformed: true,
			expectMessage:   `malformed manifest at "src/a.txt": file node has children`,
		},
		{
			name:            "malformed without path",
			err:             errors.Wrap(MalformedManifest{Reason: "not an array"}, "decode"),
			expectMalformed: true,
			expectMessage:   "decode: malformed manifest: not an array",
		},
		{
			name:          "missing source",
			err:           MissingSourceFile{Name: "a.txt", Dest: "out/src/a.txt"},
			expectMissing: true,
			expectMessage: "missing source file a.txt for out/src/a.txt",
		},
		{
			name:          "mkdir",
			err:           errors.Wrapf(DirectoryCreateError{Path: "out/src", Err: fmt.Errorf("permission denied")}, "folder %s", "src"),
			expectMkdir:   true,
			expectMessage: "folder src: create directory out/src: permission denied",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(test.expectRead, IsManifestRead(test.err))
			req.Equal(test.expectMalformed, IsMalformedManifest(test.err))
			req.Equal(test.expectMissing, IsMissingSourceFile(test.err))
			req.Equal(test.expectMkdir, IsDirectoryCreate(test.err))
			req.Equal(test.expectMessage, test.err.Error())
		})
	}
}
