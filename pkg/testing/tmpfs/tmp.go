// Package tmpfs hands out real os-backed directories for tests that need
// behaviour a mem map fs does not model, such as permissions and copy mtimes.
package tmpfs

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func Tmpdir(t *testing.T) (string, func()) {
	req := require.New(t)
	d, err := ioutil.TempDir("", "treeship")
	req.NoError(err)

	return d, func() {
		os.RemoveAll(d)
	}
}

// Tmpfs is an os filesystem rooted at a fresh temp dir, so "/" in the test is the temp dir
func Tmpfs(t *testing.T) (afero.Afero, func()) {
	dir, cleanup := Tmpdir(t)
	fs := afero.Afero{
		Fs: afero.NewBasePathFs(afero.NewOsFs(), dir),
	}
	return fs, cleanup
}
