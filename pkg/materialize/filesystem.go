package materialize

import (
	"io"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Filesystem is everything the materializer does to disk
type Filesystem interface {
	Stat(path string) (os.FileInfo, error)
	// MkdirAll succeeds when path already is a directory
	MkdirAll(path string) error
	// Copy overwrites dst with the contents of src and returns the bytes written
	Copy(src, dst string) (int64, error)
}

var _ Filesystem = &AferoFilesystem{}

type AferoFilesystem struct {
	Logger  log.Logger
	FS      afero.Afero
	DirPerm os.FileMode
}

// NewFilesystem builds an AferoFilesystem, used with dig
func NewFilesystem(logger log.Logger, fs afero.Afero) Filesystem {
	return &AferoFilesystem{
		Logger:  logger,
		FS:      fs,
		DirPerm: 0755,
	}
}

func (a *AferoFilesystem) Stat(path string) (os.FileInfo, error) {
	return a.FS.Stat(path)
}

func (a *AferoFilesystem) MkdirAll(path string) error {
	info, err := a.FS.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return errors.Errorf("%s exists and is not a directory", path)
	case !os.IsNotExist(err):
		return errors.Wrapf(err, "stat %s", path)
	}

	if err := a.FS.MkdirAll(path, a.DirPerm); err != nil {
		return errors.Wrapf(err, "mkdir %s", path)
	}
	return nil
}

// Copy keeps the source mode and modification time when the filesystem lets it.
// Failing to carry them over is logged, not returned.
func (a *AferoFilesystem) Copy(src, dst string) (int64, error) {
	debug := level.Debug(log.With(a.Logger, "method", "filesystem.copy", "src", src, "dst", dst))

	in, err := a.FS.Open(src)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", src)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, errors.Wrapf(err, "stat %s", src)
	}
	if info.IsDir() {
		return 0, errors.Errorf("%s is a directory", src)
	}

	out, err := a.FS.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, errors.Wrapf(err, "create %s", dst)
	}

	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return written, errors.Wrapf(err, "copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		return written, errors.Wrapf(err, "close %s", dst)
	}

	if err := a.FS.Chmod(dst, info.Mode().Perm()); err != nil {
		debug.Log("event", "chmod.fail", "err", err)
	}
	if err := a.FS.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		debug.Log("event", "chtimes.fail", "err", err)
	}

	return written, nil
}
