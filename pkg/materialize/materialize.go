package materialize

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/replicatedhq/treeship/pkg/errkind"
	"github.com/replicatedhq/treeship/pkg/flatdir"
	"github.com/replicatedhq/treeship/pkg/manifest"
)

// Materializer rebuilds the folder tree of a manifest from a flat source directory
type Materializer struct {
	Logger  log.Logger
	FS      Filesystem
	Scanner flatdir.Scanner
}

// NewMaterializer builds a Materializer, used with dig
func NewMaterializer(
	logger log.Logger,
	fs Filesystem,
	scanner flatdir.Scanner,
) *Materializer {
	return &Materializer{
		Logger:  logger,
		FS:      fs,
		Scanner: scanner,
	}
}

// Materialize creates every folder of m under targetDir and copies each file
// node's namesake from sourceDir into place, overwriting what is there.
// A file missing from sourceDir or a failed copy is recorded in the report
// and the walk goes on. A manifest problem, an unreadable sourceDir or a
// directory that cannot be created ends the run with an error.
func (m *Materializer) Materialize(ctx context.Context, tree manifest.Manifest, sourceDir, targetDir string) (*Report, error) {
	debug := level.Debug(log.With(m.Logger, "method", "materialize", "source", sourceDir, "target", targetDir))

	debug.Log("event", "manifest.validate")
	if err := manifest.ValidateNames(tree); err != nil {
		return nil, errors.Wrap(err, "validate manifest")
	}

	debug.Log("event", "source.scan")
	sourceFiles, err := m.Scanner.Scan(sourceDir)
	if err != nil {
		return nil, errors.Wrap(err, "scan source dir")
	}

	debug.Log("event", "target.mkdir")
	if err := m.FS.MkdirAll(targetDir); err != nil {
		return nil, errkind.DirectoryCreateError{Path: targetDir, Err: err}
	}

	report := newReport(targetDir)
	err = manifest.Walk(tree, func(n *manifest.Node, parents []string) error {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "materialize interrupted")
		}

		dest := filepath.Join(targetDir, filepath.Join(parents...), n.Name)
		if n.IsFolder() {
			if err := m.FS.MkdirAll(dest); err != nil {
				return errkind.DirectoryCreateError{Path: dest, Err: err}
			}
			debug.Log("event", "folder.create", "dest", dest)
			report.folder(dest)
			return nil
		}

		m.placeFile(report, n.Name, filepath.Join(sourceDir, n.Name), dest)
		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Unused = sourceFiles.Minus(report.Used).Sorted()
	debug.Log(
		"event", "materialize.complete",
		"copied", report.Used.Len(),
		"missing", len(report.Missing),
		"failed", len(report.Failed),
		"unused", len(report.Unused),
	)
	return report, nil
}

func (m *Materializer) placeFile(report *Report, name, src, dest string) {
	debug := level.Debug(log.With(m.Logger, "method", "materialize.placeFile", "name", name))

	info, err := m.FS.Stat(src)
	switch {
	case err != nil && os.IsNotExist(err):
		debug.Log("event", "source.missing", "src", src)
		report.missing(name, dest)
		return
	case err != nil:
		report.failed(name, dest, errors.Wrapf(err, "stat %s", src))
		return
	case info.IsDir():
		debug.Log("event", "source.isDir", "src", src)
		report.missing(name, dest)
		return
	}

	written, err := m.FS.Copy(src, dest)
	if err != nil {
		level.Warn(m.Logger).Log("event", "copy.fail", "src", src, "dest", dest, "err", err)
		report.failed(name, dest, err)
		return
	}

	debug.Log("event", "copy", "src", src, "dest", dest, "bytes", written)
	report.copied(name, dest, written)
}
