package flatdir

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/replicatedhq/treeship/pkg/nameset"
	"github.com/spf13/afero"
)

// A Scanner snapshots the names of the downloaded files in a flat directory
type Scanner interface {
	Scan(dir string) (nameset.Set, error)
}

// NewScanner builds an aferoScanner, used with dig
func NewScanner(
	fs afero.Afero,
	logger log.Logger,
	policy ExcludePolicy,
) Scanner {
	return &aferoScanner{
		FS:     fs,
		Logger: logger,
		Policy: policy,
	}
}

type aferoScanner struct {
	Logger log.Logger
	FS     afero.Afero
	Policy ExcludePolicy
}

// Scan lists the regular files directly inside dir. Subdirectories, symlinks
// and names matching the exclude policy are left out.
func (s *aferoScanner) Scan(dir string) (nameset.Set, error) {
	debug := level.Debug(log.With(s.Logger, "method", "flatdir.scan", "dir", dir))

	files, err := s.FS.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read source dir %q", dir)
	}

	found := nameset.New()
	for _, file := range files {
		switch {
		case file.IsDir():
			debug.Log("event", "dir.skip", "name", file.Name())
		case !file.Mode().IsRegular():
			// no thanks
			debug.Log("event", "irregular.skip", "name", file.Name(), "mode", file.Mode().String())
		case s.Policy.Excludes(file.Name()):
			debug.Log("event", "excluded.skip", "name", file.Name())
		default:
			found.Add(file.Name())
		}
	}

	debug.Log("event", "scan.complete", "entries", len(files), "files", found.Len())
	return found, nil
}
