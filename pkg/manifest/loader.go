package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/replicatedhq/treeship/pkg/constants"
	"github.com/replicatedhq/treeship/pkg/errkind"
	"github.com/spf13/afero"
)

// A Loader reads manifests from a filesystem
type Loader interface {
	Load(path string) (Manifest, error)
	// Discover finds the manifest saved alongside the flat downloads in dir
	Discover(dir string, prefix string) (string, error)
}

// NewLoader builds an aferoLoader, used with dig
func NewLoader(
	fs afero.Afero,
	logger log.Logger,
) Loader {
	return &aferoLoader{
		FS:     fs,
		Logger: logger,
	}
}

type aferoLoader struct {
	Logger log.Logger
	FS     afero.Afero
}

func (a *aferoLoader) Load(path string) (Manifest, error) {
	debug := level.Debug(log.With(a.Logger, "method", "manifest.load", "path", path))

	debug.Log("event", "manifest.read")
	contents, err := a.FS.ReadFile(path)
	if err != nil {
		return nil, errkind.ManifestReadError{Path: path, Err: err}
	}

	debug.Log("event", "manifest.decode", "bytes", len(contents))
	m, err := Decode(contents)
	if err != nil {
		if readErr, ok := err.(errkind.ManifestReadError); ok {
			readErr.Path = path
			return nil, readErr
		}
		return nil, errors.Wrapf(err, "decode manifest %s", path)
	}

	debug.Log("event", "manifest.decode.complete", "roots", len(m))
	return m, nil
}

// Discover prefers <prefix>latest.json and otherwise picks the most recently
// modified <prefix>*.json, ties broken by name.
func (a *aferoLoader) Discover(dir string, prefix string) (string, error) {
	debug := level.Debug(log.With(a.Logger, "method", "manifest.discover", "dir", dir, "prefix", prefix))

	latest := filepath.Join(dir, prefix+constants.LatestManifestSuffix)
	if info, err := a.FS.Stat(latest); err == nil && info.Mode().IsRegular() {
		debug.Log("event", "discover.latest", "path", latest)
		return latest, nil
	}

	files, err := a.FS.ReadDir(dir)
	if err != nil {
		return "", errkind.ManifestReadError{Path: dir, Err: errors.Wrap(err, "list source dir")}
	}

	var best os.FileInfo
	for _, file := range files {
		if !file.Mode().IsRegular() {
			continue
		}
		name := file.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, constants.ManifestExtension) {
			continue
		}
		if best == nil || file.ModTime().After(best.ModTime()) ||
			(file.ModTime().Equal(best.ModTime()) && name > best.Name()) {
			best = file
		}
	}

	if best == nil {
		return "", errkind.ManifestReadError{
			Path: dir,
			Err:  errors.Errorf("no manifest matching %s*%s found, pass --manifest", prefix, constants.ManifestExtension),
		}
	}

	found := filepath.Join(dir, best.Name())
	debug.Log("event", "discover.found", "path", found, "candidates", len(files))
	return found, nil
}
