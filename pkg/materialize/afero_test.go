package materialize

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-test/deep"
	"github.com/replicatedhq/treeship/pkg/errkind"
	"github.com/replicatedhq/treeship/pkg/flatdir"
	"github.com/replicatedhq/treeship/pkg/manifest"
	"github.com/replicatedhq/treeship/pkg/testing/tmpfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newAferoMaterializer(fs afero.Afero) *Materializer {
	logger := log.NewNopLogger()
	return NewMaterializer(
		logger,
		NewFilesystem(logger, fs),
		flatdir.NewScanner(fs, logger, flatdir.DefaultPolicy()),
	)
}

func writeSources(t *testing.T, fs afero.Afero, dir string, names ...string) {
	require.NoError(t, fs.MkdirAll(dir, 0755))
	for _, name := range names {
		require.NoError(t, fs.WriteFile(filepath.Join(dir, name), []byte("contents of "+name), 0644))
	}
}

// snapshot lists every path under root with the contents of files
func snapshot(t *testing.T, fs afero.Afero, root string) map[string]string {
	tree := map[string]string{}
	err := fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			tree[path+"/"] = ""
			return nil
		}
		contents, err := fs.ReadFile(path)
		if err != nil {
			return err
		}
		tree[path] = string(contents)
		return nil
	})
	require.NoError(t, err)
	return tree
}

func TestScenarioSourceHasExtraFile(t *testing.T) {
	req := require.New(t)
	fs := afero.Afero{Fs: afero.NewMemMapFs()}
	writeSources(t, fs, "downloads", "a.txt", "b.txt", "vibe.powerapps.latest.json")

	tree, err := manifest.Decode([]byte(`[{"type":"folder","name":"src","children":[{"type":"file","name":"a.txt"}]}]`))
	req.NoError(err)

	report, err := newAferoMaterializer(fs).Materialize(context.Background(), tree, "downloads", "target")
	req.NoError(err)

	contents, err := fs.ReadFile("target/src/a.txt")
	req.NoError(err)
	req.Equal("contents of a.txt", string(contents))

	req.Empty(report.Missing)
	req.Equal([]string{"b.txt"}, report.Unused)
	req.False(report.Complete())
}

func TestScenarioSourceMissesManifestFile(t *testing.T) {
	req := require.New(t)
	fs := afero.Afero{Fs: afero.NewMemMapFs()}
	writeSources(t, fs, "downloads", "b.txt")

	report, err := newAferoMaterializer(fs).Materialize(context.Background(), srcTree(), "downloads", "target")
	req.NoError(err)

	isDir, err := fs.IsDir("target/src")
	req.NoError(err)
	req.True(isDir)
	empty, err := fs.IsEmpty("target/src")
	req.NoError(err)
	req.True(empty)

	req.Len(report.Missing, 1)
	req.Equal("a.txt", report.Missing[0].Name)
	req.Equal("target/src/a.txt", report.Missing[0].Dest)
	req.Equal([]string{"b.txt"}, report.Unused)
	req.True(errkind.IsMissingSourceFile(report.Missing[0]))
	req.Contains(report.Diagnostics().Error(), "missing source file a.txt for target/src/a.txt")
}

func TestRoundTrip(t *testing.T) {
	req := require.New(t)
	fs := afero.Afero{Fs: afero.NewMemMapFs()}

	tree := manifest.Manifest{
		manifest.Folder("src",
			manifest.Folder("components", manifest.File("Button.tsx"), manifest.File("Card.tsx")),
			manifest.Folder("hooks"),
			manifest.File("main.tsx"),
		),
		manifest.File("package.json"),
	}
	files, err := manifest.Index(tree)
	req.NoError(err)
	writeSources(t, fs, "downloads", files.Sorted()...)

	report, err := newAferoMaterializer(fs).Materialize(context.Background(), tree, "downloads", "target")
	req.NoError(err)
	req.True(report.Complete())
	req.Empty(report.Missing)
	req.Empty(report.Unused)
	req.Equal(3, report.Count(FolderCreated))
	req.Equal(4, report.Count(FileCopied))

	diff := deep.Equal(snapshot(t, fs, "target"), map[string]string{
		"target/":                          "",
		"target/src/":                      "",
		"target/src/components/":           "",
		"target/src/components/Button.tsx": "contents of Button.tsx",
		"target/src/components/Card.tsx":   "contents of Card.tsx",
		"target/src/hooks/":                "",
		"target/src/main.tsx":              "contents of main.tsx",
		"target/package.json":              "contents of package.json",
	})
	req.Empty(diff, strings.Join(diff, "\n"))
}

func TestIdempotent(t *testing.T) {
	req := require.New(t)
	fs := afero.Afero{Fs: afero.NewMemMapFs()}
	writeSources(t, fs, "downloads", "a.txt", "c.txt")

	tree := manifest.Manifest{
		manifest.Folder("src", manifest.File("a.txt"), manifest.File("b.txt")),
	}
	m := newAferoMaterializer(fs)

	first, err := m.Materialize(context.Background(), tree, "downloads", "target")
	req.NoError(err)
	firstTree := snapshot(t, fs, "target")

	second, err := m.Materialize(context.Background(), tree, "downloads", "target")
	req.NoError(err)
	secondTree := snapshot(t, fs, "target")

	req.Empty(deep.Equal(firstTree, secondTree))
	req.Equal(first.Missing, second.Missing)
	req.Equal(first.Unused, second.Unused)
	req.Equal(len(first.Events), len(second.Events))
	for i := range first.Events {
		req.Equal(first.Events[i].String(), second.Events[i].String())
	}
}

func TestOverwritesExistingTarget(t *testing.T) {
	req := require.New(t)
	fs := afero.Afero{Fs: afero.NewMemMapFs()}
	writeSources(t, fs, "downloads", "a.txt")
	req.NoError(fs.MkdirAll("target/src", 0755))
	req.NoError(fs.WriteFile("target/src/a.txt", []byte("stale and much longer than the new contents"), 0644))

	_, err := newAferoMaterializer(fs).Materialize(context.Background(), srcTree(), "downloads", "target")
	req.NoError(err)

	contents, err := fs.ReadFile("target/src/a.txt")
	req.NoError(err)
	req.Equal("contents of a.txt", string(contents))
}

func TestFolderCollidesWithFile(t *testing.T) {
	req := require.New(t)
	fs := afero.Afero{Fs: afero.NewMemMapFs()}
	writeSources(t, fs, "downloads", "a.txt")
	req.NoError(fs.MkdirAll("target", 0755))
	req.NoError(fs.WriteFile("target/src", []byte("i am a file"), 0644))

	_, err := newAferoMaterializer(fs).Materialize(context.Background(), srcTree(), "downloads", "target")
	req.Error(err)
	req.True(errkind.IsDirectoryCreate(err))
	req.Contains(err.Error(), "target/src exists and is not a directory")
}

func TestCopyKeepsModeAndModTime(t *testing.T) {
	req := require.New(t)
	fs, cleanup := tmpfs.Tmpfs(t)
	defer cleanup()

	writeSources(t, fs, "downloads", "run.sh", "a.txt")
	req.NoError(fs.Chmod("downloads/run.sh", 0750))
	modTime := time.Date(2023, 11, 2, 8, 30, 0, 0, time.UTC)
	req.NoError(fs.Chtimes("downloads/run.sh", modTime, modTime))

	tree := manifest.Manifest{manifest.Folder("scripts", manifest.File("run.sh"))}
	report, err := newAferoMaterializer(fs).Materialize(context.Background(), tree, "downloads", "target")
	req.NoError(err)
	req.Equal([]string{"a.txt"}, report.Unused)

	info, err := fs.Stat("target/scripts/run.sh")
	req.NoError(err)
	req.Equal(os.FileMode(0750), info.Mode().Perm())
	req.True(modTime.Equal(info.ModTime()), "mod time %s", info.ModTime())

	source, err := fs.Stat("downloads/run.sh")
	req.NoError(err)
	req.True(modTime.Equal(source.ModTime()), "source must stay untouched")
}

func TestSourceDirIsReadOnly(t *testing.T) {
	req := require.New(t)
	base := afero.NewMemMapFs()
	fs := afero.Afero{Fs: base}
	writeSources(t, fs, "downloads", "a.txt", "b.txt")
	before := snapshot(t, fs, "downloads")

	_, err := newAferoMaterializer(fs).Materialize(context.Background(), srcTree(), "downloads", "target")
	req.NoError(err)

	after := snapshot(t, fs, "downloads")
	req.Empty(deep.Equal(before, after))

	var names []string
	for name := range after {
		names = append(names, name)
	}
	sort.Strings(names)
	req.Equal([]string{"downloads/", "downloads/a.txt", "downloads/b.txt"}, names)
}
