package treeship

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"github.com/replicatedhq/treeship/pkg/audit"
	"github.com/replicatedhq/treeship/pkg/constants"
	"github.com/replicatedhq/treeship/pkg/flatdir"
	"github.com/replicatedhq/treeship/pkg/manifest"
	"github.com/replicatedhq/treeship/pkg/materialize"
	"github.com/replicatedhq/treeship/pkg/util/warnings"
	"github.com/replicatedhq/treeship/pkg/version"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Treeship runs the audit and materialize operations against one source directory
type Treeship struct {
	Viper  *viper.Viper
	Logger log.Logger
	UI     cli.Ui
	FS     afero.Afero

	Policy       flatdir.ExcludePolicy
	Loader       manifest.Loader
	Scanner      flatdir.Scanner
	Materializer *materialize.Materializer

	// Open shows a directory in the desktop file manager
	Open func(input string) error
}

// NewTreeship gets an instance, used with dig
func NewTreeship(
	v *viper.Viper,
	logger log.Logger,
	ui cli.Ui,
	fs afero.Afero,
	policy flatdir.ExcludePolicy,
	loader manifest.Loader,
	scanner flatdir.Scanner,
	materializer *materialize.Materializer,
) *Treeship {
	return &Treeship{
		Viper:        v,
		Logger:       logger,
		UI:           ui,
		FS:           fs,
		Policy:       policy,
		Loader:       loader,
		Scanner:      scanner,
		Materializer: materializer,
		Open:         open.Start,
	}
}

// Audit compares the files named by the manifest with the files in the source directory
// and prints the report. With --strict, any difference is returned as a warning.
func (t *Treeship) Audit(ctx context.Context) error {
	debug := level.Debug(log.With(t.Logger, "method", "audit"))
	t.logBuild(debug)

	sourceDir := t.Viper.GetString(constants.SourceDirFlag)
	tree, err := t.loadManifest(sourceDir)
	if err != nil {
		return err
	}

	manifestFiles, err := manifest.Index(tree)
	if err != nil {
		return errors.Wrap(err, "index manifest")
	}

	debug.Log("event", "source.scan", "dir", sourceDir)
	diskFiles, err := t.Scanner.Scan(sourceDir)
	if err != nil {
		return errors.Wrap(err, "scan source dir")
	}

	result := audit.Audit(manifestFiles, diskFiles)
	debug.Log("event", "audit.complete",
		"both", result.Both.Len(),
		"diskOnly", result.DiskOnly.Len(),
		"manifestOnly", result.ManifestOnly.Len(),
	)

	out, err := audit.Render(result, t.Viper.GetString(constants.OutputFlag))
	if err != nil {
		return errors.Wrap(err, "render report")
	}
	t.UI.Output(out)

	if t.Viper.GetBool(constants.StrictFlag) && !result.InSync() {
		return warnings.New(
			"manifest and source dir differ: %d file(s) not in manifest, %d file(s) not in source dir",
			result.DiskOnly.Len(), result.ManifestOnly.Len(),
		)
	}
	return nil
}

// Materialize rebuilds the manifest's folder tree under the target directory and prints
// one line per event. Missing and unused files are reported but do not fail the run.
func (t *Treeship) Materialize(ctx context.Context) error {
	debug := level.Debug(log.With(t.Logger, "method", "materialize"))
	t.logBuild(debug)

	sourceDir := t.Viper.GetString(constants.SourceDirFlag)
	targetDir := t.Viper.GetString(constants.TargetDirFlag)
	dryRun := t.Viper.GetBool(constants.DryRunFlag)

	tree, err := t.loadManifest(sourceDir)
	if err != nil {
		return err
	}

	debug.Log("event", "materialize.start", "source", sourceDir, "target", targetDir, "dryRun", dryRun)
	report, err := t.Materializer.Materialize(ctx, tree, sourceDir, targetDir)
	if err != nil {
		return err
	}

	for _, event := range report.Events {
		switch event.Kind {
		case materialize.FileMissing:
			t.UI.Warn(event.String())
		case materialize.CopyFailed:
			t.UI.Error(event.String())
		default:
			t.UI.Output(event.String())
		}
	}

	t.UI.Output("")
	if dryRun {
		t.UI.Info(fmt.Sprintf("Dry run complete, nothing was written to %s", targetDir))
	} else {
		t.UI.Info(fmt.Sprintf("Project reconstructed in: %s", targetDir))
	}

	if diagnostics := report.Diagnostics(); diagnostics != nil {
		level.Warn(t.Logger).Log("event", "materialize.diagnostics", "err", diagnostics)
		t.UI.Warn(fmt.Sprintf("Warning: %s", strings.TrimSpace(diagnostics.Error())))
	}
	if len(report.Unused) > 0 {
		t.UI.Warn(fmt.Sprintf("Warning: %d file(s) were not in the manifest:", len(report.Unused)))
		for _, name := range report.Unused {
			t.UI.Warn(fmt.Sprintf("  - %s", name))
		}
	}
	if report.Complete() {
		t.UI.Info("All source files were successfully processed")
	}

	if t.Viper.GetBool(constants.OpenFlag) && !dryRun {
		t.openTarget(targetDir)
	}

	debug.Log("event", "materialize.complete",
		"copied", report.Count(materialize.FileCopied),
		"missing", len(report.Missing),
		"failed", len(report.Failed),
		"unused", len(report.Unused),
	)
	return nil
}

func (t *Treeship) openTarget(targetDir string) {
	if err := t.Open(targetDir); err != nil {
		level.Warn(t.Logger).Log("event", "target.open.fail", "target", targetDir, "err", err)
		t.UI.Warn(fmt.Sprintf("Could not open %s: %v", targetDir, err))
	}
}

func (t *Treeship) loadManifest(sourceDir string) (manifest.Manifest, error) {
	debug := level.Debug(log.With(t.Logger, "method", "loadManifest"))

	path := t.Viper.GetString(constants.ManifestFlag)
	if path == "" {
		prefix := t.Policy.ManifestPrefix()
		debug.Log("event", "manifest.discover", "dir", sourceDir, "prefix", prefix)
		found, err := t.Loader.Discover(sourceDir, prefix)
		if err != nil {
			return nil, err
		}
		path = found
		if t.Viper.GetString(constants.OutputFlag) != audit.FormatJSON {
			t.UI.Info(fmt.Sprintf("Using manifest %s", path))
		}
	}

	debug.Log("event", "manifest.load", "path", path)
	return t.Loader.Load(path)
}

func (t *Treeship) logBuild(debug log.Logger) {
	debug.Log("phase", "initialize",
		"version", version.Version(),
		"gitSHA", version.GitSHA(),
		"buildTime", version.BuildTime(),
		"buildTimeFallback", version.GetBuild().TimeFallback,
	)
}
