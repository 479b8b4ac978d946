package treeship

import (
	"context"
	"fmt"
	"os"

	"github.com/go-kit/kit/log/level"
	"github.com/replicatedhq/treeship/pkg/constants"
	"github.com/replicatedhq/treeship/pkg/util/warnings"
)

// AuditAndMaybeExit runs Audit and exits through ExitWithError when it fails
func (t *Treeship) AuditAndMaybeExit(ctx context.Context) error {
	if err := t.Audit(ctx); err != nil {
		t.ExitWithError(err)
		return err
	}
	return nil
}

// MaterializeAndMaybeExit runs Materialize and exits through ExitWithError when it fails
func (t *Treeship) MaterializeAndMaybeExit(ctx context.Context) error {
	if err := t.Materialize(ctx); err != nil {
		t.ExitWithError(err)
		return err
	}
	return nil
}

// ExitWithError can be called if something goes wrong to print some friendly output
func (t *Treeship) ExitWithError(err error) {
	if warnings.IsWarning(err) {
		t.ExitWithWarn(err)
		return
	}

	if t.Viper.GetString("log-level") == "debug" {
		t.UI.Error(fmt.Sprintf("There was an unexpected error! %+v", err))
	} else {
		t.UI.Error(fmt.Sprintf("There was an unexpected error! %v", err))
	}
	level.Warn(t.Logger).Log("event", "exit.withErr", "errorWithStack", fmt.Sprintf("%+v", err))
	t.UI.Output("")
	t.preserveDebugLogsOrRequestReRun()

	t.exit(1)
}

// ExitWithWarn prints the warning without the unexpected error banner
func (t *Treeship) ExitWithWarn(err error) {
	t.UI.Warn(warnings.StripStackIfWarning(err).Error())
	t.exit(1)
}

func (t *Treeship) exit(code int) {
	if !t.Viper.GetBool(constants.NoOSExitFlag) {
		os.Exit(code)
	}
}

func (t *Treeship) preserveDebugLogsOrRequestReRun() {
	debugLogFile := t.Viper.GetString(constants.DebugLogFlag)
	if debugLogFile == "" {
		t.UI.Info(constants.ReRunWithDebug)
		return
	}
	if exists, err := t.FS.Exists(debugLogFile); err != nil || !exists {
		t.UI.Info(constants.ReRunWithDebug)
		return
	}
	t.UI.Info(fmt.Sprintf(
		"A debug log has been written to %q, please include it in any support inquiries.",
		debugLogFile,
	))
}
