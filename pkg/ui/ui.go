package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/cli"
	"github.com/spf13/viper"
)

// FromViper builds the console Ui, used with dig
func FromViper(v *viper.Viper) cli.Ui {
	return New(v, os.Stdout, os.Stderr)
}

// New writes output and info to w and warnings and errors to errW.
// Colors are on unless --no-color is set or w is not a terminal; --force-color wins over both.
func New(v *viper.Viper, w io.Writer, errW io.Writer) cli.Ui {
	base := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      w,
		ErrorWriter: errW,
	}

	if !v.GetBool("force-color") && (v.GetBool("no-color") || !isTerminal(w)) {
		return base
	}

	return &cli.ColoredUi{
		OutputColor: cli.UiColorNone,
		ErrorColor:  cli.UiColorRed,
		WarnColor:   cli.UiColorYellow,
		InfoColor:   cli.UiColorGreen,
		Ui:          base,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
