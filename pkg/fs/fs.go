package fs

import (
	"github.com/replicatedhq/treeship/pkg/constants"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// NewBaseFilesystem creates a new Afero OS filesystem
func NewBaseFilesystem() afero.Afero {
	return afero.Afero{Fs: afero.NewOsFs()}
}

// NewDryRunFilesystem reads through to base and keeps every write in memory
func NewDryRunFilesystem(base afero.Afero) afero.Afero {
	return afero.Afero{
		Fs: afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(base.Fs), afero.NewMemMapFs()),
	}
}

// FromViper returns the filesystem a run should write through, used with dig
func FromViper(v *viper.Viper) afero.Afero {
	base := NewBaseFilesystem()
	if v.GetBool(constants.DryRunFlag) {
		return NewDryRunFilesystem(base)
	}
	return base
}
