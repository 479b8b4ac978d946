package treeship

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/replicatedhq/treeship/pkg/flatdir"
	"github.com/replicatedhq/treeship/pkg/fs"
	"github.com/replicatedhq/treeship/pkg/logger"
	"github.com/replicatedhq/treeship/pkg/manifest"
	"github.com/replicatedhq/treeship/pkg/materialize"
	"github.com/replicatedhq/treeship/pkg/ui"
	"github.com/spf13/viper"
	"go.uber.org/dig"
)

func buildInjector(v *viper.Viper) (*dig.Container, error) {
	providers := []interface{}{
		func() *viper.Viper { return v },
		logger.FromViper,
		ui.FromViper,
		fs.FromViper,

		flatdir.PolicyFromViper,
		flatdir.NewScanner,
		manifest.NewLoader,

		materialize.NewFilesystem,
		materialize.NewMaterializer,

		NewTreeship,
	}

	container := dig.New()

	for _, provider := range providers {
		err := container.Provide(provider)
		if err != nil {
			return nil, errors.Wrap(err, "register providers")
		}
	}

	return container, nil
}

// Get builds a Treeship from v with all of its collaborators wired.
// The logger comes out of the container so a --debug-log file is opened once.
func Get(v *viper.Viper) (*Treeship, error) {
	injector, err := buildInjector(v)
	if err != nil {
		return nil, errors.Wrap(err, "build injector")
	}

	var treeship *Treeship

	// we return nil below , so the error will only ever be a construction error
	errorWhenConstructing := injector.Invoke(func(logger log.Logger, t *Treeship) {
		debug := log.With(level.Debug(logger), "component", "injector", "phase", "instance.get")
		debug.Log("event", "injector.invoke.resolve")
		treeship = t
	})

	if errorWhenConstructing != nil {
		return nil, errors.Wrap(errorWhenConstructing, "resolve dependencies")
	}
	return treeship, nil
}
