package logger

import (
	"fmt"
	"io"
	golog "log"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-stack/stack"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/replicatedhq/treeship/pkg/constants"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

type compositeLogger struct {
	loggers []log.Logger
}

func (c *compositeLogger) Log(keyvals ...interface{}) error {
	var multiErr *multierror.Error
	for _, logger := range c.loggers {
		multiErr = multierror.Append(multiErr, logger.Log(keyvals...))
	}
	return multiErr.ErrorOrNil()
}

// FromViper builds a logger from env using viper, used with dig
func FromViper(v *viper.Viper) log.Logger {
	return New(v, afero.Afero{Fs: afero.NewOsFs()}, os.Stderr)
}

// New logs to w at --log-level. When --debug-log is set, every debug line is
// also written to that file, whatever the level on w.
func New(v *viper.Viper, fs afero.Afero, w io.Writer) log.Logger {
	fullPathCaller := pathCaller(6)

	var mainLogger log.Logger //nolint:gosimple
	mainLogger = withFormat(v.GetString("log-format"), w)
	mainLogger = log.With(mainLogger, "ts", log.DefaultTimestampUTC)
	mainLogger = log.With(mainLogger, "caller", fullPathCaller)
	mainLogger = withLevel(mainLogger, v.GetString("log-level"))

	debugLogFile := v.GetString(constants.DebugLogFlag)
	if debugLogFile == "" {
		golog.SetOutput(log.NewStdlibAdapter(level.Debug(mainLogger)))
		return mainLogger
	}

	debugLogWriter, err := fs.Create(debugLogFile)
	if err != nil {
		level.Warn(mainLogger).Log("msg", "failed to initialize debug log file", "path", debugLogFile, "error", err)
		golog.SetOutput(log.NewStdlibAdapter(level.Debug(mainLogger)))
		return mainLogger
	}

	var debugLogger log.Logger
	debugLogger = withFormat(v.GetString("log-format"), debugLogWriter)
	debugLogger = log.With(debugLogger, "ts", log.DefaultTimestampUTC)
	debugLogger = log.With(debugLogger, "caller", fullPathCaller)
	debugLogger = withLevel(debugLogger, "debug")

	realLogger := &compositeLogger{
		loggers: []log.Logger{
			mainLogger,
			debugLogger,
		},
	}

	golog.SetOutput(log.NewStdlibAdapter(level.Debug(realLogger)))
	return realLogger
}

func withFormat(format string, w io.Writer) log.Logger {
	switch format {
	case "json":
		return log.NewJSONLogger(w)
	case "logfmt":
		return log.NewLogfmtLogger(w)
	default:
		return log.NewLogfmtLogger(w)
	}
}

func withLevel(logger log.Logger, lvl string) log.Logger {
	switch lvl {
	case "debug":
		return level.NewFilter(logger, level.AllowDebug())
	case "info":
		return level.NewFilter(logger, level.AllowInfo())
	case "warn":
		return level.NewFilter(logger, level.AllowWarn())
	case "error":
		return level.NewFilter(logger, level.AllowError())
	case "off", "":
		return level.NewFilter(logger, level.AllowNone())
	default:
		logger.Log("msg", "Unknown log level, using debug", "received", lvl)
		return level.NewFilter(logger, level.AllowDebug())
	}
}

func pathCaller(depth int) log.Valuer {
	return func() interface{} {
		return fmt.Sprintf("%+s", stack.Caller(depth))
	}
}
