package warnings

import (
	"fmt"

	"github.com/pkg/errors"
)

// a warning ends a run with a non-zero exit but is shown to the user without
// the "unexpected error" framing or a stack
type warning struct {
	msg string
}

func (w warning) Error() string {
	return w.msg
}

// New builds a warning from a format string
func New(format string, args ...interface{}) error {
	return warning{msg: fmt.Sprintf(format, args...)}
}

func IsWarning(err error) bool {
	_, ok := errors.Cause(err).(warning)
	return ok
}

// StripStackIfWarning drops any wrapping context from a warning so only its
// message is printed. Other errors are returned unchanged.
func StripStackIfWarning(err error) error {
	if err == nil || !IsWarning(err) {
		return err
	}
	return errors.Cause(err)
}
