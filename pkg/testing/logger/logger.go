package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
)

var _ log.Logger = &TestLogger{}

// TestLogger sends logfmt lines to the test log so they only show up for failing or -v runs
type TestLogger struct {
	T *testing.T
}

func (t *TestLogger) Log(keyvals ...interface{}) error {
	var buf bytes.Buffer
	if err := log.NewLogfmtLogger(&buf).Log(keyvals...); err != nil {
		t.T.Log(keyvals...)
		return nil
	}
	t.T.Log(strings.TrimSpace(buf.String()))
	return nil
}
