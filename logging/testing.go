package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

// tbAppender sends each entry to `tb.Log`, which ties the line to the test that logged it even
// when tests run in parallel.
type tbAppender struct {
	tb testing.TB
}

// NewTestAppender returns an appender writing console formatted lines through tb.Log. The logger
// name column is always present, empty or not.
func NewTestAppender(tb testing.TB) Appender {
	return &tbAppender{tb}
}

func (app *tbAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	// Go prefixes the line with the location of the tb.Log call. Helper moves it off this file.
	app.tb.Helper()
	line, err := consoleLine(entry, fields, true)
	app.tb.Log(line)
	return err
}

func (app *tbAppender) Sync() error {
	return nil
}
