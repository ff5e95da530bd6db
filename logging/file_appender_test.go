package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"
)

func TestFileAppender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "so3.log")
	appender := NewFileAppender(path)
	logger := newImpl("so3", INFO, true, appender)

	logger.Debug("dropped")
	logger.Infow("to file", "samples", 10)
	test.That(t, appender.Close(), test.ShouldBeNil)

	contents, err := os.ReadFile(path)
	test.That(t, err, test.ShouldBeNil)
	lines := strings.Split(strings.TrimSuffix(string(contents), "\n"), "\n")
	test.That(t, lines, test.ShouldHaveLength, 1)
	test.That(t, lines[0], test.ShouldContainSubstring, "INFO\tso3\t")
	test.That(t, lines[0], test.ShouldEndWith, "to file\t{\"samples\":10}")

	// A write after Close reopens the file; rotating moves it aside.
	logger.Warn("again")
	test.That(t, appender.Rotate(), test.ShouldBeNil)
	test.That(t, appender.Close(), test.ShouldBeNil)
	contents, err = os.ReadFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(contents), test.ShouldEqual, 0)

	backups, err := filepath.Glob(filepath.Join(filepath.Dir(path), "so3-*.log"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, backups, test.ShouldNotBeEmpty)
}
