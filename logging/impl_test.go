package logging

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

type BasicStruct struct {
	X int
	y string
}

type User struct {
	Name string
}

type StructWithStruct struct {
	x int
	Y User
}

// assertLogMatches will fuzzy match log lines. Notably, this checks the time format, but ignores
// the exact time. And it expects a match on the filename, but the exact line number can be wrong.
func assertLogMatches(t *testing.T, actual *bytes.Buffer, expected string) {
	t.Helper()

	output, err := actual.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)

	actualParts := strings.Split(strings.TrimSuffix(output, "\n"), "\t")
	expectedParts := strings.Split(expected, "\t")
	// The time must parse, but its value is not checked.
	_, err = time.Parse(DefaultTimeFormatStr, actualParts[0])
	test.That(t, err, test.ShouldBeNil)
	// Log level.
	test.That(t, actualParts[1], test.ShouldEqual, expectedParts[1])

	// Filename:line_number.
	actualFilename, actualLineNumber, found := strings.Cut(actualParts[2], ":")
	test.That(t, found, test.ShouldBeTrue)
	expectedFilename, _, found := strings.Cut(expectedParts[2], ":")
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, actualFilename, test.ShouldEqual, expectedFilename)
	_, err = strconv.Atoi(actualLineNumber)
	test.That(t, err, test.ShouldBeNil)

	// Log message.
	test.That(t, actualParts[3], test.ShouldEqual, expectedParts[3])

	test.That(t, len(actualParts), test.ShouldEqual, len(expectedParts))
	if len(actualParts) == 4 {
		return
	}

	// JSON encoding of maps can be unpredictable because map iteration order can change between
	// runs. Parse the output into maps and assert on map equality.
	expectedMap := make(map[string]any)
	test.That(t, json.Unmarshal([]byte(expectedParts[4]), &expectedMap), test.ShouldBeNil)
	actualMap := make(map[string]any)
	test.That(t, json.Unmarshal([]byte(actualParts[4]), &actualMap), test.ShouldBeNil)
	test.That(t, actualMap, test.ShouldResemble, expectedMap)
}

func newBufferLogger(level Level) (*impl, *bytes.Buffer) {
	notStdout := &bytes.Buffer{}
	return newImpl("", level, true, NewWriterAppender(notStdout)), notStdout
}

func TestConsoleOutputFormat(t *testing.T) {
	logger, notStdout := newBufferLogger(DEBUG)

	logger.Info("impl Info log")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	INFO	logging/impl_test.go:67	impl Info log`)

	logger.Infof("impl %s log", "infof")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:45:20.764-0400	INFO	logging/impl_test.go:131	impl infof log`)

	logger.Infow("impl logw", "key", "value")
	assertLogMatches(t, notStdout,
		`2023-10-30T13:19:45.806-0400	INFO	logging/impl_test.go:132	impl logw	{"key":"value"}`)

	// Only public fields are serialized.
	logger.Infow("StructWithStruct", "key", "val", "StructWithStruct", StructWithStruct{1, User{"alice"}})
	assertLogMatches(t, notStdout,
		`2023-10-30T13:20:47.129-0400	INFO	logging/impl_test.go:123	StructWithStruct	{"StructWithStruct":{"Y":{"Name":"alice"}},"key":"val"}`)

	logger.Errorw("BasicStruct", "implOneKey", "1val", "BasicStruct", BasicStruct{1, "alice"})
	assertLogMatches(t, notStdout,
		`2023-10-30T13:20:47.129-0400	ERROR	logging/impl_test.go:125	BasicStruct	{"BasicStruct":{"X":1},"implOneKey":"1val"}`)

	// An unpaired key is reported instead of being dropped.
	logger.Warnw("unpaired", "lonely")
	assertLogMatches(t, notStdout,
		`2023-10-30T13:20:47.129-0400	WARN	logging/impl_test.go:125	unpaired	{"lonely":"unpaired log key"}`)
}

func TestLevels(t *testing.T) {
	logger, notStdout := newBufferLogger(WARN)

	logger.Debug("dropped")
	logger.Infof("dropped %d", 1)
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	logger.Warn("kept")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	WARN	logging/impl_test.go:67	kept`)

	logger.SetLevel(DEBUG)
	test.That(t, logger.GetLevel(), test.ShouldEqual, DEBUG)
	logger.Debugf("now %s", "kept")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	DEBUG	logging/impl_test.go:67	now kept`)
}

func TestSublogger(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := newImpl("so3", INFO, true, NewWriterAppender(notStdout))

	sub := logger.Sublogger("cli")
	test.That(t, sub.GetLevel(), test.ShouldEqual, INFO)

	// Changing the sublogger level leaves the parent alone.
	sub.SetLevel(DEBUG)
	test.That(t, logger.GetLevel(), test.ShouldEqual, INFO)

	sub.Debug("from sub")
	line, err := notStdout.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)
	parts := strings.Split(strings.TrimSuffix(line, "\n"), "\t")
	test.That(t, parts, test.ShouldHaveLength, 5)
	test.That(t, parts[2], test.ShouldEqual, "so3.cli")
	test.That(t, parts[4], test.ShouldEqual, "from sub")
}

func TestSiblingSubloggerAppenders(t *testing.T) {
	// Three appenders leave room in the backing array for one more.
	appenders := make([]Appender, 0, 4)
	for range 3 {
		appenders = append(appenders, NewWriterAppender(&bytes.Buffer{}))
	}
	logger := newImpl("so3", INFO, true, appenders...)

	a, b := logger.Sublogger("a"), logger.Sublogger("b")
	bufA, bufB := &bytes.Buffer{}, &bytes.Buffer{}
	a.AddAppender(NewWriterAppender(bufA))
	b.AddAppender(NewWriterAppender(bufB))

	a.Info("from a")
	test.That(t, bufA.String(), test.ShouldContainSubstring, "from a")
	test.That(t, bufB.String(), test.ShouldBeEmpty)

	b.Info("from b")
	test.That(t, bufA.String(), test.ShouldNotContainSubstring, "from b")
	test.That(t, bufB.String(), test.ShouldContainSubstring, "from b")
	test.That(t, logger.appenders, test.ShouldHaveLength, 3)
}

func TestConcurrentWrites(t *testing.T) {
	logger, notStdout := newBufferLogger(DEBUG)
	const writers, perWriter = 16, 20
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fieldLogger := logger.WithFields("writer", i)
			for j := range perWriter {
				fieldLogger.Debugw("line", "n", j)
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(notStdout.String(), "\n"), "\n")
	test.That(t, lines, test.ShouldHaveLength, writers*perWriter)
	for _, line := range lines {
		test.That(t, strings.Split(line, "\t"), test.ShouldHaveLength, 5)
	}
}

func TestWithFields(t *testing.T) {
	logger, notStdout := newBufferLogger(INFO)
	pair := logger.WithFields("from", "quaternion", "to", "axis_angle")

	pair.Infow("checked", "hops", 1)
	assertLogMatches(t, notStdout,
		`2023-10-30T13:19:45.806-0400	INFO	logging/impl_test.go:132	checked	{"from":"quaternion","to":"axis_angle","hops":1}`)

	// The parent is unchanged and the child follows the parent's level.
	logger.Info("plain")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459-0400	INFO	logging/impl_test.go:67	plain`)
	logger.SetLevel(ERROR)
	pair.Warn("dropped")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	// Fields reach zap loggers built from the child.
	logger.SetLevel(INFO)
	pair.AsZap().Info("through zap")
	line, err := notStdout.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)
	test.That(t, line, test.ShouldContainSubstring, `"from":"quaternion"`)
}

func TestObservedTestLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)

	logger.Debugw("observed", "kind", "quaternion")
	logger.Error("failure")

	test.That(t, logs.Len(), test.ShouldEqual, 2)
	test.That(t, logs.FilterMessage("observed").Len(), test.ShouldEqual, 1)
	entry := logs.FilterMessage("observed").All()[0]
	test.That(t, entry.Level, test.ShouldEqual, zapcore.DebugLevel)
	test.That(t, entry.ContextMap()["kind"], test.ShouldEqual, "quaternion")
	test.That(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len(), test.ShouldEqual, 1)
}

func TestAsZap(t *testing.T) {
	logger, notStdout := newBufferLogger(INFO)
	zapLogger := logger.AsZap()

	zapLogger.Debug("dropped")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	zapLogger.Infow("through zap", "hops", 2)
	line, err := notStdout.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)
	test.That(t, line, test.ShouldContainSubstring, "INFO")
	test.That(t, line, test.ShouldContainSubstring, "through zap")
	test.That(t, line, test.ShouldContainSubstring, `{"hops":2}`)

	// The zap logger follows level changes made afterwards.
	logger.SetLevel(DEBUG)
	zapLogger.Debug("now kept")
	line, err = notStdout.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)
	test.That(t, line, test.ShouldContainSubstring, "now kept")
}

func TestReplaceGlobal(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	restore := ReplaceGlobal(logger)
	Global().Infow("global", "replaced", true)
	restore()

	test.That(t, Global(), test.ShouldNotEqual, logger)
	test.That(t, logs.FilterMessage("global").Len(), test.ShouldEqual, 1)
}

func TestLevelStrings(t *testing.T) {
	for _, level := range []Level{DEBUG, INFO, WARN, ERROR} {
		parsed, err := LevelFromString(strings.ToUpper(level.String()))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, parsed, test.ShouldEqual, level)

		encoded, err := json.Marshal(level)
		test.That(t, err, test.ShouldBeNil)
		var unmarshalled Level
		test.That(t, json.Unmarshal(encoded, &unmarshalled), test.ShouldBeNil)
		test.That(t, unmarshalled, test.ShouldEqual, level)
	}

	_, err := LevelFromString("verbose")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "verbose")
}
