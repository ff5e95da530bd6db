package logging

import (
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for log files.
const (
	fileMaxSizeMB  = 16
	fileMaxBackups = 3
)

// FileAppender writes console formatted lines to a file that is rotated once it reaches
// fileMaxSizeMB, keeping fileMaxBackups backups.
type FileAppender struct {
	ConsoleAppender
	file *lumberjack.Logger
}

// NewFileAppender returns an appender writing to filename. The file and its directory are created
// on the first write.
func NewFileAppender(filename string) *FileAppender {
	file := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
	}
	return &FileAppender{ConsoleAppender: NewWriterAppender(file), file: file}
}

// Rotate moves the current file aside and starts a new one.
func (fa *FileAppender) Rotate() error {
	return fa.file.Rotate()
}

// Close closes the underlying file. A later write reopens it.
func (fa *FileAppender) Close() error {
	return fa.file.Close()
}
