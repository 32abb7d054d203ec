package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Station-Manager/agenttools/types"
	"gopkg.in/natefinch/lumberjack.v2"
)

func logFileName(t time.Time) string {
	return logFilePrefix + t.Format(fileStampLayout) + logFileExt
}

// openLogFile makes sure <root>/<RelLogFileDir> exists, truncates the
// time-stamped log file inside it and returns a rolling writer for it.
func (s *Service) openLogFile(root string, cfg types.LoggingConfig) (*fileSink, string, error) {
	dir := filepath.Join(root, cfg.RelLogFileDir)
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, emptyString, &StorageError{Op: "mkdir", Path: dir, Err: err}
	}

	path := filepath.Join(dir, logFileName(s.clock()))

	// Overwrite, never append: lumberjack only appends to what it finds.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return nil, emptyString, &StorageError{Op: "open", Path: path, Err: err}
	}
	if err = f.Close(); err != nil {
		return nil, emptyString, &StorageError{Op: "open", Path: path, Err: err}
	}

	return &fileSink{w: &lumberjack.Logger{
		Filename:   path,
		MaxBackups: cfg.LogFileMaxBackups,
		MaxAge:     cfg.LogFileMaxAgeDays,
		MaxSize:    cfg.LogFileMaxSizeMB,
		Compress:   cfg.LogFileCompress,
		LocalTime:  true,
	}}, path, nil
}

// fileSink drops writes once closed. lumberjack reopens its file on any
// write, so an event that outlives the drain timeout would otherwise leak a
// descriptor.
type fileSink struct {
	mu     sync.Mutex
	w      *lumberjack.Logger
	closed bool
}

func (f *fileSink) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return len(p), nil
	}
	return f.w.Write(p)
}

func (f *fileSink) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	return f.w.Close()
}

func (s *Service) consoleOut() io.Writer {
	if s.ConsoleOut != nil {
		return s.ConsoleOut
	}
	return os.Stderr
}

func (s *Service) initializeWriters(cfg types.LoggingConfig, fileWriter *fileSink) []io.Writer {
	var writers []io.Writer
	if fileWriter != nil {
		writers = append(writers, newLineWriter(fileWriter, true))
	}
	writers = append(writers, newLineWriter(s.consoleOut(), cfg.ConsoleNoColor))
	return writers
}
