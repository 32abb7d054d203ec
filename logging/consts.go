package logging

import "time"

const (
	emptyString = ""

	// timestampLayout renders the time part of every log line.
	timestampLayout = "2006-01-02 15:04:05"
	// fileStampLayout is embedded in log file names: log_20061231_150405.log
	fileStampLayout = "20060102_150405"
	logFilePrefix   = "log_"
	logFileExt      = ".log"

	logDirPerm  = 0o755
	logFilePerm = 0o644

	drainPollInterval = time.Millisecond
)

const (
	errMsgNilService    = "Logger service is nil."
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgRelLogDir     = "RelLogFileDir must be a relative path inside the storage root."
	errMsgLevel         = "Logging level could not be parsed."
)
