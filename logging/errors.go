package logging

import (
	stderrs "errors"
)

// ErrStorageUnavailable is matched by every *StorageError.
var ErrStorageUnavailable = stderrs.New("log storage unavailable")

// StorageError reports that the log directory could not be created or the
// log file could not be opened. Nothing is configured when it is returned.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return ErrStorageUnavailable.Error() + ": " + e.Op + " " + e.Path
	}
	return ErrStorageUnavailable.Error() + ": " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorageUnavailable }
