package logging

import (
	"runtime"
	"sync"
)

// Capabilities describes what the host lets the logger do. It is resolved
// once per process by DetectCapabilities.
type Capabilities struct {
	// SupportsFileLogging gates EnableFileAndConsole. When false that entry
	// point is a silent no-op.
	SupportsFileLogging bool
}

var (
	detected     Capabilities
	detectedOnce sync.Once
)

// DetectCapabilities reports the capabilities of the running host. File
// logging is only wired up for Windows.
func DetectCapabilities() Capabilities {
	detectedOnce.Do(func() {
		detected = capabilitiesFor(runtime.GOOS)
	})
	return detected
}

func capabilitiesFor(goos string) Capabilities {
	return Capabilities{
		SupportsFileLogging: goos == "windows",
	}
}
