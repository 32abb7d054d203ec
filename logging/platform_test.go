package logging

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesFor(t *testing.T) {
	assert.True(t, capabilitiesFor("windows").SupportsFileLogging)
	assert.False(t, capabilitiesFor("linux").SupportsFileLogging)
	assert.False(t, capabilitiesFor("darwin").SupportsFileLogging)
}

func TestDetectCapabilities(t *testing.T) {
	assert.Equal(t, runtime.GOOS == "windows", DetectCapabilities().SupportsFileLogging)
	assert.Equal(t, DetectCapabilities(), DetectCapabilities())
}

func TestServiceCapabilitiesOverride(t *testing.T) {
	svc := &Service{}
	assert.Equal(t, DetectCapabilities(), svc.capabilities())

	svc.Capabilities = &Capabilities{SupportsFileLogging: true}
	assert.True(t, svc.capabilities().SupportsFileLogging)
}
