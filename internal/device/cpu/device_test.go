package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhelferty-nv/slangpy/internal/slangpy"
)

func TestNew(t *testing.T) {
	dev := New()
	defer dev.Release()

	assert.Equal(t, "CPU", dev.Name())
	assert.Equal(t, slangpy.CPU, dev.Kind())
	assert.Greater(t, dev.NumThreads(), 0)
	assert.NotEmpty(t, dev.ID())
}

func TestIDsAreUnique(t *testing.T) {
	a := New()
	defer a.Release()
	b := New()
	defer b.Release()

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestReleaseIsIdempotent(t *testing.T) {
	dev := New()
	dev.Release()
	dev.Release() // second release must be a no-op
}

func TestDeviceInterface(t *testing.T) {
	dev := New()
	defer dev.Release()

	// Verify it implements slangpy.Device
	var _ slangpy.Device = dev
}
