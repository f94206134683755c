package graphics

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ui/assets"
)

func TestNewContextDefaults(t *testing.T) {
	ctx := NewContext()

	if ctx.HasDevice() {
		t.Error("context without a device should report HasDevice() == false")
	}
	if ctx.Device() != nil {
		t.Error("Device() should be nil for a deviceless context")
	}
	if ctx.Assets() != assets.Default() {
		t.Error("Assets() should default to the process-wide registry")
	}
}

func TestNewContextWithAssets(t *testing.T) {
	r := assets.NewRegistry()
	ctx := NewContext(WithAssets(r))

	if ctx.Assets() != r {
		t.Error("WithAssets should override the registry")
	}
}

// nullProvider satisfies gpucontext.DeviceProvider without exposing HAL
// handles.
type nullProvider struct{}

func (nullProvider) Device() gpucontext.Device   { return nil }
func (nullProvider) Queue() gpucontext.Queue     { return nil }
func (nullProvider) Adapter() gpucontext.Adapter { return nil }
func (nullProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}
func (nullProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

func TestNewContextFromProviderRejectsNonHALProvider(t *testing.T) {
	_, err := NewContextFromProvider(nullProvider{})
	if !errors.Is(err, ErrNoHALProvider) {
		t.Errorf("error = %v, want ErrNoHALProvider", err)
	}
}

// fakeProvider exposes HAL accessors with the wrong dynamic types.
type fakeProvider struct {
	nullProvider
}

func (fakeProvider) HalDevice() any { return "not a device" }
func (fakeProvider) HalQueue() any  { return "not a queue" }

func TestNewContextFromProviderRejectsWrongHandles(t *testing.T) {
	_, err := NewContextFromProvider(fakeProvider{})
	if !errors.Is(err, ErrNoHALProvider) {
		t.Errorf("error = %v, want ErrNoHALProvider", err)
	}
}
