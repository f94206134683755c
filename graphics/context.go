package graphics

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/ui/assets"
)

// ErrNoHALProvider is returned when a device provider does not expose HAL
// handles.
var ErrNoHALProvider = errors.New("graphics: provider does not expose HAL device and queue")

// Context is the drawing handle shared by all primitives: GPU device and
// queue, the lazily built pipeline cache, and the asset registry widgets
// resolve fonts from.
//
// Context is a small value wrapping shared pointers and may be copied.
// A Context with no device is valid for layout and measurement; draw calls
// are no-ops.
type Context struct {
	device    hal.Device
	queue     hal.Queue
	registry  *assets.Registry
	pipelines *pipelineCache
}

// ContextOption configures a Context during creation.
type ContextOption func(*Context)

// WithDevice sets the GPU device and queue the context draws with.
func WithDevice(device hal.Device, queue hal.Queue) ContextOption {
	return func(c *Context) {
		c.device = device
		c.queue = queue
	}
}

// WithAssets sets the asset registry widgets resolve fonts from. Defaults
// to assets.Default().
func WithAssets(r *assets.Registry) ContextOption {
	return func(c *Context) {
		c.registry = r
	}
}

// NewContext creates a drawing context.
func NewContext(opts ...ContextOption) Context {
	c := Context{
		registry:  assets.Default(),
		pipelines: &pipelineCache{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewContextFromProvider creates a drawing context that borrows the GPU
// device of a host application, typically gogpu.App.GPUContextProvider().
// The provider must additionally expose the HAL handles via HalDevice() any
// and HalQueue() any; providers backed by gogpu/wgpu do.
func NewContextFromProvider(provider gpucontext.DeviceProvider, opts ...ContextOption) (Context, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return Context{}, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return Context{}, ErrNoHALProvider
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return Context{}, ErrNoHALProvider
	}

	merged := append([]ContextOption{WithDevice(device, queue)}, opts...)
	return NewContext(merged...), nil
}

// Device returns the HAL device, or nil for a deviceless context.
func (c Context) Device() hal.Device {
	return c.device
}

// Queue returns the HAL queue, or nil for a deviceless context.
func (c Context) Queue() hal.Queue {
	return c.queue
}

// Assets returns the asset registry.
func (c Context) Assets() *assets.Registry {
	return c.registry
}

// HasDevice reports whether the context can actually reach a GPU.
func (c Context) HasDevice() bool {
	return c.device != nil && c.queue != nil
}

// Close releases GPU resources owned by the context (the pipeline cache).
// The device itself is not owned and stays alive.
func (c Context) Close() {
	if c.pipelines != nil {
		c.pipelines.destroy()
	}
}
