package graphics

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Device owns a standalone GPU instance, device, and queue for hosts that
// do not already have one to share. Hosts embedded in a larger GPU
// application should prefer NewContextFromProvider instead.
type Device struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	// AdapterName is the name of the selected GPU, for diagnostics.
	AdapterName string
}

// NewDevice acquires a GPU: instance, adapter (discrete or integrated
// preferred), and logical device. Returns an error when no usable backend
// or adapter is present.
func NewDevice() (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("graphics: vulkan backend not available")
	}

	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("graphics: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("graphics: no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("graphics: open device: %w", err)
	}

	d := &Device{
		instance:    instance,
		device:      openDev.Device,
		queue:       openDev.Queue,
		AdapterName: selected.Info.Name,
	}
	slogger().Info("graphics: GPU initialized", "adapter", selected.Info.Name)
	return d, nil
}

// Device returns the HAL device.
func (d *Device) Device() hal.Device {
	return d.device
}

// Queue returns the HAL queue.
func (d *Device) Queue() hal.Queue {
	return d.queue
}

// Close releases the device and instance. Contexts created from this
// device must not draw afterwards.
func (d *Device) Close() {
	if d.device != nil {
		d.device.Destroy()
		d.device = nil
	}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
}
