// Package graphics provides the drawing primitives the widget layer is
// built on: a cloneable drawing Context, a solid-color GPU pipeline,
// rectangle and text drawables, and the RenderPass recording handle.
//
// # Overview
//
// The package talks to the GPU exclusively through wgpu's HAL. A Context
// can either own a standalone device (NewDevice) or borrow one from a
// host application via a gpucontext.DeviceProvider:
//
//	dev, err := graphics.NewDevice()
//	if err != nil {
//	    // no Vulkan/Metal/DX12 available
//	}
//	ctx := graphics.NewContext(
//	    graphics.WithDevice(dev.Device(), dev.Queue()),
//	    graphics.WithAssets(assets.Default()),
//	)
//
// A Context without a device is still fully usable for layout and text
// measurement; draw calls simply become no-ops. This keeps widget logic
// testable on machines with no GPU at all.
//
// # Coordinate system
//
// Logical pixels, origin at the top-left, x grows right, y grows down.
// The viewport uniform in the solid-color pipeline maps logical pixels to
// normalized device coordinates.
//
// # Drawing
//
// Drawables record into a RenderPass, a thin wrapper around
// hal.RenderPassEncoder that also carries the viewport extent. The pass is
// borrowed for the duration of one draw; nothing in this package keeps a
// reference to it across calls.
package graphics
