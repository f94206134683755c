package graphics

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// RenderPass is the recording surface drawables render into. It wraps an
// active hal.RenderPassEncoder plus the viewport extent and tracks the
// per-frame GPU resources draws allocate so the host can release them
// after the frame's command buffer has executed.
//
// Lifecycle: BeginRenderPass → widget Draw calls → End → (host submits the
// encoder) → Release.
type RenderPass struct {
	ctx    Context
	pass   hal.RenderPassEncoder
	width  uint32
	height uint32

	// Per-frame resources, destroyed by Release.
	buffers    []hal.Buffer
	bindGroups []hal.BindGroup
}

// BeginRenderPass opens a color-only render pass targeting view. The
// encoder must be in the encoding state; the caller keeps ownership of it
// and submits it after End.
func BeginRenderPass(ctx Context, encoder hal.CommandEncoder, view hal.TextureView, width, height uint32, clear RGBA) *RenderPass {
	c := clear.premultiplied()
	pass := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "ui_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3]),
			},
		}},
	})

	return &RenderPass{
		ctx:    ctx,
		pass:   pass,
		width:  width,
		height: height,
	}
}

// Extent returns the viewport size in pixels.
func (rp *RenderPass) Extent() (w, h uint32) {
	return rp.width, rp.height
}

// End closes the pass. Draw calls after End are invalid.
func (rp *RenderPass) End() {
	if rp.pass != nil {
		rp.pass.End()
		rp.pass = nil
	}
}

// Release destroys the per-frame buffers and bind groups allocated during
// recording. Call only after the frame's command buffer has finished
// executing (fence wait).
func (rp *RenderPass) Release() {
	device := rp.ctx.Device()
	if device == nil {
		return
	}
	for _, bg := range rp.bindGroups {
		device.DestroyBindGroup(bg)
	}
	rp.bindGroups = nil
	for _, buf := range rp.buffers {
		device.DestroyBuffer(buf)
	}
	rp.buffers = nil
}

// drawSolid records a solid-color triangle-list draw: creates and uploads
// a vertex buffer and the viewport uniform, binds the solid pipeline, and
// issues the draw. vertexData is packed with appendVertex.
func (rp *RenderPass) drawSolid(vertexData []byte, vertexCount uint32) error {
	if rp.pass == nil || vertexCount == 0 {
		return nil
	}
	device := rp.ctx.Device()
	queue := rp.ctx.Queue()
	if device == nil || queue == nil {
		return nil
	}

	pc := rp.ctx.pipelines
	if err := pc.ensure(device); err != nil {
		return err
	}

	vertBuf, err := rp.createAndUploadBuffer("ui_vertices", vertexData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return fmt.Errorf("graphics: create vertex buffer: %w", err)
	}

	uniformBuf, err := rp.createAndUploadBuffer("ui_viewport", makeViewportUniform(rp.width, rp.height),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return fmt.Errorf("graphics: create uniform buffer: %w", err)
	}

	bindGroup, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "ui_solid_bind",
		Layout: pc.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: viewportUniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("graphics: create bind group: %w", err)
	}
	rp.bindGroups = append(rp.bindGroups, bindGroup)

	rp.pass.SetPipeline(pc.pipeline)
	rp.pass.SetBindGroup(0, bindGroup, nil)
	rp.pass.SetVertexBuffer(0, vertBuf, 0)
	rp.pass.Draw(vertexCount, 1, 0, 0)

	return nil
}

// createAndUploadBuffer creates a GPU buffer, uploads data, and tracks the
// buffer for Release.
func (rp *RenderPass) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	device := rp.ctx.Device()

	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, err
	}
	rp.ctx.Queue().WriteBuffer(buf, 0, data)
	rp.buffers = append(rp.buffers, buf)
	return buf, nil
}
